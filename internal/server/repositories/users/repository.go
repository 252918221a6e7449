// Package users declares the server-side repository contract for the
// credential store.
package users

import (
	"context"

	"github.com/dmitrijs2005/microblog/internal/server/models"
)

// Repository defines operations for creating and looking up user records.
type Repository interface {
	// Create persists a new user and returns it with the generated id.
	// A duplicate username or email returns common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user owning the given email address, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
