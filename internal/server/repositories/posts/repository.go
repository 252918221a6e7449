// Package posts declares the server-side repository contract for blog posts.
package posts

import (
	"context"

	"github.com/dmitrijs2005/microblog/internal/server/models"
)

// Repository defines CRUD operations over posts.
type Repository interface {
	// Create persists a new post and returns it with the generated id.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)

	// GetAll returns every post.
	GetAll(ctx context.Context) ([]*models.Post, error)

	// GetByID returns the post with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// GetByUser returns all posts authored by userID.
	GetByUser(ctx context.Context, userID string) ([]*models.Post, error)

	// Update overwrites title, content, and owner of the post with the
	// given id and returns the updated row, or common.ErrorNotFound.
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
}
