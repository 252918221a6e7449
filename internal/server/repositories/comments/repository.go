// Package comments declares the server-side repository contract for
// post comments.
package comments

import (
	"context"

	"github.com/dmitrijs2005/microblog/internal/server/models"
)

// Repository defines CRUD operations over comments.
type Repository interface {
	// Create persists a new comment and returns it with the generated id.
	// A reference to a missing post returns common.ErrorNotFound.
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// GetAll returns every comment.
	GetAll(ctx context.Context) ([]*models.Comment, error)

	// GetByID returns the comment with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// GetByPost returns all comments attached to postID.
	GetByPost(ctx context.Context, postID string) ([]*models.Comment, error)

	// Update overwrites content and owner of the comment with the given id
	// and returns the updated row, or common.ErrorNotFound.
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// Delete removes the comment with the given id, or returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
