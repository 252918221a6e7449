package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/server/models"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/repomanager"
)

// CommentService implements the comment operations downstream of the auth
// gate.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// Create persists a new comment owned by userID. Referencing a missing
// post returns common.ErrorNotFound.
func (s *CommentService) Create(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	repo := s.repomanager.Comments(s.db)

	comment, err := repo.Create(ctx, &models.Comment{
		Content: content,
		PostID:  postID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	return comment, nil
}

// GetAll returns every comment.
func (s *CommentService) GetAll(ctx context.Context) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).GetAll(ctx)
}

// GetByPost returns all comments attached to postID.
func (s *CommentService) GetByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).GetByPost(ctx, postID)
}

// Update overwrites the comment with the given id, assigning ownership to
// userID, and returns the updated comment, or common.ErrorNotFound.
func (s *CommentService) Update(ctx context.Context, id, userID, content string) (*models.Comment, error) {
	repo := s.repomanager.Comments(s.db)

	return repo.Update(ctx, &models.Comment{
		ID:      id,
		Content: content,
		UserID:  userID,
	})
}

// Delete removes the comment with the given id after an ownership check:
// only the comment's owner may delete it. The lookup and the delete run in
// one transaction so the check cannot race a concurrent update.
func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Comments(tx)

		comment, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if comment.UserID != userID {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, id)
	})
}
