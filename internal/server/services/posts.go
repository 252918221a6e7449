package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/server/models"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/repomanager"
)

// PostService implements the post operations downstream of the auth gate.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Create persists a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID, title, content string) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.Create(ctx, &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return post, nil
}

// GetAll returns every post.
func (s *PostService) GetAll(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).GetAll(ctx)
}

// GetByID returns one post, or common.ErrorNotFound.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).GetByID(ctx, id)
}

// GetBySender returns all posts authored by userID.
func (s *PostService) GetBySender(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).GetByUser(ctx, userID)
}

// Update overwrites the post with the given id, assigning ownership to
// userID, and returns the updated post, or common.ErrorNotFound.
func (s *PostService) Update(ctx context.Context, id, userID, title, content string) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	return repo.Update(ctx, &models.Post{
		ID:      id,
		Title:   title,
		Content: content,
		UserID:  userID,
	})
}
