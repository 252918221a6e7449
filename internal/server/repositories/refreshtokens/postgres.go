// Package refreshtokens provides a PostgreSQL-backed repository for the
// session registry used in the server's authentication flow.
package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create registers a refresh token for userID.
func (r *PostgresRepository) Create(ctx context.Context, userID string, token string) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Find returns the registry row for (userID, token).
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, userID string, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM refresh_tokens
		WHERE user_id = $1 AND token = $2
	`
	refreshToken := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, userID, token).
		Scan(&refreshToken.ID, &refreshToken.UserID, &refreshToken.Token, &refreshToken.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return refreshToken, nil
}

// Replace swaps oldToken for newToken in a single conditional update. Zero
// affected rows means oldToken was not registered (already rotated, revoked,
// or never issued) and common.ErrorNotFound is returned.
func (r *PostgresRepository) Replace(ctx context.Context, userID string, oldToken string, newToken string) error {
	query := `
		UPDATE refresh_tokens
		SET token = $3, created_at = now()
		WHERE user_id = $1 AND token = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, oldToken, newToken)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a refresh token from the registry. Zero affected rows
// means the token was not registered and common.ErrorNotFound is returned.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, token string) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE user_id = $1 AND token = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
