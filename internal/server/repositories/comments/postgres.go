// Package comments provides a PostgreSQL-backed repository for post comments.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/server/models"
)

const commentColumns = "id, content, post_id, user_id, created_at, updated_at"

// foreignKeyViolation is the SQLSTATE for foreign key constraint violations.
const foreignKeyViolation = "23503"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new comment. A foreign key violation on post_id means
// the referenced post does not exist and surfaces as common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (content, post_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, comment.Content, comment.PostID, comment.UserID).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return comment, nil
}

// GetAll returns every comment, oldest first.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanAll(rows)
}

// GetByID returns the comment with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByPost returns all comments attached to postID, oldest first.
func (r *PostgresRepository) GetByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanAll(rows)
}

// Update overwrites the comment with the given id and returns the updated
// row. If the id does not exist, it returns common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, user_id = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + commentColumns
	return scanOne(r.db.QueryRowContext(ctx, query, comment.ID, comment.Content, comment.UserID))
}

// Delete removes the comment with the given id. Zero affected rows means
// the comment does not exist and common.ErrorNotFound is returned.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM comments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanOne(row *sql.Row) (*models.Comment, error) {
	comment := &models.Comment{}
	err := row.Scan(&comment.ID, &comment.Content, &comment.PostID, &comment.UserID,
		&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return comment, nil
}

func scanAll(rows *sql.Rows) ([]*models.Comment, error) {
	defer rows.Close()

	result := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(&comment.ID, &comment.Content, &comment.PostID, &comment.UserID,
			&comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
