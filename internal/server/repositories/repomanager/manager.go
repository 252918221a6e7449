// Package repomanager declares the factory interface that vends repository
// implementations bound to a DBTX, plus the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/comments"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either a *sql.DB or a
// transaction, so services can run several repository calls atomically via
// dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Posts(db dbx.DBTX) posts.Repository
	Comments(db dbx.DBTX) comments.Repository

	// RunMigrations brings the database schema up to date.
	RunMigrations(ctx context.Context, db *sql.DB) error
}
