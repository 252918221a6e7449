// Package refreshtokens declares the server-side repository contract for the
// per-user session registry of valid refresh tokens.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/microblog/internal/server/models"
)

// Repository defines operations for issuing, rotating, and revoking refresh
// tokens. A token string is only valid while a row for (userID, token)
// exists; Replace and Delete are conditional on that row, so concurrent
// rotate/revoke calls on the same token resolve to exactly one winner.
type Repository interface {
	// Create registers token as valid for userID.
	Create(ctx context.Context, userID string, token string) error

	// Find returns the registry entry for (userID, token), or
	// common.ErrorNotFound when the token is not registered.
	Find(ctx context.Context, userID string, token string) (*models.RefreshToken, error)

	// Replace atomically swaps oldToken for newToken in userID's registry.
	// It returns common.ErrorNotFound when oldToken is not registered; the
	// registry is unchanged in that case.
	Replace(ctx context.Context, userID string, oldToken string, newToken string) error

	// Delete removes token from userID's registry. It returns
	// common.ErrorNotFound when the token is not registered.
	Delete(ctx context.Context, userID string, token string) error
}
