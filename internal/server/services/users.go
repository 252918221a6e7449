// Package services implements the application logic between the HTTP layer
// and the repositories: the auth lifecycle (register, login, refresh,
// logout) and the post/comment operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/server/auth"
	"github.com/dmitrijs2005/microblog/internal/server/models"
	"github.com/dmitrijs2005/microblog/internal/server/repositories/repomanager"
)

// TokenPair carries one access/refresh token pair as returned by login and
// refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService implements registration and the session lifecycle.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.TokenIssuer
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.TokenIssuer) *UserService {
	return &UserService{db: db, repomanager: m, issuer: issuer}
}

// Register hashes the password and persists a new user. A taken username or
// email returns common.ErrorAlreadyExists. The stored record never contains
// the plaintext password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, issues a token pair and
// registers the refresh token. An unknown email and a wrong password both
// return common.ErrorUnauthorized so callers cannot distinguish the two.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.issueTokenPair(ctx, user.ID)
}

// Refresh rotates the presented refresh token: the old token is atomically
// replaced with a fresh one and a new access token is issued. If the token
// is not registered for the user (already rotated, revoked, or never
// issued), common.ErrorForbidden is returned and nothing changes.
func (s *UserService) Refresh(ctx context.Context, userID, presentedToken string) (*TokenPair, error) {
	accessToken, err := s.issuer.IssueAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshToken, err := s.issuer.IssueRefreshToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.RefreshTokens(s.db)

	// Conditional single-statement swap: concurrent refresh/logout calls
	// with the same token resolve to exactly one winner.
	if err := repo.Replace(ctx, userID, presentedToken, refreshToken); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout revokes the presented refresh token. If the token is not
// registered for the user, common.ErrorForbidden is returned.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	repo := s.repomanager.RefreshTokens(s.db)

	if err := repo.Delete(ctx, userID, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorForbidden
		}
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

func (s *UserService) issueTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.issuer.IssueAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := s.issuer.IssueRefreshToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Create(ctx, userID, refreshToken); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
