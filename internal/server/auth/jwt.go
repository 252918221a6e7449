// Package auth implements token issuance and password hashing for the
// microblog server.
//
// Two token classes exist: short-lived access tokens carrying an expiry
// claim, and refresh tokens carrying none. They are signed with distinct
// HMAC secrets, so a leaked access secret cannot be used to mint refresh
// tokens or vice versa. Refresh token validity is decided by the session
// registry, not by the token itself.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/microblog/internal/common"
)

// Claims is the JWT payload used for both token classes: the registered
// claims plus the owning user's identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenIssuer mints and verifies signed tokens (HS256).
type TokenIssuer struct {
	accessSecret                []byte
	refreshSecret               []byte
	accessTokenValidityDuration time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTokenValidityDuration time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:                []byte(accessSecret),
		refreshSecret:               []byte(refreshSecret),
		accessTokenValidityDuration: accessTokenValidityDuration,
	}
}

// IssueAccessToken returns a signed access token for userID with an
// expiration claim of now + the configured validity duration.
func (i *TokenIssuer) IssueAccessToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTokenValidityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(i.accessSecret)
}

// IssueRefreshToken returns a signed refresh token for userID. It carries
// no expiration claim; the token stays valid until the session registry
// revokes it. A random jti makes every minted token unique, so rotation
// always produces a string distinct from the one it replaces.
func (i *TokenIssuer) IssueRefreshToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	return token.SignedString(i.refreshSecret)
}

// ParseAccessToken verifies the signature and expiry of an access token and
// returns the user id it carries.
func (i *TokenIssuer) ParseAccessToken(tokenString string) (string, error) {
	return parseToken(tokenString, i.accessSecret)
}

// ParseRefreshToken verifies the signature of a refresh token and returns
// the user id it carries. Registry membership is checked separately.
func (i *TokenIssuer) ParseRefreshToken(tokenString string) (string, error) {
	return parseToken(tokenString, i.refreshSecret)
}

// parseToken fails closed: malformed, unsigned, expired, or wrong-secret
// tokens are all rejected.
func parseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
