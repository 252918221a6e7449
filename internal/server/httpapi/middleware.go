package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/microblog/internal/common"
)

// Context keys set by the auth middleware.
const (
	userIDKey       = "userID"
	refreshTokenKey = "refreshToken"
)

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Absent and malformed headers map to the same external error but
// are reported apart so they can be told apart in the logs.
func (s *HTTPServer) bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		s.logger.Debug(c.Request.Context(), "no credential", "path", c.Request.URL.Path)
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		s.logger.Debug(c.Request.Context(), "malformed credential", "path", c.Request.URL.Path)
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		s.logger.Debug(c.Request.Context(), "malformed credential", "path", c.Request.URL.Path)
		return "", false
	}

	return token, true
}

// requireAccessToken gates resource endpoints: the request must carry a
// valid, unexpired access token. The token's user id is stored in the
// request context.
func (s *HTTPServer) requireAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		userID, err := s.issuer.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requireRefreshToken gates the refresh and logout endpoints. The bearer
// credential is verified against the refresh secret; both the user id and
// the raw token are stored in the request context, because the handlers
// must check the token against the session registry.
func (s *HTTPServer) requireRefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		userID, err := s.issuer.ParseRefreshToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			return
		}

		c.Set(userIDKey, userID)
		c.Set(refreshTokenKey, token)
		c.Next()
	}
}

func authErrorMessage(err error) string {
	if errors.Is(err, common.ErrTokenExpired) {
		return "token expired"
	}
	return "invalid token"
}
