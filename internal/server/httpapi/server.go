// Package httpapi exposes the REST surface of the microblog server: the
// auth lifecycle under /user and the post/comment resources behind the
// access-token gate.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/microblog/internal/logging"
	"github.com/dmitrijs2005/microblog/internal/server/auth"
	"github.com/dmitrijs2005/microblog/internal/server/models"
	"github.com/dmitrijs2005/microblog/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	Refresh(ctx context.Context, userID, presentedToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID, token string) error
}

type postSvc interface {
	Create(ctx context.Context, userID, title, content string) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySender(ctx context.Context, userID string) ([]*models.Post, error)
	Update(ctx context.Context, id, userID, title, content string) (*models.Post, error)
}

type commentSvc interface {
	Create(ctx context.Context, userID, postID, content string) (*models.Comment, error)
	GetAll(ctx context.Context) ([]*models.Comment, error)
	GetByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Update(ctx context.Context, id, userID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id, userID string) error
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	issuer   *auth.TokenIssuer
	users    userSvc
	posts    postSvc
	comments commentSvc
}

func NewHTTPServer(address string, l logging.Logger, issuer *auth.TokenIssuer, us userSvc, ps postSvc, cs commentSvc) *HTTPServer {
	return &HTTPServer{
		address:  address,
		logger:   l.With("module", "http_server"),
		issuer:   issuer,
		users:    us,
		posts:    ps,
		comments: cs,
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
