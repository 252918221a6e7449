package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/microblog/internal/logging"
	"github.com/dmitrijs2005/microblog/internal/server/auth"
	"github.com/dmitrijs2005/microblog/internal/server/models"
	"github.com/dmitrijs2005/microblog/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUserSvc struct {
	registerOut *models.User
	registerErr error

	loginOut *services.TokenPair
	loginErr error

	refreshOut *services.TokenPair
	refreshErr error

	logoutErr error

	gotUserID string
	gotToken  string
}

func (f *fakeUserSvc) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return f.registerOut, f.registerErr
}

func (f *fakeUserSvc) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUserSvc) Refresh(ctx context.Context, userID, presentedToken string) (*services.TokenPair, error) {
	f.gotUserID, f.gotToken = userID, presentedToken
	return f.refreshOut, f.refreshErr
}

func (f *fakeUserSvc) Logout(ctx context.Context, userID, token string) error {
	f.gotUserID, f.gotToken = userID, token
	return f.logoutErr
}

type fakePostSvc struct {
	out  *models.Post
	list []*models.Post
	err  error

	gotUserID string
}

func (f *fakePostSvc) Create(ctx context.Context, userID, title, content string) (*models.Post, error) {
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakePostSvc) GetAll(ctx context.Context) ([]*models.Post, error) {
	return f.list, f.err
}

func (f *fakePostSvc) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakePostSvc) GetBySender(ctx context.Context, userID string) ([]*models.Post, error) {
	f.gotUserID = userID
	return f.list, f.err
}

func (f *fakePostSvc) Update(ctx context.Context, id, userID, title, content string) (*models.Post, error) {
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeCommentSvc struct {
	out  *models.Comment
	list []*models.Comment
	err  error

	gotUserID string
	gotID     string
}

func (f *fakeCommentSvc) Create(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeCommentSvc) GetAll(ctx context.Context) ([]*models.Comment, error) {
	return f.list, f.err
}

func (f *fakeCommentSvc) GetByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return f.list, f.err
}

func (f *fakeCommentSvc) Update(ctx context.Context, id, userID, content string) (*models.Comment, error) {
	f.gotUserID, f.gotID = userID, id
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeCommentSvc) Delete(ctx context.Context, id, userID string) error {
	f.gotUserID, f.gotID = userID, id
	return f.err
}

// ---- helpers ----

func newTestIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("access-secret", "refresh-secret", time.Hour)
}

func newTestRouter(t *testing.T, us userSvc, ps postSvc, cs commentSvc) http.Handler {
	t.Helper()
	s := NewHTTPServer("127.0.0.1:0", nopLogger{}, newTestIssuer(), us, ps, cs)
	return s.setupRouter()
}

func perform(t *testing.T, h http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	header := ""
	if bearer != "" {
		header = "Bearer " + bearer
	}
	return performWithHeader(t, h, method, path, body, header)
}

// performWithHeader sends the Authorization header verbatim, so tests can
// exercise malformed schemes.
func performWithHeader(t *testing.T, h http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}
