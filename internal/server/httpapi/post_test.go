package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/server/models"
)

func TestListPosts_Public(t *testing.T) {
	posts := &fakePostSvc{list: []*models.Post{{ID: "post-1", Title: "t"}}}
	h := newTestRouter(t, &fakeUserSvc{}, posts, &fakeCommentSvc{})

	w := perform(t, h, http.MethodGet, "/post", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "post-1" {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	posts := &fakePostSvc{err: common.ErrorNotFound}
	h := newTestRouter(t, &fakeUserSvc{}, posts, &fakeCommentSvc{})

	w := perform(t, h, http.MethodGet, "/post/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestCreatePost_RequiresBody(t *testing.T) {
	h := newTestRouter(t, &fakeUserSvc{}, &fakePostSvc{}, &fakeCommentSvc{})

	token, err := newTestIssuer().IssueAccessToken("user-1")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	w := perform(t, h, http.MethodPost, "/post", `{"title":"only a title"}`, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestListOwnPosts_UsesTokenIdentity(t *testing.T) {
	posts := &fakePostSvc{list: []*models.Post{{ID: "post-1", UserID: "user-1"}}}
	h := newTestRouter(t, &fakeUserSvc{}, posts, &fakeCommentSvc{})

	token, err := newTestIssuer().IssueAccessToken("user-1")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	w := perform(t, h, http.MethodGet, "/post/user", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	if posts.gotUserID != "user-1" {
		t.Fatalf("identity not taken from token: %q", posts.gotUserID)
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	posts := &fakePostSvc{err: common.ErrorNotFound}
	h := newTestRouter(t, &fakeUserSvc{}, posts, &fakeCommentSvc{})

	token, err := newTestIssuer().IssueAccessToken("user-1")
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	w := perform(t, h, http.MethodPut, "/post/missing", `{"title":"t","content":"c"}`, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}
