package posts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var cols = []string{"id", "title", "content", "user_id", "created_at", "updated_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+posts\b.*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`).
		WithArgs("title", "content", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("p1", now, now))

	post, err := repo.Create(context.Background(), &models.Post{
		Title: "title", Content: "content", UserID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != "p1" {
		t.Fatalf("expected generated id, got %q", post.ID)
	}
}

func TestGetAll_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(cols).
		AddRow("p2", "second", "c2", "u1", now, now).
		AddRow("p1", "first", "c1", "u2", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+posts\s+ORDER\s+BY\s+created_at\s+DESC$`).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+posts\b`).
		WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+posts\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetByUser_FiltersBySender(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+posts\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("p1", "t", "c", "u1", now, now))

	got, err := repo.GetByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*UPDATE\s+posts\s+SET\s+title\s*=\s*\$2.*WHERE\s+id\s*=\s*\$1.*RETURNING`).
		WithArgs("p1", "new title", "new content", "u1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p1", "new title", "new content", "u1", now, now))

	got, err := repo.Update(context.Background(), &models.Post{
		ID: "p1", Title: "new title", Content: "new content", UserID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "new title" {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+posts\b`).
		WithArgs("missing", "t", "c", "u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Post{
		ID: "missing", Title: "t", Content: "c", UserID: "u1",
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
