package favorites

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cinevault/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestAdd_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// a second Add hits ON CONFLICT DO NOTHING and still succeeds
	mock.ExpectExec(`INSERT INTO favorites .+ ON CONFLICT \(user_id, movie_id\) DO NOTHING`).
		WithArgs("u-1", "m-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Add(context.Background(), "u-1", "m-1"); err != nil {
		t.Fatalf("Add error: %v", err)
	}
}

func TestRemove_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM favorites`).
		WithArgs("u-1", "m-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(context.Background(), "u-1", "m-9")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("got %v, want ErrorNotFound", err)
	}
}

func TestListMovies(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	cols := []string{"id", "title", "description", "genres", "release_year",
		"duration_min", "video_key", "poster_key", "created_by", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM favorites f\s+JOIN movies m`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("m-1", "Heat", "", "crime", 1995, 170, "", "", "u-2", now, now))

	got, err := repo.ListMovies(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListMovies error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Heat" {
		t.Fatalf("unexpected movies: %+v", got)
	}
}
