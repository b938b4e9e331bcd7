package movies

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cinevault/internal/common"
	"cinevault/internal/server/models"
)

var movieCols = []string{"id", "title", "description", "genres", "release_year",
	"duration_min", "video_key", "poster_key", "created_by", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO movies`).
		WithArgs("Heat", "Thriller about a heist crew", "crime,thriller", 1995, 170, "", "", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("m-1", now, now))

	movie := &models.Movie{
		Title:       "Heat",
		Description: "Thriller about a heist crew",
		Genres:      []string{"crime", "thriller"},
		ReleaseYear: 1995,
		DurationMin: 170,
		CreatedBy:   "u-1",
	}
	got, err := repo.Create(context.Background(), movie)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "m-1" {
		t.Fatalf("unexpected movie: %+v", got)
	}
}

func TestGetByID_SplitsGenres(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM movies\s+WHERE id = \$1`).
		WithArgs("m-1").
		WillReturnRows(sqlmock.NewRows(movieCols).
			AddRow("m-1", "Heat", "", "crime,thriller", 1995, 170, "videos/x", "", "u-1", now, now))

	got, err := repo.GetByID(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "crime" {
		t.Fatalf("genres = %v", got.Genres)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM movies`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("got %v, want ErrorNotFound", err)
	}
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM movies\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(movieCols).
			AddRow("m-2", "Later", "", "", 2001, 90, "", "", "u-1", now, now).
			AddRow("m-1", "Earlier", "", "drama", 1999, 100, "", "", "u-1", now, now))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-2" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if got[0].Genres != nil {
		t.Errorf("empty genres should scan to nil, got %v", got[0].Genres)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM movies WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("got %v, want ErrorNotFound", err)
	}
}
