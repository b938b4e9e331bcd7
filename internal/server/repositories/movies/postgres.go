package movies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cinevault/internal/common"
	"cinevault/internal/dbx"
	"cinevault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const movieColumns = `id, title, description, genres, release_year, duration_min,
	 video_key, poster_key, created_by, created_at, updated_at`

// genres are stored as a comma-joined text column to keep scanning on
// database/sql straightforward.
func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func scanMovie(scan func(dest ...any) error) (*models.Movie, error) {
	movie := &models.Movie{}
	var genres string
	err := scan(&movie.ID, &movie.Title, &movie.Description, &genres,
		&movie.ReleaseYear, &movie.DurationMin, &movie.VideoKey, &movie.PosterKey,
		&movie.CreatedBy, &movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	movie.Genres = splitGenres(genres)
	return movie, nil
}

func (r *PostgresRepository) Create(ctx context.Context, movie *models.Movie) (*models.Movie, error) {

	query :=
		`INSERT INTO movies (title, description, genres, release_year, duration_min,
		                     video_key, poster_key, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		movie.Title, movie.Description, joinGenres(movie.Genres), movie.ReleaseYear,
		movie.DurationMin, movie.VideoKey, movie.PosterKey, movie.CreatedBy).
		Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return movie, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	query :=
		`SELECT ` + movieColumns + ` FROM movies
		 WHERE id = $1
		 `

	return scanMovie(r.db.QueryRowContext(ctx, query, id).Scan)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Movie, error) {
	query :=
		`SELECT ` + movieColumns + ` FROM movies
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Movie
	for rows.Next() {
		movie, err := scanMovie(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	query :=
		`UPDATE movies
		 SET title = $2, description = $3, genres = $4, release_year = $5,
		     duration_min = $6, video_key = $7, poster_key = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + movieColumns + `
		 `

	return scanMovie(r.db.QueryRowContext(ctx, query,
		movie.ID, movie.Title, movie.Description, joinGenres(movie.Genres),
		movie.ReleaseYear, movie.DurationMin, movie.VideoKey, movie.PosterKey).Scan)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
