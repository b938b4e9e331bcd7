package favorites

import (
	"context"
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

func (r *PostgresRepository) Add(ctx context.Context, userID, movieID string) error {
	query :=
		`INSERT INTO favorites (user_id, movie_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, movie_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, movieID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, movieID string) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, movieID)
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

func (r *PostgresRepository) ListMovies(ctx context.Context, userID string) ([]*models.Movie, error) {
	query :=
		`SELECT m.id, m.title, m.description, m.genres, m.release_year, m.duration_min,
		        m.video_key, m.poster_key, m.created_by, m.created_at, m.updated_at
		 FROM favorites f
		 JOIN movies m ON m.id = f.movie_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Movie
	for rows.Next() {
		movie := &models.Movie{}
		var genres string
		err := rows.Scan(&movie.ID, &movie.Title, &movie.Description, &genres,
			&movie.ReleaseYear, &movie.DurationMin, &movie.VideoKey, &movie.PosterKey,
			&movie.CreatedBy, &movie.CreatedAt, &movie.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if genres != "" {
			movie.Genres = strings.Split(genres, ",")
		}
		result = append(result, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
