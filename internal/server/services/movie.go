package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cinevault/internal/common"
	"cinevault/internal/server/models"
	"cinevault/internal/server/repositories/repomanager"
)

// MovieInput carries the mutable movie metadata fields.
type MovieInput struct {
	Title       string
	Description string
	Genres      []string
	ReleaseYear int
	DurationMin int
	VideoKey    string
	PosterKey   string
}

// MovieService manages catalog metadata and per-user favorites. Only the
// creator of a catalog entry may modify or delete it; for everyone else the
// entry behaves as absent on writes.
type MovieService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMovieService constructs a MovieService.
func NewMovieService(db *sql.DB, m repomanager.RepositoryManager) *MovieService {
	return &MovieService{db: db, repomanager: m}
}

// CreateMovie adds a catalog entry owned by userID.
func (s *MovieService) CreateMovie(ctx context.Context, userID string, in MovieInput) (*models.Movie, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Movies(s.db)
	movie, err := repo.Create(ctx, &models.Movie{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Genres:      in.Genres,
		ReleaseYear: in.ReleaseYear,
		DurationMin: in.DurationMin,
		VideoKey:    in.VideoKey,
		PosterKey:   in.PosterKey,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating movie: %w", err)
	}

	return movie, nil
}

// GetMovie returns a single catalog entry.
func (s *MovieService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	repo := s.repomanager.Movies(s.db)

	movie, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading movie: %w", err)
	}

	return movie, nil
}

// ListMovies returns the whole catalog.
func (s *MovieService) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	repo := s.repomanager.Movies(s.db)

	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movies: %w", err)
	}

	return list, nil
}

// UpdateMovie replaces the metadata of an entry the user owns.
func (s *MovieService) UpdateMovie(ctx context.Context, userID, movieID string, in MovieInput) (*models.Movie, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Movies(s.db)

	existing, err := repo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading movie: %w", err)
	}
	if existing.CreatedBy != userID {
		return nil, common.ErrorNotFound
	}

	movie, err := repo.Update(ctx, &models.Movie{
		ID:          movieID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Genres:      in.Genres,
		ReleaseYear: in.ReleaseYear,
		DurationMin: in.DurationMin,
		VideoKey:    in.VideoKey,
		PosterKey:   in.PosterKey,
	})
	if err != nil {
		return nil, fmt.Errorf("error updating movie: %w", err)
	}

	return movie, nil
}

// DeleteMovie removes an entry the user owns. Favorites cascade.
func (s *MovieService) DeleteMovie(ctx context.Context, userID, movieID string) error {
	repo := s.repomanager.Movies(s.db)

	existing, err := repo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading movie: %w", err)
	}
	if existing.CreatedBy != userID {
		return common.ErrorNotFound
	}

	if err := repo.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("error deleting movie: %w", err)
	}

	return nil
}

// AddFavorite marks a movie as a favorite of the user. Favoriting the same
// movie twice is a no-op.
func (s *MovieService) AddFavorite(ctx context.Context, userID, movieID string) error {
	movieRepo := s.repomanager.Movies(s.db)
	if _, err := movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading movie: %w", err)
	}

	favRepo := s.repomanager.Favorites(s.db)
	if err := favRepo.Add(ctx, userID, movieID); err != nil {
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// RemoveFavorite unmarks a favorite.
func (s *MovieService) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	favRepo := s.repomanager.Favorites(s.db)

	if err := favRepo.Remove(ctx, userID, movieID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error removing favorite: %w", err)
	}

	return nil
}

// ListFavorites returns the user's favorited movies, newest favorite first.
func (s *MovieService) ListFavorites(ctx context.Context, userID string) ([]*models.Movie, error) {
	favRepo := s.repomanager.Favorites(s.db)

	list, err := favRepo.ListMovies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}

	return list, nil
}
