// Package favorites persists per-user movie favorites.
package favorites

import (
	"context"

	"cinevault/internal/server/models"
)

type Repository interface {
	// Add marks movieID as a favorite of userID. Adding an existing
	// favorite is a no-op.
	Add(ctx context.Context, userID, movieID string) error

	// Remove deletes the favorite; absent rows yield common.ErrorNotFound.
	Remove(ctx context.Context, userID, movieID string) error

	// ListMovies returns the movies the user has favorited, newest
	// favorite first.
	ListMovies(ctx context.Context, userID string) ([]*models.Movie, error)
}
