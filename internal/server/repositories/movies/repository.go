// Package movies persists movie catalog metadata.
package movies

import (
	"context"

	"cinevault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	// List returns the whole catalog, newest first.
	List(ctx context.Context) ([]*models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
}
