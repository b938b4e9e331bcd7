// Package httpapi exposes the catalog and auth services over HTTP.
//
// The layer is deliberately thin: request bodies are decoded and validated,
// the matching service call is made, and the result or a mapped error status
// is written back. All session-integrity decisions live in the services.
package httpapi

import (
	"context"

	"cinevault/internal/server/models"
	"cinevault/internal/server/services"
)

// UserProvider is the slice of the user service the transport needs.
type UserProvider interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.PublicUser, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	SecurityQuestion(ctx context.Context, email string) (string, error)
	ResetPasswordWithAnswer(ctx context.Context, email, answer, newPassword string) error
	UpdateProfile(ctx context.Context, userID, firstName, lastName string, age int) (*models.PublicUser, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// MovieProvider is the slice of the movie service the transport needs.
type MovieProvider interface {
	CreateMovie(ctx context.Context, userID string, in services.MovieInput) (*models.Movie, error)
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]*models.Movie, error)
	UpdateMovie(ctx context.Context, userID, movieID string, in services.MovieInput) (*models.Movie, error)
	DeleteMovie(ctx context.Context, userID, movieID string) error
	AddFavorite(ctx context.Context, userID, movieID string) error
	RemoveFavorite(ctx context.Context, userID, movieID string) error
	ListFavorites(ctx context.Context, userID string) ([]*models.Movie, error)
}

// StorageProvider hands out presigned transfer URLs.
type StorageProvider interface {
	RequestUploadURL(ctx context.Context) (string, string, error)
	RequestDownloadURL(ctx context.Context, key string) (string, error)
}
