// Package users persists user credential records. It is the only component
// allowed to mutate a user row; password changes and token-version bumps all
// go through it.
package users

import (
	"context"

	"cinevault/internal/server/models"
)

type Repository interface {
	// Create inserts a new user with token_version 0. A duplicate email
	// (case-insensitive) yields common.ErrorEmailTaken, enforced by the
	// storage unique index rather than an application pre-check.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up case-insensitively by email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks a user up by id.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateProfile updates the mutable profile fields (name, age).
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)

	// UpdatePasswordAndBumpVersion writes the new password hash and
	// increments token_version in one atomic statement, so no token issued
	// against the old password survives the write.
	UpdatePasswordAndBumpVersion(ctx context.Context, id string, newHash string) (*models.User, error)

	// BumpTokenVersion atomically increments token_version and returns the
	// new value.
	BumpTokenVersion(ctx context.Context, id string) (int64, error)

	// Delete removes the user. Favorites and movies cascade at the schema
	// level.
	Delete(ctx context.Context, id string) error
}
