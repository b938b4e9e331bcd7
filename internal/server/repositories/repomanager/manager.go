// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"cinevault/internal/dbx"
	"cinevault/internal/server/repositories/favorites"
	"cinevault/internal/server/repositories/movies"
	"cinevault/internal/server/repositories/users"
)

// RepositoryManager hands out repositories operating over the provided DBTX,
// which may be a plain connection or a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Movies(db dbx.DBTX) movies.Repository
	Favorites(db dbx.DBTX) favorites.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
