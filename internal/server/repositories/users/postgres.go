package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cinevault/internal/common"
	"cinevault/internal/dbx"
	"cinevault/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique-index conflicts.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, first_name, last_name, age, email, password_hash,
	 security_question, security_answer_hash, token_version, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Age,
		&user.Email, &user.PasswordHash, &user.SecurityQuestion,
		&user.SecurityAnswerHash, &user.TokenVersion, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (first_name, last_name, age, email, password_hash,
		                    security_question, security_answer_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, token_version, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Age, user.Email, user.PasswordHash,
		user.SecurityQuestion, user.SecurityAnswerHash).
		Scan(&user.ID, &user.TokenVersion, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE lower(email) = lower($1)
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users
		 SET first_name = $2, last_name = $3, age = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + userColumns + `
		 `

	return scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Age))
}

// UpdatePasswordAndBumpVersion is a single UPDATE so the hash swap and the
// version bump cannot be observed separately.
func (r *PostgresRepository) UpdatePasswordAndBumpVersion(ctx context.Context, id string, newHash string) (*models.User, error) {
	query :=
		`UPDATE users
		 SET password_hash = $2, token_version = token_version + 1, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + userColumns + `
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, id, newHash))
}

// BumpTokenVersion relies on the database to serialize concurrent
// increments; two simultaneous bumps always advance the version by two.
func (r *PostgresRepository) BumpTokenVersion(ctx context.Context, id string) (int64, error) {
	query :=
		`UPDATE users
		 SET token_version = token_version + 1, updated_at = now()
		 WHERE id = $1
		 RETURNING token_version
		 `

	var version int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return version, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

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
