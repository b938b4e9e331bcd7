// Package services contains server-side business logic. This file implements
// UserService, the authentication flow: registration, login, logout, the
// request guard, password change, and security-question password recovery.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinevault/internal/common"
	"cinevault/internal/server/auth"
	"cinevault/internal/server/config"
	"cinevault/internal/server/models"
	"cinevault/internal/server/repositories/repomanager"
)

// RegisterInput carries the fields required to create an account. The
// transport layer validates shape; the service re-checks presence and
// policy before any write.
type RegisterInput struct {
	FirstName        string
	LastName         string
	Age              int
	Email            string
	Password         string
	SecurityQuestion string
	SecurityAnswer   string
}

// UserService provides authentication-related operations. Session tokens are
// stateless JWTs; revocation works by bumping the user's stored token
// version so that every previously issued token stops matching.
type UserService struct {
	db                   *sql.DB
	repomanager          repomanager.RepositoryManager
	hasher               *auth.PasswordHasher
	jwtSecret            []byte
	sessionTokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                   db,
		repomanager:          m,
		hasher:               auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:            []byte(cfg.SecretKey),
		sessionTokenValidity: cfg.SessionTokenValidityDuration,
	}
}

// Register validates the input, hashes the password and the security answer,
// and persists the user with token version 0. Duplicate emails surface as
// common.ErrorEmailTaken from the storage unique index, so two concurrent
// registrations cannot both succeed.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}
	if err := auth.ValidatePasswordStrength(in.Password); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	answerHash, err := s.hasher.Hash(normalizeAnswer(in.SecurityAnswer))
	if err != nil {
		return nil, fmt.Errorf("error hashing security answer: %w", err)
	}

	user := &models.User{
		FirstName:          strings.TrimSpace(in.FirstName),
		LastName:           strings.TrimSpace(in.LastName),
		Age:                in.Age,
		Email:              normalizeEmail(in.Email),
		PasswordHash:       passwordHash,
		SecurityQuestion:   strings.TrimSpace(in.SecurityQuestion),
		SecurityAnswerHash: answerHash,
	}

	repo := s.repomanager.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created.Public(), nil
}

// Login verifies the credentials and mints a session token embedding the
// user's current token version. Unknown email and wrong password both yield
// common.ErrorInvalidCredentials so responses cannot be used to enumerate
// accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.sessionTokenValidity)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// Logout invalidates the presented token, and with it every other
// outstanding token of the same user, by bumping the stored token version.
// A missing or already-invalid token is a no-op success, so logout is
// idempotent.
func (s *UserService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.BumpTokenVersion(ctx, claims.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error bumping token version: %w", err)
	}

	return nil
}

// Authenticate is the guard for protected requests. A token is authoritative
// if and only if its signature verifies, it is unexpired, and its embedded
// token version equals the user's current stored version. A version mismatch
// is reported as common.ErrorSessionExpired, distinct from
// common.ErrorInvalidToken, so clients know to prompt a re-login.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidToken
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if claims.TokenVersion != user.TokenVersion {
		return nil, common.ErrorSessionExpired
	}

	return user, nil
}

// ChangePassword verifies the current password, checks the new one against
// the strength policy, and persists the new hash together with a token
// version bump in one atomic write. The caller's own token is dead after
// this returns; a fresh login is required.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return common.ErrorWrongCurrentPassword
	}

	if err := auth.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if _, err := repo.UpdatePasswordAndBumpVersion(ctx, user.ID, newHash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// SecurityQuestion returns the user's recovery question. Unknown emails
// produce an empty question and no error, so the endpoint cannot be used to
// probe which addresses are registered.
func (s *UserService) SecurityQuestion(ctx context.Context, email string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	return user.SecurityQuestion, nil
}

// ResetPasswordWithAnswer recovers an account via the security-question
// challenge. On success the new hash and a token version bump are written
// atomically, revoking all outstanding sessions.
func (s *UserService) ResetPasswordWithAnswer(ctx context.Context, email, answer, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(normalizeAnswer(answer), user.SecurityAnswerHash) {
		return common.ErrorWrongAnswer
	}

	if err := auth.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if _, err := repo.UpdatePasswordAndBumpVersion(ctx, user.ID, newHash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// UpdateProfile updates name and age.
func (s *UserService) UpdateProfile(ctx context.Context, userID, firstName, lastName string, age int) (*models.PublicUser, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" || age < 13 || age > 120 {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.UpdateProfile(ctx, &models.User{
		ID:        userID,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Age:       age,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUserNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return user.Public(), nil
}

// DeleteAccount removes the user; favorites and owned catalog entries
// cascade at the schema level.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)

	if err := repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// --- helpers below ---

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == "" ||
		strings.TrimSpace(in.SecurityQuestion) == "" ||
		strings.TrimSpace(in.SecurityAnswer) == "" {
		return common.ErrorValidation
	}
	if in.Age < 13 || in.Age > 120 {
		return common.ErrorValidation
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// answers are matched case-insensitively; "Rex" and "rex" unlock the same
// account
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
