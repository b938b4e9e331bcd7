// Package models defines the persisted entities of the CineVault catalog.
package models

import "time"

// User is the identity and credential record. PasswordHash and
// SecurityAnswerHash always hold bcrypt hashes, never raw input.
// TokenVersion starts at 0 and only ever increments; every session token
// carries a snapshot of it, so bumping the stored value revokes all
// outstanding tokens at once.
type User struct {
	ID                 string
	FirstName          string
	LastName           string
	Age                int
	Email              string
	PasswordHash       string
	SecurityQuestion   string
	SecurityAnswerHash string
	TokenVersion       int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PublicUser is the client-visible projection of a User. It never carries
// hashes.
type PublicUser struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-visible projection of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
