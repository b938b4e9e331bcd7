// Package auth implements the credential primitives of the service: bcrypt
// hashing for passwords and security answers, the password strength policy,
// and stateless HS256 session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinevault/internal/common"
	"cinevault/internal/server/models"
)

// Claims carries the identity embedded in a session token. TokenVersion is a
// snapshot of the user's stored version at issuance; the service compares it
// against the current value on every authenticated request, which is how
// logout and password changes revoke tokens without a server-side blacklist.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion int64  `json:"token_version"`
}

// GenerateToken mints a signed session token for the user, embedding the
// user's current token version and an expiry of now+validityDuration.
func GenerateToken(user *models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a session token and
// returns its claims. Malformed, forged, and expired tokens all yield
// common.ErrorInvalidToken. The token-version cross-check against the store
// is deliberately not done here; it needs a user lookup and belongs to the
// service layer.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
