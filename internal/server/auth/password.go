package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"cinevault/internal/common"
)

// DefaultBcryptCost is the adaptive work factor used when the config does
// not override it.
const DefaultBcryptCost = bcrypt.DefaultCost

// passwordSymbols is the punctuation set accepted by the strength policy.
const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// PasswordHasher provides one-way hashing and verification for passwords and
// security answers. Both are treated as independent secrets and go through
// the same bcrypt primitive; the salt is embedded in the hash output.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost. Costs
// outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the secret.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether secret matches hash. It never fails on malformed
// input; any comparison error reads as false.
func (h *PasswordHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// ValidatePasswordStrength enforces the password policy: at least 8
// characters with one uppercase letter, one lowercase letter, one digit, and
// one symbol from passwordSymbols. Returns common.ErrorWeakPassword on
// violation.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return common.ErrorWeakPassword
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	if !upper || !lower || !digit || !symbol {
		return common.ErrorWeakPassword
	}

	return nil
}
