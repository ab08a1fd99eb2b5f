package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when no explicit cost is
// configured. Matches the cost the accounts were originally created with,
// so existing hashes stay comparable.
const DefaultBcryptCost = 10

// HashPassword derives a bcrypt hash from the given plaintext password.
// The salt is generated per call, so hashing the same password twice
// yields different hashes.
//
// Returns an error if the password is empty or bcrypt fails (e.g. the
// password exceeds bcrypt's 72-byte limit).
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided")
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the
// stored bcrypt hash.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
