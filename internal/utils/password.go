package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password with bcrypt at the given cost.
// Pass bcrypt.DefaultCost (or a configured value) for cost; values outside
// the range accepted by bcrypt produce an error.
//
// The returned string embeds the salt and cost, so it is self-contained:
// only the hash needs to be stored.
//
// Parameters:
//
//	password - the plain-text password to hash
//	cost     - bcrypt work factor (bcrypt.MinCost..bcrypt.MaxCost)
//
// Returns:
//
//	string - the encoded bcrypt hash
//	error  - non-nil if the password is empty or bcrypt rejects the input
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("empty password cannot be hashed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A mismatch is a normal outcome, not an error; only unexpected bcrypt
// failures (e.g. a malformed stored hash) are returned as errors.
func VerifyPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
