package utils

import (
	"errors"
	"fmt"

	"devclub-portal/app/models"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword hashes password at cost. Costs outside bcrypt's range fall
// back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks password against the stored credential. A wrong
// password gives ErrPasswordMismatch; a corrupt hash gives a wrapped bcrypt
// error.
func VerifyPassword(cred models.Credential, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(cred.Hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("verify password for member %d: %w", cred.MemberID, err)
	}
	return nil
}
