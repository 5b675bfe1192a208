package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordChecker compares login attempts against one bcrypt hash.
type PasswordChecker struct {
	hash []byte
}

func NewPasswordChecker(hash string) *PasswordChecker {
	return &PasswordChecker{hash: []byte(hash)}
}

// Check returns ErrPasswordMismatch for any wrong or malformed input.
func (p *PasswordChecker) Check(password string) error {
	if len(p.hash) == 0 || password == "" {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
