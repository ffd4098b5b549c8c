package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidUser signals a registration payload that fails validation.
	ErrInvalidUser = errors.New("invalid user")
	// ErrEmailTaken signals a registration with an already used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 8

// User is an operator account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateRegistration checks a registration payload and returns the
// normalized email.
func ValidateRegistration(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: a valid email is required", ErrInvalidUser)
	}
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUser, minPasswordLength)
	}
	return email, nil
}
