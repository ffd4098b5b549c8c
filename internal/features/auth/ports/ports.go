package ports

import (
	"context"

	"meditrack/internal/features/auth/domain"
)

// UserRepository persists operator accounts.
type UserRepository interface {
	// CreateUser stores the user and fills in its generated ID. It
	// returns domain.ErrEmailTaken when the email is already in use.
	CreateUser(ctx context.Context, user *domain.User) error
	// FindByEmail returns the user or nil when no account exists for
	// the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
