package ports

import (
	"context"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

// AuthService defines account registration and credential verification.
type AuthService interface {
	// Register creates an account and returns a signed token plus the user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Current returns the account behind an already-resolved principal.
	Current(ctx context.Context, userID string) (*domain.User, error)
}
