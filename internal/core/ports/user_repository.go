package ports

import (
	"context"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

// UserRepository is the user directory consumed by the auth service.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no user has that id.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new user and returns it with its assigned id.
	// Returns domain.ErrDuplicateAccount when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
