package ports

import (
	"context"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

// AuthService covers the registration/login flows and token resolution.
type AuthService interface {
	// Register creates an account and returns a ready-to-use access token.
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate resolves a bearer token to the user it identifies.
	// Every failure mode returns domain.ErrUnauthorized.
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
}
