package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/qwadratic/notes-api/internal/api/metrics"
	"github.com/qwadratic/notes-api/internal/core/domain"
	"github.com/qwadratic/notes-api/internal/core/ports"
	"github.com/qwadratic/notes-api/internal/core/security"
)

// AuthService implements registration, login, and token resolution.
type AuthService struct {
	users  ports.UserRepository
	hasher *security.PasswordHasher
	tokens *security.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *security.PasswordHasher, tokens *security.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an account and returns an access token for it.
// A duplicate email surfaces as domain.ErrDuplicateAccount; that is the
// registrant's own input, so revealing it is safe.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account registered")
	return token, created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return domain.ErrInvalidCredentials so accounts cannot be
// enumerated through the login endpoint.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_account").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to the user it identifies. Any failure
// (bad signature, expiry, malformed payload, unknown subject) collapses into
// domain.ErrUnauthorized; the cause is logged at debug level only.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	subject, err := s.tokens.Validate(tokenString)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
			s.log.Debug().Str("subject", subject).Msg("token subject not found")
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
