package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/qwadratic/notes-api/internal/core/domain"
	"github.com/qwadratic/notes-api/internal/core/security"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateAccount
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubUserRepo) *AuthService {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	tokens := security.NewTokenService("secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "a@x.com", "securepass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected user with id, got %+v", user)
	}
	if user.PasswordHash == "securepass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("securepass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "a@x.com", "securepass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", "otherpass"); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestAuthService_Register_EmptyInput(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "dave@x.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailUniform(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	// Unknown account must be indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, registered, err := svc.Register(context.Background(), "a@x.com", "securepass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}
}

func TestAuthService_Authenticate_GarbageToken(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Authenticate(context.Background(), "garbage-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownSubjectUniform(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "a@x.com", "securepass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Simulate account deletion: the token is still well-signed but its
	// subject no longer resolves. Must look identical to a bad token.
	delete(repo.users, user.ID)

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
