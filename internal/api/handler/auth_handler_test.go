package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, email, password string) (string, *domain.User, error)
	loginFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	authenticateFn func(ctx context.Context, tokenString string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	return s.authenticateFn(ctx, tokenString)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "securepass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token-123", &domain.User{ID: "1", Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"securepass"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token-123" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil, nil
		},
	})

	body := strings.NewReader(`{"email":"not-an-email","password":"securepass"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil, nil
		},
	})

	body := strings.NewReader(`{"email":"a@x.com","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrDuplicateAccount
		},
	})

	body := strings.NewReader(`{"email":"a@x.com","password":"securepass"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The sentinel propagates; the central error handler maps it to 409.
	if err := h.Signup(c); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token-456", &domain.User{ID: "1", Email: email}, nil
		},
	})

	body := strings.NewReader(`{"email":"a@x.com","password":"securepass"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token-456" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"email":"a@x.com","password":"wrongpass"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
