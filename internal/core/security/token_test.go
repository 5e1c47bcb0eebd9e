package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

func TestTokenService_IssueValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "user-42" {
		t.Fatalf("expected subject user-42, got %q", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Move the clock past expiry for validation only.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte in the signature segment.
	raw := []byte(token)
	raw[len(raw)-1] ^= 0x01

	if _, err := svc.Validate(string(raw)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "garbage-token", "a.b.c"} {
		if _, err := svc.Validate(tok); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("Validate(%q): expected ErrUnauthorized, got %v", tok, err)
		}
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Well-signed token with no sub claim.
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for missing subject, got %v", err)
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for alg=none token, got %v", err)
	}
}
