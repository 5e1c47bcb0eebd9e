package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and validates HS256-signed bearer tokens. The signing
// secret is fixed at construction and never rotated; a token is valid purely
// as a function of its signature and embedded expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to
// one hour.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token identifying subjectID, expiring after the
// configured TTL.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the subject id. All
// failure modes collapse into domain.ErrUnauthorized: callers cannot tell a
// forged signature from an expired token from a malformed payload.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
