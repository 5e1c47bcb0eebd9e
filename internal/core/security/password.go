package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a configurable cost factor. Hashing is
// salted per call, so the same secret never produces the same hash twice.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given cost. Cost <= 0 falls
// back to bcrypt's default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether secret produced storedHash. The comparison is
// constant-time; a mismatch is a false, never an error.
func (h *PasswordHasher) Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
