package domain

import "errors"

// Sentinel errors crossing the service boundary. Handlers map these to HTTP
// status codes; anything else is treated as an internal error.
//
// ErrUnauthorized and ErrPostNotFound are deliberately cause-free: the caller
// must not be able to distinguish a bad signature from an expired token, or a
// missing post from another owner's post. Full detail stays in internal logs.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostTooLarge       = errors.New("post text too large")
	ErrUserNotFound       = errors.New("user not found")

	// ErrUnavailable marks transient infrastructure failures (durable store
	// unreachable or timed out). Retryable by the caller.
	ErrUnavailable = errors.New("service temporarily unavailable")
)
