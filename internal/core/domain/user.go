package domain

import "time"

// User models a registered account. PasswordHash never leaves the process;
// the json tag guards against accidental serialization in responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
