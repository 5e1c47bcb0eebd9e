package domain

import "time"

// MaxPostTextBytes caps post text at 1 MiB. The request schema enforces it at
// the edge; PostService re-checks so direct callers get the same bound.
const MaxPostTextBytes = 1 << 20

// Post is a text note owned by exactly one user. Posts are immutable after
// creation; the only mutation is deletion by the owner.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CacheKeyPosts returns the cache key holding a user's serialized post
// listing. Single definition so service and tests cannot drift.
func CacheKeyPosts(ownerID string) string {
	return "posts:" + ownerID
}
