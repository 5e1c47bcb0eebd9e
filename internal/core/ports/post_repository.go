package ports

import (
	"context"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. It is the system
// of record; the cache layer in front of it is advisory only.
type PostRepository interface {
	// Insert persists a new post and returns it with its assigned id.
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// ListByOwner returns all posts for ownerID in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error)
	// Delete removes the post only when it exists and belongs to ownerID.
	// Both "no such post" and "someone else's post" yield
	// domain.ErrPostNotFound so existence is never leaked across owners.
	Delete(ctx context.Context, postID, ownerID string) error
}
