package ports

import (
	"context"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

// PostService defines the use-case operations for posts. Reads are served
// cache-aside; writes go to the durable store first and then invalidate the
// owner's cache entry.
type PostService interface {
	ListPosts(ctx context.Context, ownerID string) ([]domain.Post, error)
	CreatePost(ctx context.Context, ownerID, text string) (*domain.Post, error)
	DeletePost(ctx context.Context, postID, ownerID string) error
}
