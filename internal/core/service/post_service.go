package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/qwadratic/notes-api/internal/api/metrics"
	"github.com/qwadratic/notes-api/internal/core/domain"
	"github.com/qwadratic/notes-api/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// cachedPosts is the serialization envelope for cached listings. The version
// field makes the payload contract explicit: anything that fails to decode,
// or carries a different version, is treated as a cache miss rather than a
// hard error.
type cachedPosts struct {
	V     int           `json:"v"`
	Posts []domain.Post `json:"posts"`
}

const cachedPostsVersion = 1

// PostService serves post reads cache-aside and keeps the durable store as
// the single source of truth. Writes hit the durable store first and then
// invalidate (not update) the owner's cache entry, so the next read
// repopulates from durable truth. Cache failures are logged and degrade to
// durable-only operation; they never fail the request.
type PostService struct {
	repo     ports.PostRepository
	cache    ports.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewPostService creates a PostService. A non-positive cacheTTL falls back to
// five minutes.
func NewPostService(repo ports.PostRepository, cache ports.Cache, cacheTTL time.Duration, log zerolog.Logger) *PostService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &PostService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: log}
}

// ListPosts returns all posts for ownerID in creation order. A cache hit
// never touches the durable store; a miss reads through and repopulates.
func (s *PostService) ListPosts(ctx context.Context, ownerID string) ([]domain.Post, error) {
	key := domain.CacheKeyPosts(ownerID)

	if posts, ok := s.fromCache(ctx, key); ok {
		return posts, nil
	}

	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.populate(ctx, key, posts)
	return posts, nil
}

// CreatePost persists a new post and invalidates the owner's cached listing.
// Text length is re-checked here so callers bypassing the HTTP schema layer
// still hit the 1 MiB bound.
func (s *PostService) CreatePost(ctx context.Context, ownerID, text string) (*domain.Post, error) {
	if len(text) > domain.MaxPostTextBytes {
		return nil, domain.ErrPostTooLarge
	}

	post := &domain.Post{
		Text:      text,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to insert post")
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	metrics.PostsCreatedTotal.Inc()

	return created, nil
}

// DeletePost removes a post owned by ownerID and invalidates the cached
// listing. A post that does not exist and a post owned by someone else are
// indistinguishable: both return domain.ErrPostNotFound.
func (s *PostService) DeletePost(ctx context.Context, postID, ownerID string) error {
	if err := s.repo.Delete(ctx, postID, ownerID); err != nil {
		return err
	}

	s.invalidate(ctx, ownerID)
	metrics.PostsDeletedTotal.Inc()

	return nil
}

// fromCache attempts to serve a listing from the cache. It reports false on
// a miss, a cache failure, or an undecodable payload; a stale undecodable
// key is deleted best-effort so the next write of the key starts clean.
func (s *PostService) fromCache(ctx context.Context, key string) ([]domain.Post, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed, falling back to durable store")
		return nil, false
	}
	if raw == nil {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var entry cachedPosts
	if err := json.Unmarshal(raw, &entry); err != nil || entry.V != cachedPostsVersion {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		s.log.Warn().Str("key", key).Msg("undecodable cache payload, treating as miss")
		if delErr := s.cache.Del(ctx, key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", key).Msg("failed to drop bad cache entry")
		}
		return nil, false
	}

	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	if entry.Posts == nil {
		entry.Posts = []domain.Post{}
	}
	return entry.Posts, true
}

// populate writes a freshly read listing into the cache. Failures are logged
// and ignored; the response was already served from durable truth.
func (s *PostService) populate(ctx context.Context, key string, posts []domain.Post) {
	raw, err := json.Marshal(cachedPosts{V: cachedPostsVersion, Posts: posts})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to encode cache payload")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// invalidate drops the owner's cached listing after a durable write. Deletion
// is idempotent; on failure the entry goes stale for at most cacheTTL.
func (s *PostService) invalidate(ctx context.Context, ownerID string) {
	key := domain.CacheKeyPosts(ownerID)
	if err := s.cache.Del(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed, stale until TTL")
	}
}
