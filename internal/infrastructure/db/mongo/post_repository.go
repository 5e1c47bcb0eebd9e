package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository is the MongoDB-backed durable post store.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	OwnerID   string             `bson:"owner_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (mp mongoPost) toDomain() domain.Post {
	return domain.Post{
		ID:        mp.ID.Hex(),
		Text:      mp.Text,
		OwnerID:   mp.OwnerID,
		CreatedAt: unixToTime(mp.CreatedAt),
	}
}

// Insert persists a new post and returns it with the assigned ObjectID.
func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Text:      post.Text,
		OwnerID:   post.OwnerID,
		CreatedAt: post.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, transient("insert post", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByOwner returns all posts for ownerID in creation order. ObjectIDs are
// monotonic per process second, so sorting on _id yields insertion order.
func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, transient("list posts", err)
	}
	defer cur.Close(ctx)

	posts := make([]domain.Post, 0)
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, transient("decode post", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, transient("iterate posts", err)
	}
	return posts, nil
}

// Delete removes the post only when both id and owner match. Zero deletions
// map to domain.ErrPostNotFound regardless of whether the post exists under
// another owner.
func (r *PostRepository) Delete(ctx context.Context, postID, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return transient("delete post", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index serving the listing query.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
