package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglist/blog-service/internal/core/domain"
	"github.com/bloglist/blog-service/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name,omitempty"`
	PasswordHash string               `bson:"password_hash"`
	Blogs        []primitive.ObjectID `bson:"blogs"`
}

func (mu *mongoUser) toDomain() *domain.User {
	blogs := make([]string, 0, len(mu.Blogs))
	for _, id := range mu.Blogs {
		blogs = append(blogs, id.Hex())
	}
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Name:         mu.Name,
		PasswordHash: mu.PasswordHash,
		Blogs:        blogs,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Blogs:        []primitive.ObjectID{},
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Blogs = []string{}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// ListAll resolves each user's owned-blog back-references into blog snapshots
// with a $lookup, mirroring what the read path promises: username, name and
// the owned blogs' title/author/url/likes.
func (r *UserRepository) ListAll(ctx context.Context) ([]ports.UserWithBlogs, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         blogsCollection,
			"localField":   "blogs",
			"foreignField": "_id",
			"as":           "blog_docs",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	type userWithBlogDocs struct {
		mongoUser `bson:",inline"`
		BlogDocs  []mongoBlog `bson:"blog_docs"`
	}

	var docs []userWithBlogDocs
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	out := make([]ports.UserWithBlogs, 0, len(docs))
	for _, doc := range docs {
		refs := make([]ports.BlogRef, 0, len(doc.BlogDocs))
		for _, b := range doc.BlogDocs {
			refs = append(refs, ports.BlogRef{
				ID:     b.ID.Hex(),
				Title:  b.Title,
				Author: b.Author,
				URL:    b.URL,
				Likes:  b.Likes,
			})
		}
		out = append(out, ports.UserWithBlogs{
			ID:       doc.ID.Hex(),
			Username: doc.Username,
			Name:     doc.Name,
			Blogs:    refs,
		})
	}
	return out, nil
}

func (r *UserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogIndex(ctx, userID, blogID, "$push")
}

func (r *UserRepository) RemoveBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogIndex(ctx, userID, blogID, "$pull")
}

func (r *UserRepository) updateBlogIndex(ctx context.Context, userID, blogID, op string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	bid, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, uid, bson.M{op: bson.M{"blogs": bid}})
	if err != nil {
		return fmt.Errorf("update owned-blog index: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
