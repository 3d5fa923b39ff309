package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglist/blog-service/internal/core/domain"
)

const blogsCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type mongoBlog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title,omitempty"`
	Author string             `bson:"author,omitempty"`
	URL    string             `bson:"url,omitempty"`
	Likes  int                `bson:"likes"`
	Owner  primitive.ObjectID `bson:"owner"`
}

// blogWithOwner carries the $lookup-enriched read shape.
type blogWithOwner struct {
	mongoBlog `bson:",inline"`
	OwnerDocs []mongoUser `bson:"owner_docs"`
}

func (b *blogWithOwner) toDomain() domain.Blog {
	out := domain.Blog{
		ID:      b.ID.Hex(),
		Title:   b.Title,
		Author:  b.Author,
		URL:     b.URL,
		Likes:   b.Likes,
		OwnerID: b.Owner.Hex(),
	}
	if len(b.OwnerDocs) > 0 {
		o := b.OwnerDocs[0]
		out.Owner = &domain.OwnerView{ID: o.ID.Hex(), Username: o.Username, Name: o.Name}
	}
	return out
}

// ownerLookup joins the owning user onto each blog document.
var ownerLookup = bson.D{{Key: "$lookup", Value: bson.M{
	"from":         usersCollection,
	"localField":   "owner",
	"foreignField": "_id",
	"as":           "owner_docs",
}}}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	owner, err := primitive.ObjectIDFromHex(blog.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBlog{
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
		Owner:  owner,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
		ownerLookup,
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find blog: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []blogWithOwner
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blog: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrBlogNotFound
	}

	blog := docs[0].toDomain()
	return &blog, nil
}

func (r *BlogRepository) ListAll(ctx context.Context) ([]domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{ownerLookup})
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []blogWithOwner
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	out := make([]domain.Blog, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *BlogRepository) UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(updateCtx, oid, bson.M{"$set": bson.M{"likes": likes}})
	if err != nil {
		return nil, fmt.Errorf("update likes: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBlogNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}
