package ports

import (
	"context"

	"github.com/bloglist/blog-service/internal/core/domain"
)

// CreateBlogInput carries the client-supplied fields of a new blog.
// Likes is optional and defaults to zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput, identity *domain.Identity) (*domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	// Like sets the blog's like counter; any authenticated user may call it.
	Like(ctx context.Context, id string, likes int, identity *domain.Identity) (*domain.Blog, error)
	// Delete removes the blog; only its owner may call it.
	Delete(ctx context.Context, id string, identity *domain.Identity) error
}
