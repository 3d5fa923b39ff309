package ports

import (
	"context"

	"github.com/bloglist/blog-service/internal/core/domain"
)

// BlogRepository defines the interface for blog persistence.
// Read paths return blogs with the denormalized owner view attached.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	// UpdateLikes sets the like counter and returns the updated blog.
	UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
