package ports

import (
	"context"

	"github.com/bloglist/blog-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ListAll returns every user with the owned-blog back-references resolved
	// into blog snapshots (title, author, url, likes).
	ListAll(ctx context.Context) ([]UserWithBlogs, error)
	// AppendBlog records blogID in the user's owned-blog index.
	AppendBlog(ctx context.Context, userID, blogID string) error
	// RemoveBlog drops blogID from the user's owned-blog index.
	RemoveBlog(ctx context.Context, userID, blogID string) error
}

// BlogRef is the reduced blog view embedded in user listings.
type BlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// UserWithBlogs is a user enriched with the blogs it owns.
type UserWithBlogs struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
	Blogs    []BlogRef `json:"blogs"`
}
