package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloglist/blog-service/internal/core/domain"
	"github.com/bloglist/blog-service/internal/core/ports"
)

// BlogService implements the blog operations behind the ownership policy.
type BlogService struct {
	blogs  ports.BlogRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewBlogService(blogs ports.BlogRepository, users ports.UserRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{blogs: blogs, users: users, logger: logger}
}

// Create persists a new blog owned by the authenticated identity.
// The rejection for a payload missing both title and url is terminal: nothing
// is written once the gate fails.
func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput, identity *domain.Identity) (*domain.Blog, error) {
	if !domain.CanCreate(identity) {
		return nil, domain.ErrAuthRequired
	}
	if input.Title == "" && input.URL == "" {
		return nil, domain.ErrMissingTitleAndURL
	}

	likes := input.Likes
	if likes < 0 {
		likes = 0
	}

	blog := &domain.Blog{
		Title:   input.Title,
		Author:  input.Author,
		URL:     input.URL,
		Likes:   likes,
		OwnerID: identity.UserID,
	}

	created, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	if err := s.users.AppendBlog(ctx, identity.UserID, created.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("blog_id", created.ID).Str("owner", identity.Username).Msg("blog created")
	return created, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.blogs.FindByID(ctx, id)
}

func (s *BlogService) ListAll(ctx context.Context) ([]domain.Blog, error) {
	return s.blogs.ListAll(ctx)
}

// Like sets the like counter. Merely authentication-gated: any valid identity
// may like any blog. Concurrent likes are last-write-wins; a lost increment
// is an accepted limitation of the set-from-client API shape.
func (s *BlogService) Like(ctx context.Context, id string, likes int, identity *domain.Identity) (*domain.Blog, error) {
	if !domain.CanLike(identity) {
		return nil, domain.ErrAuthRequired
	}
	if likes < 0 {
		likes = 0
	}
	return s.blogs.UpdateLikes(ctx, id, likes)
}

// Delete removes a blog. Owner-gated: the policy check runs before any store
// mutation, so an unauthorized request never touches the blog.
func (s *BlogService) Delete(ctx context.Context, id string, identity *domain.Identity) error {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanDelete(blog, identity) {
		if identity == nil {
			return domain.ErrAuthRequired
		}
		return domain.ErrNotOwner
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}

	// Back-reference cleanup is best-effort: the blog itself is already gone.
	if err := s.users.RemoveBlog(ctx, blog.OwnerID, id); err != nil {
		s.logger.Warn().Err(err).Str("blog_id", id).Msg("failed to prune owned-blog index")
	}

	s.logger.Info().Str("blog_id", id).Str("owner", identity.Username).Msg("blog deleted")
	return nil
}
