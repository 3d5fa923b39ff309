package ports

import (
	"context"

	"github.com/bloglist/blog-service/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	Username string
	Name     string
}

type AuthService interface {
	Register(ctx context.Context, username, password, name string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// TokenVerifier resolves a bearer token into the identity it asserts.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// LoginLimiter throttles repeated login attempts per username.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure counts a failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, username string) error
}
