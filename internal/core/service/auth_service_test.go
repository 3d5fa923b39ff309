package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloglist/blog-service/internal/core/domain"
	"github.com/bloglist/blog-service/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Blogs = append([]string(nil), u.Blogs...)
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]ports.UserWithBlogs, error) {
	out := make([]ports.UserWithBlogs, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, ports.UserWithBlogs{ID: u.ID, Username: u.Username, Name: u.Name})
	}
	return out, nil
}

func (r *stubUserRepo) AppendBlog(_ context.Context, userID, blogID string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.Blogs = append(u.Blogs, blogID)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) RemoveBlog(_ context.Context, userID, blogID string) error {
	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		kept := u.Blogs[:0]
		for _, id := range u.Blogs {
			if id != blogID {
				kept = append(kept, id)
			}
		}
		u.Blogs = kept
		return nil
	}
	return domain.ErrUserNotFound
}

type stubLimiter struct {
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) Allow(_ context.Context, username string) (bool, error) {
	return l.failures[username] < l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, username string) error {
	l.failures[username]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, username string) error {
	delete(l.failures, username)
	return nil
}

func newAuthService(repo ports.UserRepository, limiter ports.LoginLimiter) *AuthService {
	issuer := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, limiter, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), "alice", "password123", "Alice A")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_BlankCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "", "pw", "n"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", "n"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "validname", "ab", "n"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "root", "sekret", "Root"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "root", "sekret", "Root"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", "Carol C"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Username != "carol" || result.Name != "Carol C" {
		t.Fatalf("unexpected result: %+v", result)
	}

	identity, err := svc.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if identity.Username != "carol" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	// An unknown username must be indistinguishable from a wrong password.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter(3)
	svc := newAuthService(repo, limiter)

	_, _ = svc.Register(context.Background(), "eve", "rightpass", "")

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), "eve", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Even the correct password is refused once the window is exhausted.
	if _, err := svc.Login(context.Background(), "eve", "rightpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsLimiterOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter(3)
	svc := newAuthService(repo, limiter)

	_, _ = svc.Register(context.Background(), "frank", "hunter2", "")

	_, _ = svc.Login(context.Background(), "frank", "nope")
	if _, err := svc.Login(context.Background(), "frank", "hunter2"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.failures["frank"] != 0 {
		t.Fatalf("expected failure count reset, got %d", limiter.failures["frank"])
	}
}
