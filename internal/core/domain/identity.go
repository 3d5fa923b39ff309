package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// Identity is the set of claims carried by a verified session token.
// A nil *Identity means no credential was supplied on the request.
type Identity struct {
	UserID   string
	Username string
}

// CanDelete reports whether identity may delete the given blog.
// Deletion is owner-gated: the identity must be present and match the owner.
func CanDelete(blog *Blog, identity *Identity) bool {
	if blog == nil || identity == nil {
		return false
	}
	return blog.OwnerID == identity.UserID
}

// CanLike reports whether identity may update a blog's like counter.
// Any authenticated user qualifies; ownership is irrelevant.
func CanLike(identity *Identity) bool {
	return identity != nil
}

// CanCreate reports whether identity may create a blog. The created blog's
// owner is the identity itself.
func CanCreate(identity *Identity) bool {
	return identity != nil
}
