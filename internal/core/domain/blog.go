package domain

import "errors"

var ErrBlogNotFound = errors.New("blog not found")
var ErrMissingTitleAndURL = errors.New("title and url are missing")
var ErrAuthRequired = errors.New("authentication required")
var ErrNotOwner = errors.New("only the owner may delete a blog")

// OwnerView is the denormalized owner snapshot attached to blogs on read paths.
type OwnerView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// Blog is the core aggregate. OwnerID is assigned once at creation from the
// authenticated identity and never changes afterwards.
type Blog struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Author  string     `json:"author,omitempty"`
	URL     string     `json:"url"`
	Likes   int        `json:"likes"`
	OwnerID string     `json:"-"`
	Owner   *OwnerView `json:"user,omitempty"`
}
