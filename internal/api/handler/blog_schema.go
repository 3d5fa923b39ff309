package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createBlogRequest carries a new blog. Title and url are jointly required;
// that gate lives in the service so the rejection is terminal regardless of
// which transport invoked it. Likes is optional and defaults to zero.
type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes" validate:"omitempty,gte=0"`
}

// likeBlogRequest sets the like counter on an existing blog.
type likeBlogRequest struct {
	Likes int `json:"likes" validate:"gte=0"`
}
