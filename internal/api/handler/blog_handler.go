package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloglist/blog-service/internal/api/metrics"
	"github.com/bloglist/blog-service/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog operations.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List returns all blogs with their owner view attached.
//
// @Summary      List blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get returns a single blog by id.
//
// @Summary      Get a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Create stores a new blog owned by the authenticated identity.
//
// @Summary      Create a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog fields"
// @Success      201   {object}  domain.Blog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
	}
	if req.Likes != nil {
		input.Likes = *req.Likes
	}

	blog, err := h.service.Create(c.Request().Context(), input, ctxIdentity(c))
	if err != nil {
		return err
	}

	metrics.BlogsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, blog)
}

// Like sets the like counter on a blog. Any authenticated user may call it.
//
// @Summary      Update a blog's likes
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Blog id"
// @Param        body  body      likeBlogRequest  true  "New like count"
// @Success      200   {object}  domain.Blog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Like(c echo.Context) error {
	var req likeBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Like(c.Request().Context(), c.Param("id"), req.Likes, ctxIdentity(c))
	if err != nil {
		return err
	}

	metrics.LikeUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, blog)
}

// Delete removes a blog. Only its owner may call it.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ctxIdentity(c)); err != nil {
		return err
	}

	metrics.BlogsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
