package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bloglist/blog-service/internal/api/middleware"
	"github.com/bloglist/blog-service/internal/core/domain"
)

// ctxIdentity returns the identity injected by the Auth middleware, or nil
// when the request carried no credential. A nil result is not an error here:
// individual routes decide whether an identity is required.
func ctxIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	return identity
}
