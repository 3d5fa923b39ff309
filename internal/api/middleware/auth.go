package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloglist/blog-service/internal/api/metrics"
	"github.com/bloglist/blog-service/internal/core/domain"
	"github.com/bloglist/blog-service/internal/core/ports"
)

// IdentityKey is the echo context key under which the verified identity is stored.
const IdentityKey = "identity"

const bearerScheme = "bearer "

// Auth extracts and verifies the bearer token, injecting the identity into
// the request context.
//
// The asymmetry here is deliberate: a wholly absent credential passes through
// unauthenticated (routes that need an identity enforce it themselves), but a
// supplied credential that fails verification rejects the whole request
// before any route logic runs.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, bearerScheme)
			if !ok || token == "" {
				// No credential supplied; scheme keyword is case-sensitive.
				return next(c)
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
