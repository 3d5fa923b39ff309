package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloglist/blog-service/internal/api/metrics"
	"github.com/bloglist/blog-service/internal/core/domain"
	"github.com/bloglist/blog-service/internal/core/ports"
)

// UserHandler handles registration and user listing.
type UserHandler struct {
	authService ports.AuthService
	users       ports.UserRepository
}

func NewUserHandler(authService ports.AuthService, users ports.UserRepository) *UserHandler {
	return &UserHandler{authService: authService, users: users}
}

// registerRequest deliberately leaves presence checks to the service so the
// canonical blank-credentials message is produced; the schema only enforces
// the username length constraint.
type registerRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is taken", req.Username))
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// List returns all users with their owned blogs populated.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.UserWithBlogs
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
