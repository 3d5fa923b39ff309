package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglist/blog-service/internal/api/handler"
	"github.com/bloglist/blog-service/internal/api/middleware"
	"github.com/bloglist/blog-service/internal/core/service"
	mongostore "github.com/bloglist/blog-service/internal/infrastructure/db/mongo"
	"github.com/bloglist/blog-service/internal/infrastructure/db/redis"
	"github.com/bloglist/blog-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloglist"))

	// --- Dependencies ---
	users := mongostore.NewUserRepository(db)
	blogs := mongostore.NewBlogRepository(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redis.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)
	authService := service.NewAuthService(users, tokens, limiter, cfg.BcryptCost, log)
	blogService := service.NewBlogService(blogs, users, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, users)
	blogHandler := handler.NewBlogHandler(blogService)

	// The auth gate runs on every /api route: an absent credential passes
	// through unauthenticated, a bad one fails the request outright.
	apiGroup := e.Group("/api", middleware.Auth(tokens))

	apiGroup.POST("/login", authHandler.Login)

	apiGroup.POST("/users", userHandler.Register)
	apiGroup.GET("/users", userHandler.List)

	apiGroup.GET("/blogs", blogHandler.List)
	apiGroup.GET("/blogs/:id", blogHandler.Get)
	apiGroup.POST("/blogs", blogHandler.Create)
	apiGroup.PUT("/blogs/:id", blogHandler.Like)
	apiGroup.DELETE("/blogs/:id", blogHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
