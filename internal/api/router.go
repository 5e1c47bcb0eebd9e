package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/qwadratic/notes-api/internal/api/handler"
	"github.com/qwadratic/notes-api/internal/api/middleware"
	"github.com/qwadratic/notes-api/internal/core/security"
	"github.com/qwadratic/notes-api/internal/core/service"
	"github.com/qwadratic/notes-api/internal/infrastructure/config"
	mongodb "github.com/qwadratic/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/qwadratic/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	cache := redisdb.NewCache(rdb)

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	postService := service.NewPostService(postRepo, cache, cfg.CacheTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authMiddleware := middleware.Auth(authService)

	// --- User routes ---
	e.POST("/users/signup", authHandler.Signup)
	e.POST("/users/login", authHandler.Login)

	// --- Post routes (authenticated) ---
	posts := e.Group("/posts", authMiddleware)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
