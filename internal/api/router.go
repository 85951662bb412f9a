package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamevault/review-system/internal/api/handler"
	"github.com/gamevault/review-system/internal/api/middleware"
	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
	"github.com/gamevault/review-system/internal/core/token"
)

// Deps carries everything the router wires into routes. Mongo and Redis are
// only used by the readiness probe and may be nil in tests.
type Deps struct {
	Logger        zerolog.Logger
	AuthService   ports.AuthService
	GameService   ports.GameService
	ReviewService ports.ReviewService
	TokenCodec    *token.Codec
	Mongo         *mongo.Database
	Redis         *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gamevault"))

	// --- Guards ---
	authed := middleware.Auth(deps.TokenCodec, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	userOnly := middleware.RequireRole(domain.RoleUser)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	e.POST("/api/register/:role", authHandler.Register)
	e.POST("/api/login/:role", authHandler.Login)
	e.GET("/api/me", authHandler.Me, authed)

	// --- Catalog routes: public reads, admin writes ---
	gameHandler := handler.NewGameHandler(deps.GameService)
	e.GET("/api/games", gameHandler.List)
	e.POST("/api/games", gameHandler.Create, authed, adminOnly)
	e.PUT("/api/games/:id", gameHandler.Update, authed, adminOnly)
	e.DELETE("/api/games/:id", gameHandler.Delete, authed, adminOnly)

	// --- Review routes: public reads, user writes ---
	reviewHandler := handler.NewReviewHandler(deps.ReviewService)
	e.GET("/api/reviews", reviewHandler.List)
	e.POST("/api/reviews", reviewHandler.Create, authed, userOnly)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	}

	return e
}
