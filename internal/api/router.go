package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pllumaj/results/internal/api/handler"
	"github.com/pllumaj/results/internal/api/middleware"
	"github.com/pllumaj/results/internal/core/domain"
	"github.com/pllumaj/results/internal/core/service"
	mongodb "github.com/pllumaj/results/internal/infrastructure/db/mongo"
	"github.com/pllumaj/results/internal/infrastructure/notify"
	"github.com/pllumaj/results/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("pllumaj"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	needRepo := mongodb.NewNeedRepository(db)
	offerRepo := mongodb.NewOfferRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	cityRepo := mongodb.NewCityRepository(db)
	notifier := notify.NewRedisNotifier(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	needService := service.NewNeedService(needRepo, userRepo, categoryRepo, cityRepo, log)
	offerService := service.NewOfferService(offerRepo, needRepo, userRepo, notifier, log, cfg.OfferStrictTransitions)

	authHandler := handler.NewAuthHandler(authService)
	needHandler := handler.NewNeedHandler(needService)
	offerHandler := handler.NewOfferHandler(offerService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Need routes ---
	e.GET("/needs", needHandler.List)
	e.POST("/needs", needHandler.Create, authRequired)

	// --- Offer routes ---
	offers := e.Group("/offers", authRequired)
	offers.POST("", offerHandler.Create, middleware.RBAC(domain.RoleExpert))
	offers.GET("/for-need/:needId", offerHandler.ListForNeed, middleware.RBAC(domain.RoleClient, domain.RoleExpert))
	offers.GET("/mine", offerHandler.ListMine, middleware.RBAC(domain.RoleExpert))
	offers.PATCH("/:id", offerHandler.Respond, middleware.RBAC(domain.RoleClient))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Env)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
