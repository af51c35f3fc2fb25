package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/rbacdash/rbac-api/internal/api/handler"
	"github.com/rbacdash/rbac-api/internal/api/metrics"
	"github.com/rbacdash/rbac-api/internal/api/middleware"
	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
	"github.com/rbacdash/rbac-api/internal/core/service"
)

// Config carries the router-level settings.
type Config struct {
	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string
	// Clock overrides the wall clock; nil means system time.
	Clock service.Clock
}

// Stores bundles the backing repositories, whichever backends they run on.
type Stores struct {
	Users    ports.UserRepository
	Roles    ports.RoleRepository
	Activity ports.ActivityRepository
	Articles ports.ArticleRepository
}

// The echoprometheus middleware registers its collectors with the default
// registry; building it once lets NewRouter be called repeatedly in tests.
var (
	promOnce       sync.Once
	promMiddleware echo.MiddlewareFunc
)

func metricsMiddleware() echo.MiddlewareFunc {
	promOnce.Do(func() {
		promMiddleware = echoprometheus.NewMiddleware("rbac")
	})
	return promMiddleware
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg Config, stores Stores, log zerolog.Logger, checks []handler.DependencyCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(metricsMiddleware())

	// --- Core services ---
	clock := cfg.Clock
	if clock == nil {
		clock = service.SystemClock()
	}
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, clock)
	resolver := service.NewPermissionResolver(stores.Roles, log)
	activitySvc := service.NewActivityService(stores.Activity, log, clock, service.ActivityHooks{
		OnRecord:  func(action string) { metrics.ActivityRecordsTotal.WithLabelValues(action).Inc() },
		OnFailure: metrics.ActivityLogFailuresTotal.Inc,
	})
	authSvc := service.NewAuthService(stores.Users, tokens, activitySvc, clock)
	userSvc := service.NewUserService(stores.Users, activitySvc, clock)
	articleSvc := service.NewArticleService(stores.Articles, activitySvc, clock)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	userHandler := handler.NewUserHandler(userSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	healthHandler := handler.NewHealthHandler(checks)

	authMW := middleware.Authenticate(tokens, stores.Users)

	// --- Public routes ---
	e.GET("/", index)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	articles := apiGroup.Group("/articles", authMW)
	articles.GET("", articleHandler.List, middleware.RequirePermission(resolver, domain.PermReadArticles))
	articles.POST("", articleHandler.Create, middleware.RequirePermission(resolver, domain.PermWriteArticles))
	articles.DELETE("/:id", articleHandler.Delete, middleware.RequirePermission(resolver, domain.PermDeleteArticles))

	users := apiGroup.Group("/users", authMW)
	users.GET("", userHandler.List, middleware.RequireRole(domain.RoleAdmin))
	users.PUT("/profile", userHandler.UpdateProfile)
	users.PUT("/:id", userHandler.Update, middleware.RequireRole(domain.RoleAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	activity := apiGroup.Group("/activity", authMW)
	activity.GET("", activityHandler.ListAll, middleware.RequireRole(domain.RoleAdmin))
	activity.GET("/me", activityHandler.ListMine)

	return e
}

func index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "RBAC API - backend is running",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":   "/health",
			"auth":     "/api/auth",
			"articles": "/api/articles",
			"users":    "/api/users",
			"activity": "/api/activity",
		},
	})
}
