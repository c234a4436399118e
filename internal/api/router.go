package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whiskerworks/cat-registry/internal/api/handler"
	"github.com/whiskerworks/cat-registry/internal/api/middleware"
	"github.com/whiskerworks/cat-registry/internal/api/policy"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/service"
	mongodb "github.com/whiskerworks/cat-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/whiskerworks/cat-registry/internal/infrastructure/db/redis"
	"github.com/whiskerworks/cat-registry/internal/pkg/token"
)

// NewRouter builds the Echo instance with all routes, their policies, and
// the gate chain registered. The policy table is populated here, next to the
// routes it governs, and is read-only once the router is returned.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("cat_registry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catRepo := mongodb.NewCatRepository(db)
	breedRepo := mongodb.NewBreedRepository(db)
	breedCache := redisdb.NewBreedCache(rdb, log)

	issuer := token.NewIssuer(jwtSecret, tokenTTL)
	verifier := token.NewVerifier(jwtSecret)

	authService := service.NewAuthService(userRepo, issuer, log)
	catService := service.NewCatService(catRepo, breedRepo, log)
	breedService := service.NewBreedService(breedRepo, breedCache, log)

	authHandler := handler.NewAuthHandler(authService)
	catHandler := handler.NewCatHandler(catService)
	breedHandler := handler.NewBreedHandler(breedService)

	// --- Route policies ---
	// Controller defaults first, operation overrides second; the middleware
	// resolves operation-level entries with precedence.
	policies := policy.NewRegistry()
	policies.MarkPublic("POST /auth/signup")
	policies.MarkPublic("POST /auth/login")
	policies.RequireRole("GET /auth/profile", domain.RoleUser)

	// Cats: creation is user-gated; read/update/delete rely on the
	// ownership rule inside the service (owner or admin), so they carry no
	// role requirement beyond authentication.
	policies.RequireRole("POST /cats", domain.RoleUser)

	// Breeds: user by default, admin on mutations of existing entries.
	policies.RequireRole("breeds", domain.RoleUser)
	policies.RequireRole("PATCH /breeds/:id", domain.RoleAdmin)
	policies.RequireRole("DELETE /breeds/:id", domain.RoleAdmin)

	policies.MarkPublic("GET /health")
	policies.MarkPublic("GET /health/ready")
	policies.MarkPublic("GET /metrics")
	policies.MarkPublic("GET /swagger/*")

	// --- Gate chain: authentication, then authorization ---
	e.Use(middleware.Auth(verifier, policies))
	e.Use(middleware.RBAC(policies))

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile)

	// --- Cat routes ---
	e.POST("/cats", catHandler.Create)
	e.GET("/cats", catHandler.List)
	e.GET("/cats/:id", catHandler.Get)
	e.PATCH("/cats/:id", catHandler.Update)
	e.DELETE("/cats/:id", catHandler.Delete)

	// --- Breed routes ---
	e.POST("/breeds", breedHandler.Create)
	e.GET("/breeds", breedHandler.List)
	e.GET("/breeds/:id", breedHandler.Get)
	e.PATCH("/breeds/:id", breedHandler.Update)
	e.DELETE("/breeds/:id", breedHandler.Delete)

	// --- Health probes, metrics, API docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
