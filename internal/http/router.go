// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, rate limiting, and the bearer-token gate.
//
// Design goals:
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - The storage handle and signing secret enter here once and flow down
//     explicitly; nothing reads them as ambient globals
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/choreboard/go-chore-backend/internal/auth"
	"github.com/choreboard/go-chore-backend/internal/config"
	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/http/handlers"
	"github.com/choreboard/go-chore-backend/internal/http/middleware"
	"github.com/choreboard/go-chore-backend/internal/repo"
	"github.com/choreboard/go-chore-backend/internal/services"
)

// choreRepoShim adapts the repository free functions to the
// services.ChoreRepo interface expected by the ChoreService. This keeps
// services decoupled from the concrete repo package while reusing the
// existing functions.
type choreRepoShim struct{}

// CreateChore proxies repo.CreateChore.
func (choreRepoShim) CreateChore(ctx context.Context, db *gorm.DB, name string, points int) (*domain.Chore, error) {
	return repo.CreateChore(ctx, db, name, points)
}

// ListChores proxies repo.ListChores.
func (choreRepoShim) ListChores(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Chore, error) {
	return repo.ListChores(ctx, db, offset, limit)
}

// GetChore proxies repo.GetChore.
func (choreRepoShim) GetChore(ctx context.Context, db *gorm.DB, id uint) (*domain.Chore, error) {
	return repo.GetChore(ctx, db, id)
}

// UpdateChore proxies repo.UpdateChore.
func (choreRepoShim) UpdateChore(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Chore, error) {
	return repo.UpdateChore(ctx, db, id, fields)
}

// DeleteChore proxies repo.DeleteChore.
func (choreRepoShim) DeleteChore(ctx context.Context, db *gorm.DB, id uint) error {
	return repo.DeleteChore(ctx, db, id)
}

// GetKid proxies repo.GetKid (kid_id existence check on updates).
func (choreRepoShim) GetKid(ctx context.Context, db *gorm.DB, id uint) (*domain.Kid, error) {
	return repo.GetKid(ctx, db, id)
}

// verifierShim adapts auth.TokenService to the middleware.TokenVerifier
// contract, surfacing only the username.
type verifierShim struct{ tokens *auth.TokenService }

// Verify proxies TokenService.Verify and unwraps the subject claim.
func (v verifierShim) Verify(token string) (string, error) {
	claims, err := v.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RequestLogger: structured logs with Authorization masking
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
//
// The bearer gate is applied per route group: /token and /users stay open,
// everything else requires a bearer token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging; Authorization is masked by default
	r.Use(middleware.RequestLogger(middleware.LogOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compressed responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API docs (off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db, token signer ← config
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	choreSvc := services.NewChoreService(db, choreRepoShim{})
	kidSvc := services.NewKidService(db)
	rewardSvc := services.NewRewardService(db)
	userSvc := &services.UserService{DB: db}
	authSvc := &services.AuthService{DB: db, Tokens: tokens}
	h := handlers.New(choreSvc, kidSvc, rewardSvc, userSvc, authSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)

	// Open endpoints: token issuance and registration
	api.POST("/token", h.Login)
	api.POST("/users", h.CreateUser)

	// Everything else sits behind the bearer gate
	protected := api.Group("")
	protected.Use(middleware.RequireBearer(middleware.AuthOptions{
		Strict:   cfg.Auth.Strict,
		Verifier: verifierShim{tokens: tokens},
	}))
	{
		// Chores
		protected.POST("/chores", h.CreateChore)
		protected.GET("/chores", h.ListChores)
		protected.GET("/chores/:id", h.GetChore)
		protected.PUT("/chores/:id", h.UpdateChore)
		protected.DELETE("/chores/:id", h.DeleteChore)

		// Rewards
		protected.POST("/rewards", h.CreateReward)
		protected.GET("/rewards", h.ListRewards)

		// Kids, completions, awards
		protected.POST("/kids", h.CreateKid)
		protected.GET("/kids", h.ListKids)
		protected.POST("/kids/:kid_id/chores/:chore_id", h.CompleteChore)
		protected.POST("/kids/:kid_id/rewards", h.AwardReward)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
