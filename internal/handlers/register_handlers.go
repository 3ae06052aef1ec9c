package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/plannivo/revenue-backend/internal/core/ports/services"
	"github.com/plannivo/revenue-backend/internal/middleware"
	"github.com/plannivo/revenue-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerHomeRoutes(v1)
	RegisterRevenueRoutes(v1, services, newSyncLimiter(cfg.SyncRateLimit))
}

// newSyncLimiter builds the in-memory rate limiter applied to the sync
// endpoint. A malformed rate falls back to an unlimited middleware so a
// config typo cannot take the endpoint down.
func newSyncLimiter(rateFormat string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		slog.Warn("Invalid sync rate limit format, rate limiting disabled",
			slog.String("rate", rateFormat),
			slog.String("error", err.Error()))
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
