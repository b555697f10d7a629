package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/handlers"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
)

// RegisterRoutes mounts the public and tenant-scoped API under /api/v1
// together with the health and metrics endpoints.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authCfg auth.Config,
	db *gorm.DB,
) {
	ginRouter.GET("/healthz", healthCheck(db))
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := ginRouter.Group("/api/v1")
	appHandlers.GymHandler.RegisterPublicRoutes(api)

	tenant := api.Group("")
	tenant.Use(middleware.AuthMiddleware(authCfg))
	{
		appHandlers.GymHandler.RegisterRoutes(tenant)
		appHandlers.MemberHandler.RegisterRoutes(tenant)
		appHandlers.PlanHandler.RegisterRoutes(tenant)
		appHandlers.MembershipHandler.RegisterRoutes(tenant)
		appHandlers.PaymentHandler.RegisterRoutes(tenant)
		appHandlers.AnalyticsHandler.RegisterRoutes(tenant)
	}

	logger.Info("routes registered", "count", len(ginRouter.Routes()))
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "health check failed", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
