package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.RequirePermission(auth.PermAnalyticsRead))
	{
		analytics.GET("/memberships", h.GetMembershipStats)
	}
}

func (h *AnalyticsHandler) GetMembershipStats(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetMembershipStats(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
