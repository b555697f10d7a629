package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

type PlanHandler struct {
	*BaseHandler
	planService    services.PlanService
	paymentService services.PaymentService
}

func NewPlanHandler(base *BaseHandler, planService services.PlanService, paymentService services.PaymentService) *PlanHandler {
	return &PlanHandler{
		BaseHandler:    base,
		planService:    planService,
		paymentService: paymentService,
	}
}

func (h *PlanHandler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:planId", h.GetPlan)
		plans.GET("/:planId/payments", h.ListPlanPayments)
	}

	// Catalog changes are owner-only.
	write := r.Group("/plans")
	write.Use(middleware.RequirePermission(auth.PermPlansWrite))
	{
		write.POST("", h.CreatePlan)
		write.PUT("/:planId", h.UpdatePlan)
		write.DELETE("/:planId", h.DeactivatePlan)
	}
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.planService.CreatePlan(c.Request.Context(), h.GetDB(c), gymID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome == dto.OutcomeReactivated {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": len(plans)})
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), h.GetDB(c), gymID, c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), h.GetDB(c), gymID, c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeactivatePlan(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	plan, err := h.planService.DeactivatePlan(c.Request.Context(), h.GetDB(c), gymID, c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ListPlanPayments(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByPlan(c.Request.Context(), h.GetDB(c), gymID, c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}
