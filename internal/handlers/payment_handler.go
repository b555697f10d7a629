package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/billing"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.GET("/revenue", h.GetRevenueSummary)
		payments.GET("/memberships/:membershipId/total", h.GetTotalPaid)
		payments.GET("/:paymentId", h.GetPayment)
	}

	write := r.Group("/payments")
	write.Use(middleware.RequirePermission(auth.PermPaymentsWrite))
	{
		write.POST("", h.CreatePayment)
	}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), h.GetDB(c), gymID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByGym(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), h.GetDB(c), gymID, c.Param("paymentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetTotalPaid(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	membershipID := c.Param("membershipId")

	total, err := h.paymentService.GetTotalPaidForMembership(c.Request.Context(), h.GetDB(c), gymID, membershipID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"membership_id": membershipID, "total_paid": billing.Format(total)})
}

func (h *PaymentHandler) GetRevenueSummary(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var query dto.RevenueQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	summary, err := h.paymentService.GetRevenueSummary(c.Request.Context(), h.GetDB(c), gymID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
