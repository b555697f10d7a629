package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
	paymentService    services.PaymentService
}

func NewMembershipHandler(base *BaseHandler, membershipService services.MembershipService, paymentService services.PaymentService) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       base,
		membershipService: membershipService,
		paymentService:    paymentService,
	}
}

func (h *MembershipHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Listing and reading apply pending status transitions before responding.
	memberships := r.Group("/memberships")
	{
		memberships.GET("", h.ListMemberships)
		memberships.GET("/:membershipId", h.GetMembership)
		memberships.GET("/:membershipId/balance", h.GetBalance)
		memberships.GET("/:membershipId/payments", h.ListMembershipPayments)
	}

	write := r.Group("/memberships")
	write.Use(middleware.RequirePermission(auth.PermMembershipsWrite))
	{
		write.POST("", h.CreateMembership)
		write.POST("/enroll", h.EnrollMember)
		write.POST("/:membershipId/renew", h.RenewMembership)
		write.POST("/:membershipId/cancel", h.DeactivateMembership)
	}

	pay := r.Group("/memberships")
	pay.Use(middleware.RequirePermission(auth.PermPaymentsWrite))
	{
		pay.POST("/:membershipId/clear-balance", h.ClearBalance)
	}
}

func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.CreateMembershipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	membership, err := h.membershipService.CreateMembership(c.Request.Context(), h.GetDB(c), gymID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

func (h *MembershipHandler) EnrollMember(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	enrollment, err := h.membershipService.EnrollMember(c.Request.Context(), h.GetDB(c), gymID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	memberships, err := h.membershipService.ListActiveMemberships(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"memberships": memberships, "total": len(memberships)})
}

func (h *MembershipHandler) GetMembership(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.GetMembership(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *MembershipHandler) GetBalance(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	balance, err := h.membershipService.GetBalance(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

func (h *MembershipHandler) RenewMembership(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.RenewMembershipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	renewal, err := h.membershipService.RenewMembership(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, renewal)
}

func (h *MembershipHandler) DeactivateMembership(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.DeactivateMembership(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *MembershipHandler) ClearBalance(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.ClearBalanceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.ClearBalance(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *MembershipHandler) ListMembershipPayments(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByMembership(c.Request.Context(), h.GetDB(c), gymID, c.Param("membershipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}
