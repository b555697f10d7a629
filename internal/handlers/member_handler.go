package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/middleware"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

type MemberHandler struct {
	*BaseHandler
	memberService     services.MemberService
	membershipService services.MembershipService
	paymentService    services.PaymentService
}

func NewMemberHandler(
	base *BaseHandler,
	memberService services.MemberService,
	membershipService services.MembershipService,
	paymentService services.PaymentService,
) *MemberHandler {
	return &MemberHandler{
		BaseHandler:       base,
		memberService:     memberService,
		membershipService: membershipService,
		paymentService:    paymentService,
	}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.ListMembers)
		members.GET("/:memberId", h.GetMember)
		members.GET("/:memberId/memberships", h.ListMemberMemberships)
		members.GET("/:memberId/payments", h.ListMemberPayments)
	}

	write := r.Group("/members")
	write.Use(middleware.RequirePermission(auth.PermMembersWrite))
	{
		write.POST("", h.CreateMember)
		write.PUT("/:memberId", h.UpdateMember)
		write.DELETE("/:memberId", h.DeactivateMember)
	}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.memberService.CreateMember(c.Request.Context(), h.GetDB(c), gymID, &req)
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

func (h *MemberHandler) ListMembers(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members, "total": len(members)})
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), h.GetDB(c), gymID, c.Param("memberId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), h.GetDB(c), gymID, c.Param("memberId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) DeactivateMember(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	member, err := h.memberService.DeactivateMember(c.Request.Context(), h.GetDB(c), gymID, c.Param("memberId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) ListMemberMemberships(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	memberships, err := h.membershipService.ListMemberMemberships(c.Request.Context(), h.GetDB(c), gymID, c.Param("memberId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"memberships": memberships, "total": len(memberships)})
}

func (h *MemberHandler) ListMemberPayments(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByMember(c.Request.Context(), h.GetDB(c), gymID, c.Param("memberId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}
