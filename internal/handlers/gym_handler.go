package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/services"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type GymHandler struct {
	*BaseHandler
	gymService services.GymService
}

func NewGymHandler(base *BaseHandler, gymService services.GymService) *GymHandler {
	return &GymHandler{
		BaseHandler: base,
		gymService:  gymService,
	}
}

// RegisterPublicRoutes mounts tenant sign-up, which needs no token.
func (h *GymHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/gyms", h.RegisterGym)
}

func (h *GymHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gyms/:gymId", h.GetGym)
}

func (h *GymHandler) RegisterGym(c *gin.Context) {
	var req dto.RegisterGymRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gym, err := h.gymService.RegisterGym(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gym)
}

func (h *GymHandler) GetGym(c *gin.Context) {
	gymID, ok := h.GetGymID(c)
	if !ok {
		return
	}
	if c.Param("gymId") != gymID {
		apperrors.HandleError(c, apperrors.ErrTenantMismatch)
		return
	}

	gym, err := h.gymService.GetGym(c.Request.Context(), h.GetDB(c), gymID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}
