package handlers

import (
	"net/http"

	"admin_backend/internal/services"
	"admin_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	*BaseHandler
	planService services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService services.PlanService) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		planService: planService,
	}
}

// The route segment is /pricing, matching the public site's naming; the
// resource itself is a plan.
func (h *PlanHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	pricing := r.Group("/pricing")
	pricing.Use(authMW)
	{
		pricing.GET("", h.List)
		pricing.POST("", h.Create)
		pricing.PUT("/:id", h.Update)
		pricing.DELETE("/:id", h.Delete)
	}
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.PlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Pricing plan created successfully",
		"id":      plan.ID,
	})
}

func (h *PlanHandler) Update(c *gin.Context) {
	var req dto.PlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.planService.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pricing plan updated successfully",
	})
}

func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.planService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pricing plan deleted successfully",
	})
}
