package handlers

import (
	"net/http"

	"admin_backend/internal/services"
	"admin_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	*BaseHandler
	faqService services.FAQService
}

func NewFAQHandler(base *BaseHandler, faqService services.FAQService) *FAQHandler {
	return &FAQHandler{
		BaseHandler: base,
		faqService:  faqService,
	}
}

func (h *FAQHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	faqs := r.Group("/faqs")
	faqs.Use(authMW)
	{
		faqs.GET("", h.List)
		faqs.POST("", h.Create)
		faqs.PUT("/:id", h.Update)
		faqs.DELETE("/:id", h.Delete)
	}
}

func (h *FAQHandler) List(c *gin.Context) {
	var query dto.FAQListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	faqs, err := h.faqService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, faqs)
}

func (h *FAQHandler) Create(c *gin.Context) {
	var req dto.FAQRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	faq, err := h.faqService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "FAQ created successfully",
		"id":      faq.ID,
	})
}

func (h *FAQHandler) Update(c *gin.Context) {
	var req dto.FAQRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.faqService.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQ updated successfully",
	})
}

func (h *FAQHandler) Delete(c *gin.Context) {
	if err := h.faqService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FAQ deleted successfully",
	})
}
