package handlers

import (
	"net/http"
	"strings"

	"admin_backend/internal/services"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/verify", h.Verify)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Verify re-validates the caller's token and returns the fresh identity.
// Used by the frontend on page load to decide whether to show the login
// screen.
func (h *AuthHandler) Verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		h.HandleServiceError(c, apperrors.ErrUnauthorized("No token provided"))
		return
	}

	user, err := h.authService.VerifyToken(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Success: true,
		User:    *user,
	})
}

// Logout only acknowledges; tokens are self-contained and there is no
// server-side revocation list, so the client discards its copy and a leaked
// token stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}
