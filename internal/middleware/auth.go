package middleware

import (
	"strings"

	"admin_backend/internal/logger"
	"admin_backend/internal/services"
	"admin_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards every protected route. It parses the bearer token
// and re-confirms the subject account still exists, so a deleted account is
// locked out immediately even with an unexpired token.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized("No token provided"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.VerifyToken(c.Request.Context(), tokenStr)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("role", user.Role)
		c.Next()
	}
}

// GetUserID extracts the authenticated user's id from the gin context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
