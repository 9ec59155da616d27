package routes

import (
	"net/http"
	"strings"
	"time"

	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the engine. authMW is the
// bearer-token middleware guarding the protected groups.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api")
	{
		api.GET("/health", healthCheck)

		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authMW)
		appHandlers.FAQHandler.RegisterRoutes(api, authMW)
		appHandlers.PlanHandler.RegisterRoutes(api, authMW)
	}

	// Unknown API paths get the structured 404 the frontend expects.
	ginRouter.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "API endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.Status(http.StatusNotFound)
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
