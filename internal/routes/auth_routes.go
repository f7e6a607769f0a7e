package routes

import (
	"net/http"

	"becas-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты для аутентификации.
// Эти маршруты не требуют middleware для проверки токена.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.LoginHandler)
	r.POST("/register", handlers.RegisterHandler)
	r.GET("/logout", handlers.LogoutHandler)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
