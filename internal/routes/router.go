package routes

import (
	"becas-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// --- Публичные маршруты ---
	// Вход, регистрация и проверка живости не требуют аутентификации.
	RegisterAuthRoutes(r)

	// --- Защищенная группа маршрутов ---
	// Все маршруты в этой группе требуют валидный JWT токен.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
