package handlers

import (
	"fmt"
	"log/slog"

	"becas-crm/config"

	"github.com/gin-gonic/gin"
)

// hasPermission проверяет наличие права у пользователя текущего запроса.
func hasPermission(c *gin.Context, name string) bool {
	permissions, exists := c.Get("permissions")
	if !exists {
		return false
	}
	userPermissions, ok := permissions.([]string)
	if !ok {
		return false
	}
	for _, p := range userPermissions {
		if p == name {
			return true
		}
	}
	return false
}

// invalidateUserCache сбрасывает кэшированные роли/права пользователя.
func invalidateUserCache(userID uint) {
	if config.RDB == nil {
		return
	}
	cacheKey := fmt.Sprintf("user:%d:data", userID)
	if err := config.RDB.Del(config.Ctx, cacheKey).Err(); err != nil {
		slog.Error("Failed to invalidate cache for user", "error", err, "user_id", userID)
	}
}
