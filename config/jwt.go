// becas-crm/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

// JwtKey - ключ подписи JWT токенов. Загружается из окружения при старте.
var JwtKey []byte

func InitJWT() {
	key := os.Getenv("JWT_SECRET")
	if key == "" {
		slog.Error("Критическая ошибка: переменная окружения JWT_SECRET не установлена.")
		os.Exit(1)
	}
	JwtKey = []byte(key)
}
