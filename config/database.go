// becas-crm/config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("Критическая ошибка: переменная окружения DB_URL не установлена.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Успешное подключение к базе данных!")
}

// MigrateDB прогоняет автомиграцию схемы для переданных моделей.
// Вызывается один раз при старте, сразу после ConnectDB.
func MigrateDB(models ...interface{}) {
	if err := DB.AutoMigrate(models...); err != nil {
		slog.Error("Ошибка автомиграции схемы БД", "error", err)
		os.Exit(1)
	}
	slog.Info("Автомиграция схемы БД завершена")
}
