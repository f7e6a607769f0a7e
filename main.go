// becas-crm/main.go
package main

import (
	"log/slog"
	"os"

	"becas-crm/config"
	"becas-crm/internal/routes"
	"becas-crm/internal/seed"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	config.InitJWT()
	config.ConnectDB()
	config.ConnectRedis()

	// Распознавание объявлений опционально: без ключа сервис стартует,
	// но /api/calls/recognize возвращает 503.
	if err := config.InitGoogleServices(); err != nil {
		slog.Warn("Gemini client not initialized, document recognition disabled", "error", err)
	}

	config.MigrateDB(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.AcademicLevel{},
		&models.FieldBranch{},
		&models.GrantCall{},
		&models.GrantComponent{},
		&models.Applicant{},
		&models.Application{},
		&models.Evaluation{},
	)

	if err := seed.Defaults(); err != nil {
		slog.Error("Ошибка заполнения базы данными по умолчанию", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	slog.Info("Сервис становится доступен", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Ошибка запуска HTTP сервера", "error", err)
		os.Exit(1)
	}
}
