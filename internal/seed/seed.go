// Package seed заполняет пустую базу набором правил конвокатории по
// умолчанию из embedded-конфига пакета rules.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"becas-crm/config"
	"becas-crm/internal/rules"
	"becas-crm/models"
)

// Umbral 1 de renta familiar по размеру домохозяйства (1..8 человек),
// конвокатория 2024-25.
var defaultIncomeThresholds = models.IncomeThresholds{
	8849, 13288, 18032, 21398, 24089, 26668, 29153, 31625,
}

// Defaults создает справочники и конвокаторию по умолчанию, если база пуста.
// Повторный запуск ничего не меняет.
func Defaults() error {
	var callCount int64
	if err := config.DB.Model(&models.GrantCall{}).Count(&callCount).Error; err != nil {
		return fmt.Errorf("count grant calls: %w", err)
	}
	if callCount > 0 {
		return nil
	}

	rs := rules.Default()

	for name, rule := range rs.Levels {
		level := models.AcademicLevel{Name: name, MinEnrollment: rule.MinEnrollment, EnrollmentUnit: rule.Unit}
		if err := config.DB.Create(&level).Error; err != nil {
			return fmt.Errorf("seed level %q: %w", name, err)
		}
	}
	for name, pct := range rs.Branches {
		branch := models.FieldBranch{Name: name, TuitionPercent: pct}
		if err := config.DB.Create(&branch).Error; err != nil {
			return fmt.Errorf("seed branch %q: %w", name, err)
		}
	}

	deadline := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)
	call := models.GrantCall{
		AcademicYear:        "2024-25",
		Title:               "Becas de carácter general para estudiantes postobligatorios",
		ApplicationDeadline: &deadline,
		ExcellenceMinGrade:  rs.Excellence.MinGrade,
		ExcellenceGradeCap:  rs.Excellence.GradeCap,
		ExcellenceMinAmount: rs.Excellence.MinAmount,
		ExcellenceMaxAmount: rs.Excellence.MaxAmount,
		IsActive:            true,
		IncomeThresholds:    defaultIncomeThresholds,
	}
	for _, comp := range rs.Components {
		call.Components = append(call.Components, models.GrantComponent{
			Name:             comp.Name,
			Amount:           comp.Amount,
			Condition:        comp.Condition,
			IncompatibleWith: comp.IncompatibleWith,
		})
	}

	if err := config.DB.Create(&call).Error; err != nil {
		return fmt.Errorf("seed default grant call: %w", err)
	}

	slog.Info("База заполнена конвокаторией по умолчанию", "academic_year", call.AcademicYear)
	return nil
}
