// models/academic_level.go

package models

import "gorm.io/gorm"

// AcademicLevel представляет уровень обучения из конвокатории
// (universitario, master, bachillerato и т.д.) вместе с порогом
// минимальной матрикуляции для права на стипендию.
type AcademicLevel struct {
	gorm.Model
	Name           string `json:"name" gorm:"unique;not null"`
	MinEnrollment  int    `json:"minEnrollment" gorm:"not null"` // минимум кредитов/предметов
	EnrollmentUnit string `json:"enrollmentUnit"`                // "creditos" или "asignaturas"
}

// TableName задает имя таблицы для GORM.
func (AcademicLevel) TableName() string {
	return "academic_levels"
}
