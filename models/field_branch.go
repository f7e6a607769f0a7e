// models/field_branch.go

package models

import "gorm.io/gorm"

// FieldBranch представляет отрасль обучения (rama de conocimiento).
// Процент покрытия матрикулы фиксирован для каждой отрасли.
type FieldBranch struct {
	gorm.Model
	Name           string  `json:"name" gorm:"unique;not null"`
	TuitionPercent float64 `json:"tuitionPercent" gorm:"not null"`
}

// TableName задает имя таблицы для GORM.
func (FieldBranch) TableName() string {
	return "field_branches"
}
