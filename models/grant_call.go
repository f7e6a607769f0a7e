// models/grant_call.go

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// IncompatibilityList - специальный тип для хранения списка имен компонентов,
// несовместимых с данным, в формате JSONB.
type IncompatibilityList []string

// Value преобразует список в JSON для сохранения в БД.
func (l IncompatibilityList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan считывает данные из БД (в формате JSON) и преобразует их в список.
func (l *IncompatibilityList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

// IncomeThresholds - таблица порогов дохода (umbral de renta) по размеру
// домохозяйства, хранится в JSONB. Индекс 0 соответствует домохозяйству
// из одного человека.
type IncomeThresholds []float64

// Value преобразует таблицу в JSON для сохранения в БД.
func (t IncomeThresholds) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan считывает данные из БД (в формате JSON) и преобразует их в таблицу.
func (t *IncomeThresholds) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, t)
}

// GrantCall представляет конвокаторию - официальное объявление о стипендиях
// на конкретный учебный год. Параметры бонуса за отличие хранятся прямо
// в записи, фиксированные выплаты - в дочерних компонентах.
type GrantCall struct {
	gorm.Model
	AcademicYear        string           `json:"academicYear" gorm:"unique;not null"` // например "2024-25"
	Title               string           `json:"title"`
	ApplicationDeadline *time.Time       `json:"applicationDeadline"`
	ExcellenceMinGrade  float64          `json:"excellenceMinGrade"`
	ExcellenceGradeCap  float64          `json:"excellenceGradeCap"`
	ExcellenceMinAmount float64          `json:"excellenceMinAmount"`
	ExcellenceMaxAmount float64          `json:"excellenceMaxAmount"`
	IsActive            bool             `json:"isActive" gorm:"default:false"`
	IncomeThresholds    IncomeThresholds `json:"incomeThresholds" gorm:"type:jsonb"`
	Components          []GrantComponent `json:"components" gorm:"foreignKey:GrantCallID"`
}

// ThresholdFor возвращает порог дохода для домохозяйства заданного размера.
// Для размеров за пределами таблицы действует последний порог.
func (c *GrantCall) ThresholdFor(householdSize int) float64 {
	if len(c.IncomeThresholds) == 0 {
		return 0
	}
	if householdSize < 1 {
		householdSize = 1
	}
	if householdSize > len(c.IncomeThresholds) {
		householdSize = len(c.IncomeThresholds)
	}
	return c.IncomeThresholds[householdSize-1]
}

// GrantComponent представляет отдельную фиксированную выплату конвокатории
// (cuantía fija ligada a la renta, a la residencia, beca básica...).
// Условие назначения хранится как формула govaluate.
type GrantComponent struct {
	gorm.Model
	GrantCallID      uint                `json:"grantCallId"`
	Name             string              `json:"name" gorm:"not null"`
	Amount           float64             `json:"amount"`
	Condition        string              `json:"condition"` // формула, например "householdIncome <= incomeThreshold"
	IncompatibleWith IncompatibilityList `json:"incompatibleWith" gorm:"type:jsonb"`
}

// TableName задает имя таблицы для GORM.
func (GrantCall) TableName() string {
	return "grant_calls"
}

// TableName задает имя таблицы для GORM.
func (GrantComponent) TableName() string {
	return "grant_components"
}
