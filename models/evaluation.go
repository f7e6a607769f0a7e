// models/evaluation.go

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ComponentBreakdown - тип для хранения назначенных фиксированных выплат
// (имя компонента -> сумма) в формате JSONB.
type ComponentBreakdown map[string]float64

// Value преобразует разбивку в JSON для сохранения в БД.
func (b ComponentBreakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan считывает данные из БД (в формате JSON) и преобразует их в разбивку.
func (b *ComponentBreakdown) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, b)
}

// Evaluation представляет сохраненный результат расчета стипендии.
// Снимок неизменен: при повторном расчете создается новая запись.
type Evaluation struct {
	gorm.Model
	ApplicationID   *uint              `json:"applicationId"`
	GrantCallID     uint               `json:"grantCallId"`
	Eligible        bool               `json:"eligible"`
	Reason          string             `json:"reason"`
	TuitionPercent  float64            `json:"tuitionPercent"`
	FixedTotal      float64            `json:"fixedTotal"`
	ExcellenceBonus float64            `json:"excellenceBonus"`
	Total           float64            `json:"total"`
	Breakdown       ComponentBreakdown `json:"breakdown" gorm:"type:jsonb"`
	EvaluatedAt     time.Time          `json:"evaluatedAt"`

	Application *Application `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
}

// TableName задает имя таблицы для GORM.
func (Evaluation) TableName() string {
	return "evaluations"
}
