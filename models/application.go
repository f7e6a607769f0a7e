// models/application.go

package models

import (
	"time"

	"gorm.io/gorm"
)

// Application представляет заявку соискателя на стипендию в рамках конкретной
// конвокатории. Статусная модель: Submitted -> Evaluated -> Awarded/Denied.
type Application struct {
	gorm.Model
	Number          string     `json:"number" gorm:"unique;not null"` // выдается как UUID при подаче
	ApplicantID     uint       `json:"applicantId"`
	GrantCallID     uint       `json:"grantCallId"`
	UserID          uint       `json:"userId"` // сотрудник, оформивший заявку
	Status          string     `json:"status" gorm:"default:'Submitted'"`
	RejectionReason string     `json:"rejectionReason"`
	DecidedAt       *time.Time `json:"decidedAt"`

	Applicant *Applicant `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	GrantCall *GrantCall `gorm:"foreignKey:GrantCallID" json:"grantCall,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName задает имя таблицы для GORM.
func (Application) TableName() string {
	return "applications"
}
