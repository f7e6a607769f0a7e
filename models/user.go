// models/user.go

package models

import "gorm.io/gorm"

// User представляет модель сотрудника офиса стипендий в базе данных.
type User struct {
	gorm.Model
	Login    string `json:"login" gorm:"unique;not null"`
	Password string `json:"-"` // bcrypt-хэш, никогда не отдается наружу
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Status   string `json:"status" gorm:"default:'Active'"`

	Roles []Role `json:"roles" gorm:"many2many:user_roles;"`
}

// TableName задает имя таблицы для GORM.
func (User) TableName() string {
	return "users"
}
