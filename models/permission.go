// File: models/permission.go
package models

// Permission представляет модель права доступа в базе данных.
type Permission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"not null"` // Категория для группировки (e.g., "Заявки", "Конвокатории")
}

// UniquePermissions собирает все уникальные права доступа пользователя через
// его роли. Вызывающий код обязан предзагрузить пользователя
// с Preload("Roles.Permissions").
func (u *User) UniquePermissions() []Permission {
	// Используем карту для сбора уникальных прав доступа, чтобы избежать дубликатов
	permissionMap := make(map[uint]Permission)
	for _, role := range u.Roles {
		for _, permission := range role.Permissions {
			permissionMap[permission.ID] = permission
		}
	}

	permissions := make([]Permission, 0, len(permissionMap))
	for _, permission := range permissionMap {
		permissions = append(permissions, permission)
	}

	return permissions
}
