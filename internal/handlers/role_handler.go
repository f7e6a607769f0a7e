package handlers

import (
	"net/http"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleInput определяет структуру для создания/обновления роли.
type RoleInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	PermissionIDs []uint `json:"permissionIds"`
}

// ListRolesHandler возвращает все роли с их правами.
func ListRolesHandler(c *gin.Context) {
	var roles []models.Role
	if err := config.DB.Preload("Permissions").Order("id asc").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetRoleHandler возвращает одну роль по ID.
func GetRoleHandler(c *gin.Context) {
	id := c.Param("id")
	var role models.Role
	if err := config.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, role)
}

// CreateRoleHandler создает новую роль с набором прав.
func CreateRoleHandler(c *gin.Context) {
	var input RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role{Name: input.Name, Description: input.Description}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		if len(input.PermissionIDs) > 0 {
			var permissions []models.Permission
			if err := tx.Where("id IN ?", input.PermissionIDs).Find(&permissions).Error; err != nil {
				return err
			}
			if err := tx.Model(&role).Association("Permissions").Replace(permissions); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, role)
}

// UpdateRoleHandler обновляет роль и заменяет ее набор прав.
func UpdateRoleHandler(c *gin.Context) {
	id := c.Param("id")
	var role models.Role
	if err := config.DB.First(&role, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	var input RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		role.Name = input.Name
		role.Description = input.Description
		if err := tx.Save(&role).Error; err != nil {
			return err
		}

		var permissions []models.Permission
		if len(input.PermissionIDs) > 0 {
			if err := tx.Where("id IN ?", input.PermissionIDs).Find(&permissions).Error; err != nil {
				return err
			}
		}
		return tx.Model(&role).Association("Permissions").Replace(permissions)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role: " + err.Error()})
		return
	}

	// После смены прав роли кэшированные данные ее пользователей устарели
	var userIDs []uint
	config.DB.Table("user_roles").Where("role_id = ?", role.ID).Pluck("user_id", &userIDs)
	for _, uid := range userIDs {
		invalidateUserCache(uid)
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRoleHandler удаляет роль.
func DeleteRoleHandler(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Table("user_roles").Where("role_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check linked users"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete role assigned to users"})
		return
	}

	if result := config.DB.Delete(&models.Role{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
	}
}
