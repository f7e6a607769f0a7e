package handlers

import (
	"net/http"
	"strconv"
	"time"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserResponse defines the structure for user data sent in API responses.
// This helps prevent accidental leakage of sensitive data like password hashes.
type UserResponse struct {
	ID        uint      `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersHandler returns a paginated list of all users with their roles.
func ListUsersHandler(c *gin.Context) {
	var users []models.User

	query := config.DB.Preload("Roles").Order("id asc")

	if err := query.Scopes(Paginate(c)).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}

	var responseData []UserResponse
	for _, user := range users {
		var roleNames []string
		for _, role := range user.Roles {
			roleNames = append(roleNames, role.Name)
		}
		responseData = append(responseData, UserResponse{
			ID:        user.ID,
			Login:     user.Login,
			Email:     user.Email,
			FullName:  user.FullName,
			Phone:     user.Phone,
			Status:    user.Status,
			Roles:     roleNames,
			CreatedAt: user.CreatedAt,
		})
	}

	var totalRows int64
	config.DB.Model(&models.User{}).Count(&totalRows)
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, responseData, totalRows))
}

// CreateUserInput defines the structure for creating a user from the admin panel.
type CreateUserInput struct {
	Login    string `json:"login" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Status   string `json:"status" binding:"required"`
	RoleIDs  []uint `json:"roleIds"`
}

// UpdateUserInput defines the structure for updating a user.
type UpdateUserInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Status   string `json:"status" binding:"required"`
	RoleIDs  []uint `json:"roleIds"`
	Password string `json:"password"` // For changing the password
}

// GetUserHandler retrieves a single user by ID.
func GetUserHandler(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := config.DB.Preload("Roles").First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUserHandler creates a new user.
func CreateUserHandler(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Login:    input.Login,
		Password: string(hashedPassword),
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Status:   input.Status,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if len(input.RoleIDs) > 0 {
			var roles []models.Role
			if err := tx.Where("id IN ?", input.RoleIDs).Find(&roles).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).Association("Roles").Replace(roles); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUserHandler updates a user's data.
func UpdateUserHandler(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.Phone = input.Phone
	user.Status = input.Status

	// Если передан новый пароль, хэшируем и обновляем его
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = string(hashedPassword)
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		var roles []models.Role
		if len(input.RoleIDs) > 0 {
			if err := tx.Where("id IN ?", input.RoleIDs).Find(&roles).Error; err != nil {
				return err
			}
		}
		return tx.Model(&user).Association("Roles").Replace(roles)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user: " + err.Error()})
		return
	}

	// Сбрасываем кэш ролей/прав после успешного обновления
	invalidateUserCache(user.ID)

	c.JSON(http.StatusOK, user)
}

// DeleteUserHandler soft-deletes a user.
func DeleteUserHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if result := config.DB.Delete(&models.User{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	invalidateUserCache(uint(id))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
