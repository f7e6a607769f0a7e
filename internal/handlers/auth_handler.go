package handlers

import (
	"net/http"
	"time"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// LoginInput определяет структуру для входящих данных формы входа.
type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler проверяет учетные данные и выдает JWT (cookie + тело ответа).
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("login = ?", input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}

	if user.Status != "Active" {
		c.JSON(http.StatusForbidden, gin.H{"error": "User account is not active"})
		return
	}

	expiresAt := time.Now().Add(12 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"login":   user.Login,
		"exp":     expiresAt.Unix(),
	})

	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.SetCookie("auth_token", tokenStr, int(time.Until(expiresAt).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": tokenStr, "login": user.Login})
}

// RegisterInput определяет структуру для регистрации нового сотрудника.
type RegisterInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
}

// RegisterHandler создает нового пользователя без ролей.
// Роли назначает администратор через /api/users.
func RegisterHandler(c *gin.Context) {
	var input RegisterInput
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
		Email:    input.Email,
		FullName: input.FullName,
		Status:   "Active",
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Login already taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "login": user.Login})
}

// LogoutHandler сбрасывает cookie с токеном и кэш пользователя.
func LogoutHandler(c *gin.Context) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(uint); ok {
			invalidateUserCache(id)
		}
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
