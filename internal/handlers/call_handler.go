package handlers

import (
	"net/http"
	"strconv"
	"time"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListCallsHandler возвращает все конвокатории с компонентами.
func ListCallsHandler(c *gin.Context) {
	var calls []models.GrantCall
	if err := config.DB.Preload("Components").Order("id desc").Find(&calls).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch grant calls"})
		return
	}
	c.JSON(http.StatusOK, calls)
}

// GetCallHandler возвращает одну конвокаторию по ID.
func GetCallHandler(c *gin.Context) {
	id := c.Param("id")
	var call models.GrantCall
	if err := config.DB.Preload("Components").First(&call, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grant call not found"})
		return
	}
	c.JSON(http.StatusOK, call)
}

// ComponentInput - входящие данные одного компонента конвокатории.
type ComponentInput struct {
	Name             string   `json:"name" binding:"required"`
	Amount           float64  `json:"amount"`
	Condition        string   `json:"condition"`
	IncompatibleWith []string `json:"incompatibleWith"`
}

// CallInput определяет структуру для создания/обновления конвокатории.
type CallInput struct {
	AcademicYear        string           `json:"academicYear" binding:"required"`
	Title               string           `json:"title"`
	ApplicationDeadline string           `json:"applicationDeadline"` // "2006-01-02"
	ExcellenceMinGrade  float64          `json:"excellenceMinGrade"`
	ExcellenceGradeCap  float64          `json:"excellenceGradeCap"`
	ExcellenceMinAmount float64          `json:"excellenceMinAmount"`
	ExcellenceMaxAmount float64          `json:"excellenceMaxAmount"`
	IncomeThresholds    []float64        `json:"incomeThresholds"`
	Components          []ComponentInput `json:"components"`
}

func (in *CallInput) deadline() (*time.Time, error) {
	if in.ApplicationDeadline == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", in.ApplicationDeadline)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateCallHandler создает конвокаторию вместе с ее компонентами.
func CreateCallHandler(c *gin.Context) {
	var input CallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := input.deadline()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format, expected YYYY-MM-DD"})
		return
	}

	call := models.GrantCall{
		AcademicYear:        input.AcademicYear,
		Title:               input.Title,
		ApplicationDeadline: deadline,
		ExcellenceMinGrade:  input.ExcellenceMinGrade,
		ExcellenceGradeCap:  input.ExcellenceGradeCap,
		ExcellenceMinAmount: input.ExcellenceMinAmount,
		ExcellenceMaxAmount: input.ExcellenceMaxAmount,
		IncomeThresholds:    input.IncomeThresholds,
	}
	for _, comp := range input.Components {
		call.Components = append(call.Components, models.GrantComponent{
			Name:             comp.Name,
			Amount:           comp.Amount,
			Condition:        comp.Condition,
			IncompatibleWith: comp.IncompatibleWith,
		})
	}

	if err := config.DB.Create(&call).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create grant call: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, call)
}

// UpdateCallHandler обновляет конвокаторию и полностью заменяет ее компоненты.
func UpdateCallHandler(c *gin.Context) {
	id := c.Param("id")
	var call models.GrantCall
	if err := config.DB.First(&call, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grant call not found"})
		return
	}

	var input CallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := input.deadline()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format, expected YYYY-MM-DD"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		call.AcademicYear = input.AcademicYear
		call.Title = input.Title
		call.ApplicationDeadline = deadline
		call.ExcellenceMinGrade = input.ExcellenceMinGrade
		call.ExcellenceGradeCap = input.ExcellenceGradeCap
		call.ExcellenceMinAmount = input.ExcellenceMinAmount
		call.ExcellenceMaxAmount = input.ExcellenceMaxAmount
		call.IncomeThresholds = input.IncomeThresholds

		if err := tx.Save(&call).Error; err != nil {
			return err
		}

		// Старые компоненты убираем, новые создаем одним блоком
		if err := tx.Where("grant_call_id = ?", call.ID).Delete(&models.GrantComponent{}).Error; err != nil {
			return err
		}
		for _, comp := range input.Components {
			newComp := models.GrantComponent{
				GrantCallID:      call.ID,
				Name:             comp.Name,
				Amount:           comp.Amount,
				Condition:        comp.Condition,
				IncompatibleWith: comp.IncompatibleWith,
			}
			if err := tx.Create(&newComp).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update grant call: " + err.Error()})
		return
	}

	invalidateRuleCache(call.ID)
	config.DB.Preload("Components").First(&call, call.ID)
	c.JSON(http.StatusOK, call)
}

// ActivateCallHandler делает конвокаторию активной (и деактивирует прочие).
// Активная конвокатория используется по умолчанию при подаче заявок.
func ActivateCallHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid call ID"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GrantCall{}).Where("is_active = true").Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.GrantCall{}).Where("id = ?", id).Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grant call not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate grant call"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Grant call activated"})
}

// DeleteCallHandler удаляет конвокаторию.
// Удаление блокируется, пока по конвокатории есть заявки.
func DeleteCallHandler(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Model(&models.Application{}).Where("grant_call_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check linked applications"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete grant call with existing applications"})
		return
	}

	idInt, _ := strconv.Atoi(id)
	if result := config.DB.Delete(&models.GrantCall{}, idInt); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete grant call"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grant call not found"})
	} else {
		invalidateRuleCache(uint(idInt))
		c.JSON(http.StatusOK, gin.H{"message": "Grant call deleted successfully"})
	}
}
