package handlers

import (
	"errors"
	"net/http"
	"time"

	"becas-crm/config"
	"becas-crm/internal/rules"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitApplicationInput определяет структуру подачи заявки.
type SubmitApplicationInput struct {
	ApplicantID uint  `json:"applicantId" binding:"required"`
	GrantCallID *uint `json:"grantCallId"`
}

// SubmitApplicationHandler подает заявку соискателя на конвокаторию.
// Номер заявки выдается как UUID. Подача после дедлайна отклоняется.
func SubmitApplicationHandler(c *gin.Context) {
	var input SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var applicant models.Applicant
	if err := config.DB.First(&applicant, input.ApplicantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Applicant not found"})
		return
	}

	call, err := resolveCall(input.GrantCallID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if call.ApplicationDeadline != nil && time.Now().After(*call.ApplicationDeadline) {
		c.JSON(http.StatusConflict, gin.H{"error": "Application deadline has passed for this grant call"})
		return
	}

	// Повторная заявка того же соискателя на ту же конвокаторию не допускается
	var existing int64
	config.DB.Model(&models.Application{}).
		Where("applicant_id = ? AND grant_call_id = ?", applicant.ID, call.ID).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Applicant already has an application for this grant call"})
		return
	}

	userID, _ := c.Get("user_id")
	application := models.Application{
		Number:      uuid.NewString(),
		ApplicantID: applicant.ID,
		GrantCallID: call.ID,
		Status:      "Submitted",
	}
	if id, ok := userID.(uint); ok {
		application.UserID = id
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": application})
}

// ListApplicationsHandler возвращает заявки в зависимости от прав и фильтров.
func ListApplicationsHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	query := config.DB.Preload("Applicant").Preload("GrantCall").Order("created_at desc")

	if requestedStatus := c.Query("status"); requestedStatus != "" {
		query = query.Where("status = ?", requestedStatus)
	}
	if callID := c.Query("call_id"); callID != "" {
		query = query.Where("grant_call_id = ?", callID)
	}

	// Без права на просмотр всех заявок пользователь видит только свои
	if c.Query("type") == "my" || !hasPermission(c, "applications_view_all") {
		query = query.Where("user_id = ?", userID)
	}

	var totalRows int64
	query.Model(&models.Application{}).Count(&totalRows)

	var applications []models.Application
	if err := query.Scopes(Paginate(c)).Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, applications, totalRows))
}

// GetApplicationHandler возвращает одну заявку со связанными данными.
func GetApplicationHandler(c *gin.Context) {
	id := c.Param("id")
	var application models.Application
	err := config.DB.Preload("Applicant.Level").Preload("Applicant.Branch").
		Preload("GrantCall.Components").Preload("User").
		First(&application, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	c.JSON(http.StatusOK, application)
}

// DecideApplicationHandler выполняет расчет по заявке и фиксирует решение.
// Статус становится Awarded при положительном итоге и Denied при
// неправомочности; снимок расчета сохраняется и привязывается к заявке.
func DecideApplicationHandler(c *gin.Context) {
	id := c.Param("id")
	var application models.Application
	err := config.DB.Preload("Applicant.Level").Preload("Applicant.Branch").
		Preload("GrantCall.Components").
		First(&application, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if application.Status == "Awarded" || application.Status == "Denied" {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has already been decided"})
		return
	}

	rs, err := loadRuleSet(application.GrantCall)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rule set: " + err.Error()})
		return
	}

	facts := applicantFacts(application.Applicant, application.GrantCall)
	result, err := rs.Evaluate(facts)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrUnknownCategory):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, rules.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	evaluation := snapshotEvaluation(result, application.GrantCallID, &application.ID)
	if err := config.DB.Create(evaluation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save evaluation"})
		return
	}

	now := time.Now()
	application.DecidedAt = &now
	if result.Eligible {
		application.Status = "Awarded"
		application.RejectionReason = ""
	} else {
		application.Status = "Denied"
		application.RejectionReason = result.Reason
	}

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application": application,
		"result":      result,
	})
}

// GetApplicationCountsHandler возвращает количество заявок по статусам.
func GetApplicationCountsHandler(c *gin.Context) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := config.DB.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count applications"})
		return
	}

	response := gin.H{"Submitted": 0, "Awarded": 0, "Denied": 0}
	for _, sc := range counts {
		response[sc.Status] = sc.Count
	}
	c.JSON(http.StatusOK, response)
}
