package handlers

import (
	"net/http"
	"strconv"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
)

// ListApplicantsHandler возвращает список соискателей с пагинацией.
// Поддерживается поиск по фамилии/имени/DNI через параметр search.
func ListApplicantsHandler(c *gin.Context) {
	var applicants []models.Applicant

	query := config.DB.Preload("Level").Preload("Branch").Order("id asc")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("last_name ILIKE ? OR first_name ILIKE ? OR dni ILIKE ?", like, like, like)
	}
	if levelID := c.Query("level_id"); levelID != "" {
		query = query.Where("level_id = ?", levelID)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var totalRows int64
	query.Model(&models.Applicant{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&applicants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch applicants"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, applicants, totalRows))
}

// ApplicantInput определяет структуру для создания/обновления соискателя.
type ApplicantInput struct {
	LastName        string  `json:"lastName" binding:"required"`
	FirstName       string  `json:"firstName" binding:"required"`
	DNI             string  `json:"dni" binding:"required"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	University      string  `json:"university"`
	LevelID         *uint   `json:"levelId"`
	BranchID        *uint   `json:"branchId"`
	EnrolledCredits int     `json:"enrolledCredits"`
	GradeAverage    float64 `json:"gradeAverage"`
	HouseholdIncome float64 `json:"householdIncome"`
	HouseholdSize   int     `json:"householdSize"`
	ResidenceAway   *bool   `json:"residenceAway"`
	Comments        string  `json:"comments"`
}

// CreateApplicantHandler создает нового соискателя.
func CreateApplicantHandler(c *gin.Context) {
	var input ApplicantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicant := models.Applicant{
		LastName:        input.LastName,
		FirstName:       input.FirstName,
		DNI:             input.DNI,
		Email:           input.Email,
		Phone:           input.Phone,
		University:      input.University,
		LevelID:         input.LevelID,
		BranchID:        input.BranchID,
		EnrolledCredits: input.EnrolledCredits,
		GradeAverage:    input.GradeAverage,
		HouseholdIncome: input.HouseholdIncome,
		HouseholdSize:   input.HouseholdSize,
		ResidenceAway:   input.ResidenceAway,
		Comments:        input.Comments,
	}

	if err := config.DB.Create(&applicant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create applicant: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, applicant)
}

// GetApplicantHandler возвращает одного соискателя по ID.
func GetApplicantHandler(c *gin.Context) {
	id := c.Param("id")
	var applicant models.Applicant
	if err := config.DB.Preload("Level").Preload("Branch").First(&applicant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Applicant not found"})
		return
	}
	c.JSON(http.StatusOK, applicant)
}

// UpdateApplicantHandler обновляет данные соискателя.
func UpdateApplicantHandler(c *gin.Context) {
	id := c.Param("id")
	var applicant models.Applicant
	if err := config.DB.First(&applicant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Applicant not found"})
		return
	}

	var input ApplicantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicant.LastName = input.LastName
	applicant.FirstName = input.FirstName
	applicant.DNI = input.DNI
	applicant.Email = input.Email
	applicant.Phone = input.Phone
	applicant.University = input.University
	applicant.LevelID = input.LevelID
	applicant.BranchID = input.BranchID
	applicant.EnrolledCredits = input.EnrolledCredits
	applicant.GradeAverage = input.GradeAverage
	applicant.HouseholdIncome = input.HouseholdIncome
	applicant.HouseholdSize = input.HouseholdSize
	applicant.ResidenceAway = input.ResidenceAway
	applicant.Comments = input.Comments

	if err := config.DB.Save(&applicant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update applicant"})
		return
	}

	c.JSON(http.StatusOK, applicant)
}

// DeleteApplicantHandler мягко удаляет соискателя.
// Удаление блокируется, пока у соискателя есть заявки.
func DeleteApplicantHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid applicant ID"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.Application{}).Where("applicant_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check linked applications"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete applicant with existing applications"})
		return
	}

	if result := config.DB.Delete(&models.Applicant{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete applicant"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Applicant not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Applicant deleted successfully"})
	}
}
