package handlers

import (
	"net/http"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
)

// --- УРОВНИ ОБУЧЕНИЯ ---

// ListLevelsHandler возвращает все уровни обучения.
func ListLevelsHandler(c *gin.Context) {
	var levels []models.AcademicLevel
	if err := config.DB.Order("id asc").Find(&levels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch academic levels"})
		return
	}
	c.JSON(http.StatusOK, levels)
}

// LevelInput определяет структуру для создания/обновления уровня обучения.
type LevelInput struct {
	Name           string `json:"name" binding:"required"`
	MinEnrollment  int    `json:"minEnrollment" binding:"required"`
	EnrollmentUnit string `json:"enrollmentUnit" binding:"required"`
}

// CreateLevelHandler создает новый уровень обучения.
func CreateLevelHandler(c *gin.Context) {
	var input LevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := models.AcademicLevel{
		Name:           input.Name,
		MinEnrollment:  input.MinEnrollment,
		EnrollmentUnit: input.EnrollmentUnit,
	}
	if err := config.DB.Create(&level).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create academic level"})
		return
	}

	invalidateAllRuleCaches()
	c.JSON(http.StatusCreated, level)
}

// UpdateLevelHandler обновляет уровень обучения.
func UpdateLevelHandler(c *gin.Context) {
	id := c.Param("id")
	var level models.AcademicLevel
	if err := config.DB.First(&level, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academic level not found"})
		return
	}

	var input LevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level.Name = input.Name
	level.MinEnrollment = input.MinEnrollment
	level.EnrollmentUnit = input.EnrollmentUnit

	if err := config.DB.Save(&level).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update academic level"})
		return
	}

	invalidateAllRuleCaches()
	c.JSON(http.StatusOK, level)
}

// DeleteLevelHandler удаляет уровень обучения.
// Удаление блокируется, пока на уровень ссылаются соискатели.
func DeleteLevelHandler(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Model(&models.Applicant{}).Where("level_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check linked applicants"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete level referenced by applicants"})
		return
	}

	if result := config.DB.Delete(&models.AcademicLevel{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete academic level"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academic level not found"})
	} else {
		invalidateAllRuleCaches()
		c.JSON(http.StatusOK, gin.H{"message": "Academic level deleted successfully"})
	}
}

// --- ОТРАСЛИ ОБУЧЕНИЯ ---

// ListBranchesHandler возвращает все отрасли обучения.
func ListBranchesHandler(c *gin.Context) {
	var branches []models.FieldBranch
	if err := config.DB.Order("id asc").Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch field branches"})
		return
	}
	c.JSON(http.StatusOK, branches)
}

// BranchInput определяет структуру для создания/обновления отрасли.
type BranchInput struct {
	Name           string   `json:"name" binding:"required"`
	TuitionPercent *float64 `json:"tuitionPercent" binding:"required"`
}

// CreateBranchHandler создает новую отрасль обучения.
func CreateBranchHandler(c *gin.Context) {
	var input BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.TuitionPercent < 0 || *input.TuitionPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuition percent must be within [0,100]"})
		return
	}

	branch := models.FieldBranch{Name: input.Name, TuitionPercent: *input.TuitionPercent}
	if err := config.DB.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create field branch"})
		return
	}

	invalidateAllRuleCaches()
	c.JSON(http.StatusCreated, branch)
}

// UpdateBranchHandler обновляет отрасль обучения.
func UpdateBranchHandler(c *gin.Context) {
	id := c.Param("id")
	var branch models.FieldBranch
	if err := config.DB.First(&branch, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Field branch not found"})
		return
	}

	var input BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.TuitionPercent < 0 || *input.TuitionPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuition percent must be within [0,100]"})
		return
	}

	branch.Name = input.Name
	branch.TuitionPercent = *input.TuitionPercent

	if err := config.DB.Save(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update field branch"})
		return
	}

	invalidateAllRuleCaches()
	c.JSON(http.StatusOK, branch)
}

// DeleteBranchHandler удаляет отрасль обучения.
func DeleteBranchHandler(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Model(&models.Applicant{}).Where("branch_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check linked applicants"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete branch referenced by applicants"})
		return
	}

	if result := config.DB.Delete(&models.FieldBranch{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete field branch"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Field branch not found"})
	} else {
		invalidateAllRuleCaches()
		c.JSON(http.StatusOK, gin.H{"message": "Field branch deleted successfully"})
	}
}
