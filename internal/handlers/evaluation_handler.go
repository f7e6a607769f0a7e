package handlers

import (
	"errors"
	"net/http"
	"time"

	"becas-crm/config"
	"becas-crm/internal/rules"
	"becas-crm/models"

	"github.com/gin-gonic/gin"
)

// EvaluationInput определяет входящие данные расчета. Расчет выполняется
// либо по сохраненному соискателю (applicantId), либо по фактам, переданным
// прямо в запросе (facts). dryRun=true не сохраняет результат.
type EvaluationInput struct {
	ApplicantID *uint        `json:"applicantId"`
	GrantCallID *uint        `json:"grantCallId"`
	Facts       *rules.Facts `json:"facts"`
	DryRun      bool         `json:"dryRun"`
}

// EvaluateHandler рассчитывает стипендию и сохраняет снимок результата.
func EvaluateHandler(c *gin.Context) {
	var input EvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ApplicantID == nil && input.Facts == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either applicantId or facts must be provided"})
		return
	}

	call, err := resolveCall(input.GrantCallID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var facts rules.Facts
	if input.ApplicantID != nil {
		var applicant models.Applicant
		if err := config.DB.Preload("Level").Preload("Branch").First(&applicant, *input.ApplicantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Applicant not found"})
			return
		}
		facts = applicantFacts(&applicant, call)
	} else {
		facts = *input.Facts
	}

	rs, err := loadRuleSet(call)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rule set: " + err.Error()})
		return
	}

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

	if input.DryRun {
		c.JSON(http.StatusOK, gin.H{"result": result, "grantCallId": call.ID})
		return
	}

	evaluation := snapshotEvaluation(result, call.ID, nil)
	if err := config.DB.Create(evaluation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save evaluation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result, "evaluationId": evaluation.ID, "grantCallId": call.ID})
}

// ListEvaluationsHandler возвращает сохраненные расчеты с пагинацией.
func ListEvaluationsHandler(c *gin.Context) {
	query := config.DB.Preload("Application.Applicant").Order("id desc")

	if callID := c.Query("call_id"); callID != "" {
		query = query.Where("grant_call_id = ?", callID)
	}
	if eligible := c.Query("eligible"); eligible != "" {
		query = query.Where("eligible = ?", eligible == "true")
	}

	var totalRows int64
	query.Model(&models.Evaluation{}).Count(&totalRows)

	var evaluations []models.Evaluation
	if err := query.Scopes(Paginate(c)).Find(&evaluations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch evaluations"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, evaluations, totalRows))
}

// GetEvaluationHandler возвращает один сохраненный расчет.
func GetEvaluationHandler(c *gin.Context) {
	id := c.Param("id")
	var evaluation models.Evaluation
	if err := config.DB.Preload("Application.Applicant").First(&evaluation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// resolveCall находит конвокаторию по ID либо активную, если ID не передан.
func resolveCall(callID *uint) (*models.GrantCall, error) {
	var call models.GrantCall
	query := config.DB.Preload("Components")
	if callID != nil {
		if err := query.First(&call, *callID).Error; err != nil {
			return nil, errors.New("grant call not found")
		}
	} else {
		if err := query.Where("is_active = true").First(&call).Error; err != nil {
			return nil, errors.New("no active grant call")
		}
	}
	return &call, nil
}

// applicantFacts собирает факты для калькулятора из данных соискателя.
// Порог дохода берется из таблицы umbral конвокатории по размеру домохозяйства.
func applicantFacts(a *models.Applicant, call *models.GrantCall) rules.Facts {
	facts := rules.Facts{
		EnrolledCredits: a.EnrolledCredits,
		GradeAverage:    a.GradeAverage,
		HouseholdIncome: a.HouseholdIncome,
		IncomeThreshold: call.ThresholdFor(a.HouseholdSize),
		ResidenceAway:   a.ResidenceAway != nil && *a.ResidenceAway,
	}
	if a.Level != nil {
		facts.Level = a.Level.Name
	}
	if a.Branch != nil {
		facts.Branch = a.Branch.Name
	}
	return facts
}

// snapshotEvaluation переводит результат калькулятора в модель БД.
func snapshotEvaluation(result *rules.AwardResult, callID uint, applicationID *uint) *models.Evaluation {
	breakdown := make(models.ComponentBreakdown, len(result.Components))
	for _, comp := range result.Components {
		breakdown[comp.Name] = comp.Amount
	}
	return &models.Evaluation{
		ApplicationID:   applicationID,
		GrantCallID:     callID,
		Eligible:        result.Eligible,
		Reason:          result.Reason,
		TuitionPercent:  result.TuitionPercent,
		FixedTotal:      result.FixedTotal,
		ExcellenceBonus: result.ExcellenceBonus,
		Total:           result.Total,
		Breakdown:       breakdown,
		EvaluatedAt:     time.Now(),
	}
}
