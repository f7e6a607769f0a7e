package handlers

import (
	"testing"

	"becas-crm/internal/rules"
	"becas-crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantFacts(t *testing.T) {
	away := true
	applicant := &models.Applicant{
		Level:           &models.AcademicLevel{Name: "universitario"},
		Branch:          &models.FieldBranch{Name: "ciencias"},
		EnrolledCredits: 30,
		GradeAverage:    8.4,
		HouseholdIncome: 15000,
		HouseholdSize:   3,
		ResidenceAway:   &away,
	}
	call := &models.GrantCall{
		IncomeThresholds: models.IncomeThresholds{8849, 13288, 18032},
	}

	facts := applicantFacts(applicant, call)

	assert.Equal(t, "universitario", facts.Level)
	assert.Equal(t, "ciencias", facts.Branch)
	assert.Equal(t, 30, facts.EnrolledCredits)
	assert.Equal(t, 8.4, facts.GradeAverage)
	assert.Equal(t, 15000.0, facts.HouseholdIncome)
	assert.Equal(t, 18032.0, facts.IncomeThreshold) // домохозяйство из 3 человек
	assert.True(t, facts.ResidenceAway)
}

func TestApplicantFactsWithoutReferences(t *testing.T) {
	// Соискатель без уровня/отрасли дает пустые категории: калькулятор
	// вернет ErrUnknownCategory, а не панику.
	applicant := &models.Applicant{EnrolledCredits: 10}
	call := &models.GrantCall{}

	facts := applicantFacts(applicant, call)
	assert.Empty(t, facts.Level)
	assert.Empty(t, facts.Branch)
	assert.False(t, facts.ResidenceAway)

	_, err := rules.Default().Evaluate(facts)
	require.ErrorIs(t, err, rules.ErrUnknownCategory)
}

func TestSnapshotEvaluation(t *testing.T) {
	appID := uint(7)
	result := &rules.AwardResult{
		Eligible:       true,
		TuitionPercent: 65,
		Components: []rules.ComponentAward{
			{Name: "cuantia_fija_residencia", Amount: 2700},
			{Name: "cuantia_variable_minima", Amount: 60},
		},
		FixedTotal:      2760,
		ExcellenceBonus: 125,
		Total:           2885,
	}

	evaluation := snapshotEvaluation(result, 3, &appID)

	assert.Equal(t, uint(3), evaluation.GrantCallID)
	require.NotNil(t, evaluation.ApplicationID)
	assert.Equal(t, appID, *evaluation.ApplicationID)
	assert.True(t, evaluation.Eligible)
	assert.Equal(t, 65.0, evaluation.TuitionPercent)
	assert.Equal(t, 2885.0, evaluation.Total)
	assert.Equal(t, models.ComponentBreakdown{
		"cuantia_fija_residencia": 2700,
		"cuantia_variable_minima": 60,
	}, evaluation.Breakdown)
	assert.False(t, evaluation.EvaluatedAt.IsZero())
}
