package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func universitarioFacts() Facts {
	return Facts{
		Level:           "universitario",
		Branch:          "ciencias",
		EnrolledCredits: 30,
		GradeAverage:    6.5,
		HouseholdIncome: 20000,
		IncomeThreshold: 13898,
	}
}

func TestEvaluateCienciasPercent(t *testing.T) {
	rs := Default()

	res, err := rs.Evaluate(universitarioFacts())
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	assert.Equal(t, 65.0, res.TuitionPercent)
}

func TestEvaluateCienciasSocialesPercent(t *testing.T) {
	rs := Default()
	f := universitarioFacts()
	f.Branch = "ciencias_sociales_juridicas"

	res, err := rs.Evaluate(f)
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	assert.Equal(t, 90.0, res.TuitionPercent)
}

func TestEvaluateAllBranchPercentsWithinRange(t *testing.T) {
	rs := Default()
	for branch := range rs.Branches {
		f := universitarioFacts()
		f.Branch = branch

		res, err := rs.Evaluate(f)
		require.NoError(t, err, "branch %s", branch)
		assert.GreaterOrEqual(t, res.TuitionPercent, 0.0, "branch %s", branch)
		assert.LessOrEqual(t, res.TuitionPercent, 100.0, "branch %s", branch)
	}
}

func TestEvaluateEnrollmentThresholdEdge(t *testing.T) {
	rs := Default()

	// Ровно на пороге - соискатель проходит.
	f := universitarioFacts()
	res, err := rs.Evaluate(f)
	require.NoError(t, err)
	assert.True(t, res.Eligible)

	// Одним кредитом ниже - нет, и суммы обнулены.
	f.EnrolledCredits = 29
	res, err = rs.Evaluate(f)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.NotEmpty(t, res.Reason)
	assert.Zero(t, res.TuitionPercent)
	assert.Zero(t, res.FixedTotal)
	assert.Zero(t, res.ExcellenceBonus)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Components)
}

func TestEvaluateUnknownBranch(t *testing.T) {
	rs := Default()
	f := universitarioFacts()
	f.Branch = "desconocida"

	_, err := rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEvaluateUnknownLevel(t *testing.T) {
	rs := Default()
	f := universitarioFacts()
	f.Level = "doctorado"

	_, err := rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEvaluateInvalidInput(t *testing.T) {
	rs := Default()

	f := universitarioFacts()
	f.EnrolledCredits = -1
	_, err := rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = universitarioFacts()
	f.GradeAverage = 10.5
	_, err = rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = universitarioFacts()
	f.GradeAverage = -0.1
	_, err = rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = universitarioFacts()
	f.HouseholdIncome = -100
	_, err = rs.Evaluate(f)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExcellenceBonusEndpoints(t *testing.T) {
	e := Default().Excellence

	assert.Zero(t, e.Bonus(7.99))
	assert.Equal(t, 50.0, e.Bonus(8.00))  // ровно на пороге - минимум
	assert.Equal(t, 125.0, e.Bonus(10.0)) // на верхней границе - максимум
	assert.Equal(t, 87.5, e.Bonus(9.00))  // середина линейного участка
}

func TestEvaluateExcellenceBonusInResult(t *testing.T) {
	rs := Default()

	f := universitarioFacts()
	f.GradeAverage = 8.00
	res, err := rs.Evaluate(f)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.ExcellenceBonus)

	f.GradeAverage = 10.0
	res, err = rs.Evaluate(f)
	require.NoError(t, err)
	assert.Equal(t, 125.0, res.ExcellenceBonus)
}

func TestEvaluateComponentConditions(t *testing.T) {
	rs := Default()

	// Доход выше порога: выплата ligada a la renta не назначается,
	// beca básica - назначается.
	f := universitarioFacts()
	res, err := rs.Evaluate(f)
	require.NoError(t, err)
	names := awardNames(res)
	assert.NotContains(t, names, "cuantia_fija_renta")
	assert.Contains(t, names, "beca_basica")
	assert.Contains(t, names, "cuantia_variable_minima")

	// Доход ниже порога: renta назначается, несовместимая с ней
	// beca básica пропускается.
	f.HouseholdIncome = 12000
	res, err = rs.Evaluate(f)
	require.NoError(t, err)
	names = awardNames(res)
	assert.Contains(t, names, "cuantia_fija_renta")
	assert.NotContains(t, names, "beca_basica")
}

func TestEvaluateResidenceComponent(t *testing.T) {
	rs := Default()

	f := universitarioFacts()
	f.ResidenceAway = true
	res, err := rs.Evaluate(f)
	require.NoError(t, err)
	assert.Contains(t, awardNames(res), "cuantia_fija_residencia")

	f.ResidenceAway = false
	res, err = rs.Evaluate(f)
	require.NoError(t, err)
	assert.NotContains(t, awardNames(res), "cuantia_fija_residencia")
}

func TestEvaluateTotalsAreAdditive(t *testing.T) {
	rs := Default()

	f := universitarioFacts()
	f.HouseholdIncome = 12000
	f.ResidenceAway = true
	f.GradeAverage = 10.0

	res, err := rs.Evaluate(f)
	require.NoError(t, err)

	// renta 1700 + residencia 2700 + variable mínima 60
	assert.Equal(t, 4460.0, res.FixedTotal)
	assert.Equal(t, 125.0, res.ExcellenceBonus)
	assert.Equal(t, 4585.0, res.Total)
}

func TestEvaluateBachilleratoSubjects(t *testing.T) {
	rs := Default()

	f := Facts{
		Level:           "bachillerato",
		Branch:          "artes_humanidades",
		EnrolledCredits: 4,
		GradeAverage:    7.0,
		HouseholdIncome: 20000,
		IncomeThreshold: 13898,
	}
	res, err := rs.Evaluate(f)
	require.NoError(t, err)
	assert.True(t, res.Eligible)

	f.EnrolledCredits = 3
	res, err = rs.Evaluate(f)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
}

func TestEvaluateBadComponentFormula(t *testing.T) {
	rs := Default()
	rs.Components = append(rs.Components, Component{Name: "broken", Amount: 1, Condition: "(("})

	_, err := rs.Evaluate(universitarioFacts())
	assert.Error(t, err)
}

func awardNames(res *AwardResult) []string {
	names := make([]string, 0, len(res.Components))
	for _, c := range res.Components {
		names = append(names, c.Name)
	}
	return names
}
