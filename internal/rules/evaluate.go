package rules

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Evaluate рассчитывает итог стипендии для одного соискателя.
// Неизвестный уровень/отрасль -> ErrUnknownCategory, данные вне диапазона ->
// ErrInvalidInput. Матрикуляция ниже порога не ошибка: результат помечается
// Eligible=false с нулевыми суммами.
func (rs *RuleSet) Evaluate(f Facts) (*AwardResult, error) {
	if f.EnrolledCredits < 0 {
		return nil, fmt.Errorf("%w: enrolled credits must not be negative, got %d", ErrInvalidInput, f.EnrolledCredits)
	}
	if f.GradeAverage < 0 || f.GradeAverage > 10 {
		return nil, fmt.Errorf("%w: grade average must be within [0,10], got %.2f", ErrInvalidInput, f.GradeAverage)
	}
	if f.HouseholdIncome < 0 {
		return nil, fmt.Errorf("%w: household income must not be negative", ErrInvalidInput)
	}

	level, ok := rs.Levels[f.Level]
	if !ok {
		return nil, fmt.Errorf("%w: academic level %q", ErrUnknownCategory, f.Level)
	}
	tuitionPercent, ok := rs.Branches[f.Branch]
	if !ok {
		return nil, fmt.Errorf("%w: field branch %q", ErrUnknownCategory, f.Branch)
	}

	// Жесткий порог: ниже минимальной матрикуляции стипендия не назначается,
	// частичных выплат нет.
	if f.EnrolledCredits < level.MinEnrollment {
		return &AwardResult{
			Eligible:   false,
			Reason:     fmt.Sprintf("matriculación mínima not met: %d of %d %s", f.EnrolledCredits, level.MinEnrollment, level.Unit),
			Components: []ComponentAward{},
		}, nil
	}

	parameters := map[string]interface{}{
		"level":           f.Level,
		"branch":          f.Branch,
		"enrolledCredits": f.EnrolledCredits,
		"gradeAverage":    f.GradeAverage,
		"householdIncome": f.HouseholdIncome,
		"incomeThreshold": f.IncomeThreshold,
		"residenceAway":   f.ResidenceAway,
	}

	result := &AwardResult{
		Eligible:       true,
		TuitionPercent: tuitionPercent,
		Components:     []ComponentAward{},
	}

	// Выплаты аддитивны; компонент пропускается, только если уже назначен
	// несовместимый с ним.
	granted := make(map[string]bool)
	for _, comp := range rs.Components {
		skip := false
		for _, other := range comp.IncompatibleWith {
			if granted[other] {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		applies := true
		if comp.Condition != "" {
			expr, err := govaluate.NewEvaluableExpression(comp.Condition)
			if err != nil {
				return nil, fmt.Errorf("component %q: bad condition formula: %v", comp.Name, err)
			}
			value, err := expr.Evaluate(parameters)
			if err != nil {
				return nil, fmt.Errorf("component %q: condition evaluation failed: %v", comp.Name, err)
			}
			applies, ok = value.(bool)
			if !ok {
				return nil, fmt.Errorf("component %q: condition did not produce a boolean", comp.Name)
			}
		}
		if !applies {
			continue
		}

		granted[comp.Name] = true
		result.Components = append(result.Components, ComponentAward{Name: comp.Name, Amount: comp.Amount})
		result.FixedTotal = round2(result.FixedTotal + comp.Amount)
	}

	result.ExcellenceBonus = rs.Excellence.Bonus(f.GradeAverage)
	result.Total = round2(result.FixedTotal + result.ExcellenceBonus)
	return result, nil
}

// Bonus возвращает бонус за отличие для среднего балла: ноль ниже MinGrade,
// MinAmount ровно на пороге, далее линейно до MaxAmount на GradeCap и выше.
func (e ExcellenceRule) Bonus(gradeAverage float64) float64 {
	if gradeAverage < e.MinGrade {
		return 0
	}
	if gradeAverage >= e.GradeCap || e.GradeCap <= e.MinGrade {
		return round2(e.MaxAmount)
	}
	frac := (gradeAverage - e.MinGrade) / (e.GradeCap - e.MinGrade)
	return round2(e.MinAmount + frac*(e.MaxAmount-e.MinAmount))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
