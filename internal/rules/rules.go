// Package rules содержит чистый калькулятор права на стипендию.
// Набор правил неизменяем после загрузки, расчет не имеет побочных
// эффектов и безопасен для параллельных вызовов.
package rules

// LevelRule задает порог минимальной матрикуляции для уровня обучения.
type LevelRule struct {
	MinEnrollment int    `yaml:"min_enrollment" json:"minEnrollment"`
	Unit          string `yaml:"unit" json:"unit"`
}

// Component представляет фиксированную выплату конвокатории.
// Condition - формула govaluate над фактами соискателя; пустая строка
// означает, что выплата назначается безусловно.
type Component struct {
	Name             string   `yaml:"name" json:"name"`
	Amount           float64  `yaml:"amount" json:"amount"`
	Condition        string   `yaml:"condition" json:"condition"`
	IncompatibleWith []string `yaml:"incompatible_with" json:"incompatibleWith"`
}

// ExcellenceRule описывает бонус за академическое отличие: линейная
// интерполяция суммы между MinGrade и GradeCap.
type ExcellenceRule struct {
	MinGrade  float64 `yaml:"min_grade" json:"minGrade"`
	GradeCap  float64 `yaml:"grade_cap" json:"gradeCap"`
	MinAmount float64 `yaml:"min_amount" json:"minAmount"`
	MaxAmount float64 `yaml:"max_amount" json:"maxAmount"`
}

// RuleSet - полный набор правил одной конвокатории.
type RuleSet struct {
	Levels     map[string]LevelRule `yaml:"levels" json:"levels"`
	Branches   map[string]float64   `yaml:"branches" json:"branches"`
	Components []Component          `yaml:"components" json:"components"`
	Excellence ExcellenceRule       `yaml:"excellence" json:"excellence"`
}

// Facts - данные одного соискателя для расчета. Принадлежат вызывающему
// коду, калькулятор их не изменяет.
type Facts struct {
	Level           string  `json:"level"`
	Branch          string  `json:"branch"`
	EnrolledCredits int     `json:"enrolledCredits"`
	GradeAverage    float64 `json:"gradeAverage"`
	HouseholdIncome float64 `json:"householdIncome"`
	IncomeThreshold float64 `json:"incomeThreshold"`
	ResidenceAway   bool    `json:"residenceAway"`
}

// ComponentAward - одна назначенная фиксированная выплата.
type ComponentAward struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// AwardResult - результат расчета. Создается заново при каждом вызове.
type AwardResult struct {
	Eligible        bool             `json:"eligible"`
	Reason          string           `json:"reason,omitempty"`
	TuitionPercent  float64          `json:"tuitionPercent"`
	Components      []ComponentAward `json:"components"`
	FixedTotal      float64          `json:"fixedTotal"`
	ExcellenceBonus float64          `json:"excellenceBonus"`
	Total           float64          `json:"total"`
}
