// models/applicant.go

package models

import "gorm.io/gorm"

// Applicant represents the scholarship applicant model in the database.
type Applicant struct {
	gorm.Model
	LastName   string `json:"lastName" gorm:"not null"`
	FirstName  string `json:"firstName" gorm:"not null"`
	DNI        string `json:"dni" gorm:"unique"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	University string `json:"university"`

	// --- АКАДЕМИЧЕСКИЕ ДАННЫЕ ---
	LevelID         *uint   `json:"levelId"`
	BranchID        *uint   `json:"branchId"`
	EnrolledCredits int     `json:"enrolledCredits"`
	GradeAverage    float64 `json:"gradeAverage"`

	// --- ЭКОНОМИЧЕСКИЕ ДАННЫЕ ДОМОХОЗЯЙСТВА ---
	HouseholdIncome float64 `json:"householdIncome"`
	HouseholdSize   int     `json:"householdSize"`
	ResidenceAway   *bool   `json:"residenceAway" gorm:"default:false"` // проживает вне семейного дома в учебный период

	Comments string `json:"comments"`

	// --- GORM RELATIONSHIPS ---
	Level  *AcademicLevel `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Branch *FieldBranch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// TableName задает имя таблицы для GORM.
func (Applicant) TableName() string {
	return "applicants"
}
