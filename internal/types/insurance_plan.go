package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plan categories form a closed set; CategoryHealth and CategoryLife price
// age more aggressively than the rest.
const (
	CategoryHealth  = "Health"
	CategoryLife    = "Life"
	CategoryVehicle = "Vehicle"
	CategoryHome    = "Home"
	CategoryTravel  = "Travel"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryHealth, CategoryLife, CategoryVehicle, CategoryHome, CategoryTravel:
		return true
	default:
		return false
	}
}

type InsurancePlan struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"not null;column:name" json:"name"`
	Provider        string         `gorm:"not null;column:provider" json:"provider"`
	Category        string         `gorm:"not null;index;column:category" json:"category"`
	CoverageAmount  float64        `gorm:"not null;column:coverage_amount" json:"coverage_amount"`
	BasePremium     float64        `gorm:"not null;column:base_premium" json:"base_premium"`
	Description     string         `gorm:"column:description" json:"description"`
	Features        datatypes.JSON `gorm:"column:features" json:"features,omitempty"`
	AgeMin          int            `gorm:"column:age_min;default:18" json:"age_min"`
	AgeMax          int            `gorm:"column:age_max;default:100" json:"age_max"`
	SalaryMin       float64        `gorm:"column:salary_min;default:0" json:"salary_min"`
	PopularityScore float64        `gorm:"column:popularity_score;default:0" json:"popularity_score"`
	Rating          float64        `gorm:"column:rating;default:0" json:"rating"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
}

func (InsurancePlan) TableName() string {
	return "insurance_plan"
}
