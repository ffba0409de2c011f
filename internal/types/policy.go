package types

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"index;not null" json:"user_id"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	PlanID         uuid.UUID      `gorm:"index;not null" json:"plan_id"`
	Plan           *InsurancePlan `gorm:"foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	PolicyNumber   string         `gorm:"uniqueIndex;not null;column:policy_number" json:"policy_number"`
	Premium        float64        `gorm:"not null;column:premium" json:"premium"`
	CoverageAmount float64        `gorm:"not null;column:coverage_amount" json:"coverage_amount"`
	StartDate      time.Time      `gorm:"column:start_date" json:"start_date"`
	EndDate        time.Time      `gorm:"column:end_date" json:"end_date"`
	Status         string         `gorm:"column:status;default:'active'" json:"status"`
	DocumentPath   string         `gorm:"column:document_path" json:"document_path,omitempty"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

func (Policy) TableName() string {
	return "policy"
}
