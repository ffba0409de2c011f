package types

import (
	"time"

	"github.com/google/uuid"
)

type Quote struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"index;not null" json:"user_id"`
	User             *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	PlanID           uuid.UUID      `gorm:"index;not null" json:"plan_id"`
	Plan             *InsurancePlan `gorm:"foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	EstimatedPremium float64        `gorm:"not null;column:estimated_premium" json:"estimated_premium"`
	UserAge          *int           `gorm:"column:user_age" json:"user_age,omitempty"`
	UserSalary       *float64       `gorm:"column:user_salary" json:"user_salary,omitempty"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
}

func (Quote) TableName() string {
	return "quote"
}
