package models

import (
	"github.com/google/uuid"
)

// TestPlan is a project-scoped execution plan
type TestPlan struct {
	BaseModel
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"type:text"`
	Status      PlanStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT'"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestPlan
func (TestPlan) TableName() string {
	return "test_plans"
}
