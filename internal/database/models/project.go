package models

import (
	"github.com/google/uuid"
)

// Project belongs to exactly one organization and owns test cases, suites and plans
type Project struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"type:text"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	TestCases    []TestCase   `json:"test_cases,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestSuites   []TestSuite  `json:"test_suites,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestPlans    []TestPlan   `json:"test_plans,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
