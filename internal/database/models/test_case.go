package models

import (
	"time"

	"github.com/google/uuid"
)

// TestCase belongs to a project. LastRunStatus and LastRunAt are a denormalized
// summary of the most recent run, kept consistent by the run-status reducer
// after every run mutation.
type TestCase struct {
	BaseModel
	ProjectID      uuid.UUID    `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string       `json:"description" gorm:"type:text"`
	Steps          string       `json:"steps" gorm:"type:text"`
	ExpectedResult string       `json:"expected_result" gorm:"type:text"`
	Priority       CasePriority `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	LastRunStatus  RunStatus    `json:"last_run_status" gorm:"type:varchar(20);not null;default:'NOT_RUN'"`
	LastRunAt      *time.Time   `json:"last_run_at"`

	// Relationships
	Project  Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestRuns []TestRun `json:"test_runs,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}
