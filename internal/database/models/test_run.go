package models

import (
	"time"

	"github.com/google/uuid"
)

// TestRun records one execution of a test case
type TestRun struct {
	BaseModel
	TestCaseID      uuid.UUID `json:"test_case_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status          RunStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required"`
	DurationSeconds int       `json:"duration_seconds" gorm:"default:0"`
	Notes           string    `json:"notes" gorm:"type:text"`
	Environment     string    `json:"environment" gorm:"size:100"`
	ExecutedAt      time.Time `json:"executed_at" gorm:"not null;index"`
	ExecutedBy      uuid.UUID `json:"executed_by" gorm:"type:uuid;not null"`

	// Relationships
	TestCase TestCase `json:"test_case,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
	Executor User     `json:"executor,omitempty" gorm:"foreignKey:ExecutedBy"`
}

// TableName returns the table name for TestRun
func (TestRun) TableName() string {
	return "test_runs"
}
