package models

import (
	"github.com/google/uuid"
)

// TestSuite is a named grouping of test cases within a project
type TestSuite struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`

	// Relationships
	Project Project         `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Cases   []TestSuiteCase `json:"cases,omitempty" gorm:"foreignKey:TestSuiteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestSuite
func (TestSuite) TableName() string {
	return "test_suites"
}

// TestSuiteCase links a test case into a suite. The pair (test_suite_id,
// test_case_id) is unique.
type TestSuiteCase struct {
	BaseModel
	TestSuiteID uuid.UUID `json:"test_suite_id" gorm:"type:uuid;not null;uniqueIndex:idx_suite_cases_suite_case" validate:"required"`
	TestCaseID  uuid.UUID `json:"test_case_id" gorm:"type:uuid;not null;uniqueIndex:idx_suite_cases_suite_case" validate:"required"`

	// Relationships
	TestSuite TestSuite `json:"test_suite,omitempty" gorm:"foreignKey:TestSuiteID;constraint:OnDelete:CASCADE"`
	TestCase  TestCase  `json:"test_case,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestSuiteCase
func (TestSuiteCase) TableName() string {
	return "test_suite_cases"
}
