package repository

import (
	"time"

	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// Create creates a new test case
func (r *TestCaseRepository) Create(testCase *models.TestCase) error {
	return r.db.Create(testCase).Error
}

// GetByID retrieves a test case by ID
func (r *TestCaseRepository) GetByID(id uuid.UUID) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.First(&testCase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// GetByProjectID retrieves all test cases for a project with pagination
func (r *TestCaseRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestCase, int64, error) {
	var cases []models.TestCase
	var total int64

	query := r.db.Model(&models.TestCase{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// CountByOrganization counts test cases across all projects of an organization
func (r *TestCaseRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TestCase{}).
		Joins("JOIN projects ON projects.id = test_cases.project_id").
		Where("projects.organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Update updates a test case
func (r *TestCaseRepository) Update(testCase *models.TestCase) error {
	return r.db.Save(testCase).Error
}

// UpdateLastRun writes the denormalized last-run summary of a test case
func (r *TestCaseRepository) UpdateLastRun(id uuid.UUID, status models.RunStatus, at *time.Time) error {
	return r.db.Model(&models.TestCase{}).Where("id = ?", id).
		Updates(map[string]interface{}{"last_run_status": status, "last_run_at": at}).Error
}

// Delete deletes a test case
func (r *TestCaseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestCase{}, "id = ?", id).Error
}
