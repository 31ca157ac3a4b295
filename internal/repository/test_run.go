package repository

import (
	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestRunRepository handles database operations for test runs
type TestRunRepository struct {
	db *gorm.DB
}

// NewTestRunRepository creates a new test run repository
func NewTestRunRepository(db *gorm.DB) *TestRunRepository {
	return &TestRunRepository{db: db}
}

// Create creates a new test run
func (r *TestRunRepository) Create(run *models.TestRun) error {
	return r.db.Create(run).Error
}

// GetByID retrieves a test run by ID
func (r *TestRunRepository) GetByID(id uuid.UUID) (*models.TestRun, error) {
	var run models.TestRun
	err := r.db.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetByTestCaseID retrieves all runs of a test case with pagination, newest first
func (r *TestRunRepository) GetByTestCaseID(testCaseID uuid.UUID, limit, offset int) ([]models.TestRun, int64, error) {
	var runs []models.TestRun
	var total int64

	query := r.db.Model(&models.TestRun{}).Where("test_case_id = ?", testCaseID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("executed_at DESC, id DESC").Limit(limit).Offset(offset).Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

// GetLatestByTestCase retrieves the most recent run of a test case. Ties on
// executed_at are broken deterministically by highest id.
func (r *TestRunRepository) GetLatestByTestCase(testCaseID uuid.UUID) (*models.TestRun, error) {
	var run models.TestRun
	err := r.db.Where("test_case_id = ?", testCaseID).
		Order("executed_at DESC, id DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Update updates a test run
func (r *TestRunRepository) Update(run *models.TestRun) error {
	return r.db.Save(run).Error
}

// Delete deletes a test run
func (r *TestRunRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestRun{}, "id = ?", id).Error
}
