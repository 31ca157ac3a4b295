package repository

import (
	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestSuiteRepository handles database operations for test suites and their case links
type TestSuiteRepository struct {
	db *gorm.DB
}

// NewTestSuiteRepository creates a new test suite repository
func NewTestSuiteRepository(db *gorm.DB) *TestSuiteRepository {
	return &TestSuiteRepository{db: db}
}

// Create creates a new test suite
func (r *TestSuiteRepository) Create(suite *models.TestSuite) error {
	return r.db.Create(suite).Error
}

// GetByID retrieves a test suite by ID
func (r *TestSuiteRepository) GetByID(id uuid.UUID) (*models.TestSuite, error) {
	var suite models.TestSuite
	err := r.db.First(&suite, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &suite, nil
}

// GetByProjectID retrieves all suites for a project with pagination
func (r *TestSuiteRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestSuite, int64, error) {
	var suites []models.TestSuite
	var total int64

	query := r.db.Model(&models.TestSuite{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Find(&suites).Error
	if err != nil {
		return nil, 0, err
	}

	return suites, total, nil
}

// Update updates a test suite
func (r *TestSuiteRepository) Update(suite *models.TestSuite) error {
	return r.db.Save(suite).Error
}

// Delete deletes a test suite
func (r *TestSuiteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestSuite{}, "id = ?", id).Error
}

// AddCase links a test case into a suite
func (r *TestSuiteRepository) AddCase(link *models.TestSuiteCase) error {
	return r.db.Create(link).Error
}

// GetCaseLink retrieves a suite-case link by its unique (suite, case) pair
func (r *TestSuiteRepository) GetCaseLink(suiteID, caseID uuid.UUID) (*models.TestSuiteCase, error) {
	var link models.TestSuiteCase
	err := r.db.First(&link, "test_suite_id = ? AND test_case_id = ?", suiteID, caseID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetCases retrieves all case links of a suite with the cases preloaded
func (r *TestSuiteRepository) GetCases(suiteID uuid.UUID) ([]models.TestSuiteCase, error) {
	var links []models.TestSuiteCase
	err := r.db.Preload("TestCase").Where("test_suite_id = ?", suiteID).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// RemoveCase removes a test case from a suite
func (r *TestSuiteRepository) RemoveCase(suiteID, caseID uuid.UUID) error {
	return r.db.Delete(&models.TestSuiteCase{}, "test_suite_id = ? AND test_case_id = ?", suiteID, caseID).Error
}
