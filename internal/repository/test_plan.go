package repository

import (
	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestPlanRepository handles database operations for test plans
type TestPlanRepository struct {
	db *gorm.DB
}

// NewTestPlanRepository creates a new test plan repository
func NewTestPlanRepository(db *gorm.DB) *TestPlanRepository {
	return &TestPlanRepository{db: db}
}

// Create creates a new test plan
func (r *TestPlanRepository) Create(plan *models.TestPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a test plan by ID
func (r *TestPlanRepository) GetByID(id uuid.UUID) (*models.TestPlan, error) {
	var plan models.TestPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByProjectID retrieves all plans for a project with pagination
func (r *TestPlanRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestPlan, int64, error) {
	var plans []models.TestPlan
	var total int64

	query := r.db.Model(&models.TestPlan{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Update updates a test plan
func (r *TestPlanRepository) Update(plan *models.TestPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a test plan
func (r *TestPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestPlan{}, "id = ?", id).Error
}
