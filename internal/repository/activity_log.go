package repository

import (
	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository handles database operations for the append-only activity log
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create appends an activity record
func (r *ActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// GetByOrganizationID retrieves activity records for an organization with pagination, newest first
func (r *ActivityLogRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.ActivityLog, int64, error) {
	var entries []models.ActivityLog
	var total int64

	query := r.db.Model(&models.ActivityLog{}).Where("organization_id = ?", orgID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Where("organization_id = ?", orgID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// CountByObject counts activity records for a specific object
func (r *ActivityLogRepository) CountByObject(objectType models.ObjectType, objectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ActivityLog{}).
		Where("object_type = ? AND object_id = ?", objectType, objectID).Count(&count).Error
	return count, err
}
