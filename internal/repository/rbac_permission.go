package repository

import (
	"errors"

	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RbacPermissionRepository handles database operations for RBAC grants
type RbacPermissionRepository struct {
	db *gorm.DB
}

// NewRbacPermissionRepository creates a new RBAC permission repository
func NewRbacPermissionRepository(db *gorm.DB) *RbacPermissionRepository {
	return &RbacPermissionRepository{db: db}
}

// Create creates a new grant
func (r *RbacPermissionRepository) Create(perm *models.RbacPermission) error {
	return r.db.Create(perm).Error
}

// CreateBatch creates multiple grants in one statement
func (r *RbacPermissionRepository) CreateBatch(perms []models.RbacPermission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.Create(&perms).Error
}

// HasGrant reports whether a grant exists for the tuple
// (organization, role, object type, action)
func (r *RbacPermissionRepository) HasGrant(orgID uuid.UUID, role models.MemberRole, objectType models.ObjectType, action models.RbacAction) (bool, error) {
	var perm models.RbacPermission
	err := r.db.First(&perm,
		"organization_id = ? AND role = ? AND object_type = ? AND action = ?",
		orgID, role, objectType, action).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetByOrganization retrieves all grants for an organization
func (r *RbacPermissionRepository) GetByOrganization(orgID uuid.UUID) ([]models.RbacPermission, error) {
	var perms []models.RbacPermission
	err := r.db.Where("organization_id = ?", orgID).Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// Delete deletes a grant
func (r *RbacPermissionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RbacPermission{}, "id = ?", id).Error
}
