package repository

import (
	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationMemberRepository handles database operations for organization members
type OrganizationMemberRepository struct {
	db *gorm.DB
}

// NewOrganizationMemberRepository creates a new organization member repository
func NewOrganizationMemberRepository(db *gorm.DB) *OrganizationMemberRepository {
	return &OrganizationMemberRepository{db: db}
}

// Create creates a new membership
func (r *OrganizationMemberRepository) Create(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *OrganizationMemberRepository) GetByID(id uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrgAndUser retrieves a membership by its unique (organization, user) pair
func (r *OrganizationMemberRepository) GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrganizationID retrieves all memberships for an organization with pagination
func (r *OrganizationMemberRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error) {
	var members []models.OrganizationMember
	var total int64

	query := r.db.Model(&models.OrganizationMember{}).Where("organization_id = ?", orgID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetOrganizationsForUser retrieves all memberships a user holds
func (r *OrganizationMemberRepository) GetOrganizationsForUser(userID uuid.UUID) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	err := r.db.Preload("Organization").Where("user_id = ?", userID).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountByRole counts memberships with a specific role in an organization
func (r *OrganizationMemberRepository) CountByRole(orgID uuid.UUID, role models.MemberRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ?", orgID, role).Count(&count).Error
	return count, err
}

// UpdateRole updates a membership's role
func (r *OrganizationMemberRepository) UpdateRole(id uuid.UUID, role models.MemberRole) error {
	return r.db.Model(&models.OrganizationMember{}).Where("id = ?", id).Update("role", role).Error
}

// Delete deletes a membership
func (r *OrganizationMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationMember{}, "id = ?", id).Error
}
