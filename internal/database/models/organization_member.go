package models

import (
	"github.com/google/uuid"
)

// OrganizationMember links a user to an organization with a role. The pair
// (organization_id, user_id) is unique.
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user" validate:"required"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user" validate:"required"`
	Role           MemberRole `json:"role" gorm:"type:varchar(50);not null;default:'DEVELOPER'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}
