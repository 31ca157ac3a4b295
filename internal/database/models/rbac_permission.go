package models

import (
	"github.com/google/uuid"
)

// RbacPermission is a grant allowing a role to perform an action on an object
// type within an organization. The absence of a matching row is a denial.
type RbacPermission struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_rbac_org_role_obj_action" validate:"required"`
	Role           MemberRole `json:"role" gorm:"type:varchar(50);not null;uniqueIndex:idx_rbac_org_role_obj_action" validate:"required"`
	ObjectType     ObjectType `json:"object_type" gorm:"type:varchar(50);not null;uniqueIndex:idx_rbac_org_role_obj_action" validate:"required"`
	Action         RbacAction `json:"action" gorm:"type:varchar(20);not null;uniqueIndex:idx_rbac_org_role_obj_action" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RbacPermission
func (RbacPermission) TableName() string {
	return "rbac_permissions"
}
