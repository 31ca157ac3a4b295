package service

import (
	"errors"
	"fmt"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionService is the membership gate and RBAC evaluator. Every
// organization-scoped read or write goes through RequireMember; finer-grained
// object actions additionally go through RequirePermission.
type PermissionService struct {
	members repository.OrganizationMemberRepositoryInterface
	grants  repository.RbacPermissionRepositoryInterface
}

// NewPermissionService creates a new permission service
func NewPermissionService(members repository.OrganizationMemberRepositoryInterface, grants repository.RbacPermissionRepositoryInterface) *PermissionService {
	return &PermissionService{
		members: members,
		grants:  grants,
	}
}

// GetMembership returns the caller's membership in an organization, or nil
// when none exists
func (s *PermissionService) GetMembership(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.members.GetByOrgAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	return member, nil
}

// RequireMember fails with an AuthorizationError unless the user belongs to
// the organization
func (s *PermissionService) RequireMember(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.GetMembership(orgID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.ErrNotAMember
	}
	return member, nil
}

// RequireManager fails unless the user is an ORGANIZATION_MANAGER of the
// organization
func (s *PermissionService) RequireManager(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.RequireMember(orgID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role != models.MemberRoleOrganizationManager {
		return nil, apperrors.ErrManagerRequired
	}
	return member, nil
}

// RequirePermission checks whether the caller's role holds a grant for
// (organization, role, object type, action). Absence of a grant is a denial,
// not an error.
func (s *PermissionService) RequirePermission(userID, orgID uuid.UUID, objectType models.ObjectType, action models.RbacAction) error {
	member, err := s.RequireMember(orgID, userID)
	if err != nil {
		return err
	}

	granted, err := s.grants.HasGrant(orgID, member.Role, objectType, action)
	if err != nil {
		return fmt.Errorf("failed to check permission: %w", err)
	}
	if !granted {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
