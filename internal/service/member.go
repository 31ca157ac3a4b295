package service

import (
	"errors"
	"fmt"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for organization memberships
type MemberService struct {
	repo      repository.OrganizationMemberRepositoryInterface
	users     repository.UserRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(
	repo repository.OrganizationMemberRepositoryInterface,
	users repository.UserRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		repo:      repo,
		users:     users,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// AddMemberRequest represents the data needed to add a member to an organization
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required"`
}

// UpdateMemberRoleRequest represents the data needed to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse represents the response data for an organization member
type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email,omitempty"`
	Name           string    `json:"name,omitempty"`
	Role           string    `json:"role"`
	CreatedAt      string    `json:"created_at"`
}

// Add adds a user to an organization; managers only
func (s *MemberService) Add(callerID, orgID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MemberRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.perms.RequireManager(orgID, callerID); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user_id")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if existing, err := s.repo.GetByOrgAndUser(orgID, userID); err == nil && existing != nil {
		return nil, apperrors.ErrMembershipExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionCreated, models.ObjectTypeOrganizationMember, member.ID,
		map[string]interface{}{"user_id": userID.String(), "role": string(role)})

	member.User = *user
	return s.convertToResponse(member), nil
}

// List retrieves the members of an organization; any member may list
func (s *MemberService) List(callerID, orgID uuid.UUID, limit, offset int) ([]MemberResponse, int64, error) {
	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, 0, err
	}

	members, total, err := s.repo.GetByOrganizationID(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *s.convertToResponse(&members[i])
	}
	return responses, total, nil
}

// UpdateRole changes a member's role; managers only. Demoting the last
// remaining ORGANIZATION_MANAGER is rejected.
func (s *MemberService) UpdateRole(callerID, orgID, memberID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MemberRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.perms.RequireManager(orgID, callerID); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(memberID)
	if err != nil || member.OrganizationID != orgID {
		return nil, apperrors.ErrMembershipNotFound
	}

	if member.Role == role {
		return s.convertToResponse(member), nil
	}

	if member.Role == models.MemberRoleOrganizationManager {
		if err := s.ensureNotLastManager(orgID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateRole(memberID, role); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeOrganizationMember, memberID,
		map[string]interface{}{"role": string(role), "previous_role": string(member.Role)})

	member.Role = role
	return s.convertToResponse(member), nil
}

// Remove removes a member from an organization; managers only. Removing
// the last remaining ORGANIZATION_MANAGER is rejected.
func (s *MemberService) Remove(callerID, orgID, memberID uuid.UUID) error {
	if _, err := s.perms.RequireManager(orgID, callerID); err != nil {
		return err
	}

	member, err := s.repo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member.OrganizationID != orgID {
		return apperrors.ErrMembershipNotFound
	}

	if member.Role == models.MemberRoleOrganizationManager {
		if err := s.ensureNotLastManager(orgID); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionDeleted, models.ObjectTypeOrganizationMember, memberID,
		map[string]interface{}{"user_id": member.UserID.String()})

	return nil
}

func (s *MemberService) ensureNotLastManager(orgID uuid.UUID) error {
	count, err := s.repo.CountByRole(orgID, models.MemberRoleOrganizationManager)
	if err != nil {
		return fmt.Errorf("failed to count managers: %w", err)
	}
	if count <= 1 {
		return apperrors.ErrLastManager
	}
	return nil
}

func (s *MemberService) convertToResponse(member *models.OrganizationMember) *MemberResponse {
	resp := &MemberResponse{
		ID:             member.ID,
		OrganizationID: member.OrganizationID,
		UserID:         member.UserID,
		Role:           string(member.Role),
		CreatedAt:      member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if member.User.ID != uuid.Nil {
		resp.Email = member.User.Email
		resp.Name = member.User.DisplayName
	}
	return resp
}
