package service

import (
	"errors"
	"fmt"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo       repository.OrganizationRepositoryInterface
	members    repository.OrganizationMemberRepositoryInterface
	grants     repository.RbacPermissionRepositoryInterface
	perms      *PermissionService
	activity   *ActivityService
	rbacConfig *auth.RbacConfig
	validator  *validator.Validate

	// Tenant limit defaults applied to new organizations
	defaultMaxProjects  int
	defaultMaxTestCases int
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	members repository.OrganizationMemberRepositoryInterface,
	grants repository.RbacPermissionRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	rbacConfig *auth.RbacConfig,
	validator *validator.Validate,
	defaultMaxProjects, defaultMaxTestCases int,
) *OrganizationService {
	return &OrganizationService{
		repo:                repo,
		members:             members,
		grants:              grants,
		perms:               perms,
		activity:            activity,
		rbacConfig:          rbacConfig,
		validator:           validator,
		defaultMaxProjects:  defaultMaxProjects,
		defaultMaxTestCases: defaultMaxTestCases,
	}
}

// CreateOrganizationRequest represents the data needed to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateOrganizationRequest represents the data needed to update an organization
type UpdateOrganizationRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	MaxProjects  *int    `json:"max_projects" validate:"omitempty,min=1"`
	MaxTestCases *int    `json:"max_test_cases" validate:"omitempty,min=1"`
}

// OrganizationResponse represents the response data for an organization
type OrganizationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MaxProjects  int       `json:"max_projects"`
	MaxTestCases int       `json:"max_test_cases"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Create creates a new organization. The caller becomes its first
// ORGANIZATION_MANAGER and the default RBAC grant matrix is seeded.
func (s *OrganizationService) Create(callerID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrOrganizationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	org := &models.Organization{
		Name:         req.Name,
		Description:  req.Description,
		MaxProjects:  s.defaultMaxProjects,
		MaxTestCases: s.defaultMaxTestCases,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         callerID,
		Role:           models.MemberRoleOrganizationManager,
	}
	if err := s.members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create founding membership: %w", err)
	}

	if err := s.grants.CreateBatch(s.rbacConfig.Permissions(org.ID)); err != nil {
		return nil, fmt.Errorf("failed to seed rbac grants: %w", err)
	}

	s.activity.Record(org.ID, callerID, models.ActivityActionCreated, models.ObjectTypeOrganization, org.ID,
		map[string]interface{}{"name": org.Name})

	return s.convertToResponse(org), nil
}

// GetByID retrieves an organization; the caller must be a member
func (s *OrganizationService) GetByID(callerID, orgID uuid.UUID) (*OrganizationResponse, error) {
	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// Update updates an organization; managers only
func (s *OrganizationService) Update(callerID, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.perms.RequireManager(orgID, callerID); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	changes := make(map[string]interface{})
	if req.Name != nil && *req.Name != org.Name {
		org.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		org.Description = *req.Description
		changes["description"] = *req.Description
	}
	if req.MaxProjects != nil {
		org.MaxProjects = *req.MaxProjects
		changes["max_projects"] = *req.MaxProjects
	}
	if req.MaxTestCases != nil {
		org.MaxTestCases = *req.MaxTestCases
		changes["max_test_cases"] = *req.MaxTestCases
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.activity.Record(org.ID, callerID, models.ActivityActionUpdated, models.ObjectTypeOrganization, org.ID, changes)

	return s.convertToResponse(org), nil
}

// UserOrganizationResponse pairs an organization with the caller's role in it
type UserOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
}

// ListForUser retrieves all organizations the caller is a member of
func (s *OrganizationService) ListForUser(callerID uuid.UUID) ([]UserOrganizationResponse, error) {
	memberships, err := s.members.GetOrganizationsForUser(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]UserOrganizationResponse, len(memberships))
	for i, m := range memberships {
		responses[i] = UserOrganizationResponse{
			Organization: *s.convertToResponse(&m.Organization),
			Role:         string(m.Role),
		}
	}
	return responses, nil
}

func (s *OrganizationService) convertToResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Description:  org.Description,
		MaxProjects:  org.MaxProjects,
		MaxTestCases: org.MaxTestCases,
		CreatedAt:    org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
