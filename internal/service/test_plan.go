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

// TestPlanService handles business logic for test plans
type TestPlanService struct {
	repo      repository.TestPlanRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewTestPlanService creates a new test plan service
func NewTestPlanService(
	repo repository.TestPlanRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *TestPlanService {
	return &TestPlanService{
		repo:      repo,
		projects:  projects,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateTestPlanRequest represents the data needed to create a test plan
type CreateTestPlanRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateTestPlanRequest represents the data needed to update a test plan
type UpdateTestPlanRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TestPlanResponse represents the response data for a test plan
type TestPlanResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a test plan in a project; requires the CREATE grant
// on TEST_PLAN. New plans start in DRAFT.
func (s *TestPlanService) Create(callerID, projectID uuid.UUID, req *CreateTestPlanRequest) (*TestPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, project.OrganizationID, models.ObjectTypeTestPlan, models.RbacActionCreate); err != nil {
		return nil, err
	}

	plan := &models.TestPlan{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.PlanStatusDraft,
	}
	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create test plan: %w", err)
	}

	s.activity.Record(project.OrganizationID, callerID, models.ActivityActionCreated, models.ObjectTypeTestPlan, plan.ID,
		map[string]interface{}{"name": plan.Name})

	return s.convertToResponse(plan), nil
}

// GetByID retrieves a test plan; the caller must be a member of the
// owning organization
func (s *TestPlanService) GetByID(callerID, planID uuid.UUID) (*TestPlanResponse, error) {
	plan, orgID, err := s.getPlanWithOrg(planID)
	if err != nil {
		return nil, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, err
	}

	return s.convertToResponse(plan), nil
}

// List retrieves the test plans of a project; any member may list
func (s *TestPlanService) List(callerID, projectID uuid.UUID, limit, offset int) ([]TestPlanResponse, int64, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.perms.RequireMember(project.OrganizationID, callerID); err != nil {
		return nil, 0, err
	}

	plans, total, err := s.repo.GetByProjectID(projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list test plans: %w", err)
	}

	responses := make([]TestPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *s.convertToResponse(&plans[i])
	}
	return responses, total, nil
}

// Update updates a test plan; requires the UPDATE grant on TEST_PLAN
func (s *TestPlanService) Update(callerID, planID uuid.UUID, req *UpdateTestPlanRequest) (*TestPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, orgID, err := s.getPlanWithOrg(planID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestPlan, models.RbacActionUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.Name != nil && *req.Name != plan.Name {
		plan.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
		changes["description"] = *req.Description
	}
	if req.Status != nil {
		status := models.PlanStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("invalid plan status")
		}
		plan.Status = status
		changes["status"] = *req.Status
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update test plan: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestPlan, plan.ID, changes)

	return s.convertToResponse(plan), nil
}

// Delete deletes a test plan; requires the DELETE grant on TEST_PLAN
func (s *TestPlanService) Delete(callerID, planID uuid.UUID) error {
	plan, orgID, err := s.getPlanWithOrg(planID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestPlan, models.RbacActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(planID); err != nil {
		return fmt.Errorf("failed to delete test plan: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionDeleted, models.ObjectTypeTestPlan, plan.ID,
		map[string]interface{}{"name": plan.Name})

	return nil
}

func (s *TestPlanService) getProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *TestPlanService) getPlanWithOrg(planID uuid.UUID) (*models.TestPlan, uuid.UUID, error) {
	plan, err := s.repo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, apperrors.ErrTestPlanNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get test plan: %w", err)
	}
	project, err := s.getProject(plan.ProjectID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return plan, project.OrganizationID, nil
}

func (s *TestPlanService) convertToResponse(plan *models.TestPlan) *TestPlanResponse {
	return &TestPlanResponse{
		ID:          plan.ID,
		ProjectID:   plan.ProjectID,
		Name:        plan.Name,
		Description: plan.Description,
		Status:      string(plan.Status),
		CreatedAt:   plan.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   plan.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
