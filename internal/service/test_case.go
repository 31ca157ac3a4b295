package service

import (
	"errors"
	"fmt"
	"time"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseService handles business logic for test cases
type TestCaseService struct {
	repo      repository.TestCaseRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewTestCaseService creates a new test case service
func NewTestCaseService(
	repo repository.TestCaseRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *TestCaseService {
	return &TestCaseService{
		repo:      repo,
		projects:  projects,
		orgs:      orgs,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateTestCaseRequest represents the data needed to create a test case
type CreateTestCaseRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=200"`
	Description    string `json:"description"`
	Steps          string `json:"steps"`
	ExpectedResult string `json:"expected_result"`
	Priority       string `json:"priority"`
}

// UpdateTestCaseRequest represents the data needed to update a test case
type UpdateTestCaseRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description"`
	Steps          *string `json:"steps"`
	ExpectedResult *string `json:"expected_result"`
	Priority       *string `json:"priority"`
}

// TestCaseResponse represents the response data for a test case
type TestCaseResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Steps          string     `json:"steps"`
	ExpectedResult string     `json:"expected_result"`
	Priority       string     `json:"priority"`
	LastRunStatus  string     `json:"last_run_status"`
	LastRunAt      *time.Time `json:"last_run_at"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// Create creates a test case in a project. The caller needs the CREATE grant
// on TEST_CASE, and the organization's test case limit must not be reached.
func (s *TestCaseService) Create(callerID, projectID uuid.UUID, req *CreateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := models.CasePriorityMedium
	if req.Priority != "" {
		priority = models.CasePriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("invalid priority")
		}
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, project.OrganizationID, models.ObjectTypeTestCase, models.RbacActionCreate); err != nil {
		return nil, err
	}

	org, err := s.orgs.GetByID(project.OrganizationID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	count, err := s.repo.CountByOrganization(project.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count test cases: %w", err)
	}
	if count >= int64(org.MaxTestCases) {
		return nil, apperrors.ErrTestCaseLimitReached
	}

	testCase := &models.TestCase{
		ProjectID:      projectID,
		Title:          req.Title,
		Description:    req.Description,
		Steps:          req.Steps,
		ExpectedResult: req.ExpectedResult,
		Priority:       priority,
		LastRunStatus:  models.RunStatusNotRun,
	}
	if err := s.repo.Create(testCase); err != nil {
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}

	s.activity.Record(project.OrganizationID, callerID, models.ActivityActionCreated, models.ObjectTypeTestCase, testCase.ID,
		map[string]interface{}{"title": testCase.Title})

	return s.convertToResponse(testCase), nil
}

// GetByID retrieves a test case; the caller must be a member of the
// owning organization
func (s *TestCaseService) GetByID(callerID, caseID uuid.UUID) (*TestCaseResponse, error) {
	testCase, orgID, err := s.getCaseWithOrg(caseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, err
	}

	return s.convertToResponse(testCase), nil
}

// List retrieves the test cases of a project; any member may list
func (s *TestCaseService) List(callerID, projectID uuid.UUID, limit, offset int) ([]TestCaseResponse, int64, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.perms.RequireMember(project.OrganizationID, callerID); err != nil {
		return nil, 0, err
	}

	cases, total, err := s.repo.GetByProjectID(projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list test cases: %w", err)
	}

	responses := make([]TestCaseResponse, len(cases))
	for i := range cases {
		responses[i] = *s.convertToResponse(&cases[i])
	}
	return responses, total, nil
}

// Update updates a test case; requires the UPDATE grant on TEST_CASE
func (s *TestCaseService) Update(callerID, caseID uuid.UUID, req *UpdateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	testCase, orgID, err := s.getCaseWithOrg(caseID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestCase, models.RbacActionUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.Title != nil && *req.Title != testCase.Title {
		testCase.Title = *req.Title
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		testCase.Description = *req.Description
		changes["description"] = *req.Description
	}
	if req.Steps != nil {
		testCase.Steps = *req.Steps
		changes["steps"] = *req.Steps
	}
	if req.ExpectedResult != nil {
		testCase.ExpectedResult = *req.ExpectedResult
		changes["expected_result"] = *req.ExpectedResult
	}
	if req.Priority != nil {
		priority := models.CasePriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("invalid priority")
		}
		testCase.Priority = priority
		changes["priority"] = *req.Priority
	}

	if err := s.repo.Update(testCase); err != nil {
		return nil, fmt.Errorf("failed to update test case: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestCase, testCase.ID, changes)

	return s.convertToResponse(testCase), nil
}

// Delete deletes a test case and its runs; requires the DELETE grant
// on TEST_CASE
func (s *TestCaseService) Delete(callerID, caseID uuid.UUID) error {
	testCase, orgID, err := s.getCaseWithOrg(caseID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestCase, models.RbacActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(caseID); err != nil {
		return fmt.Errorf("failed to delete test case: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionDeleted, models.ObjectTypeTestCase, testCase.ID,
		map[string]interface{}{"title": testCase.Title})

	return nil
}

func (s *TestCaseService) getProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *TestCaseService) getCaseWithOrg(caseID uuid.UUID) (*models.TestCase, uuid.UUID, error) {
	testCase, err := s.repo.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, apperrors.ErrTestCaseNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get test case: %w", err)
	}
	project, err := s.getProject(testCase.ProjectID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return testCase, project.OrganizationID, nil
}

func (s *TestCaseService) convertToResponse(tc *models.TestCase) *TestCaseResponse {
	return &TestCaseResponse{
		ID:             tc.ID,
		ProjectID:      tc.ProjectID,
		Title:          tc.Title,
		Description:    tc.Description,
		Steps:          tc.Steps,
		ExpectedResult: tc.ExpectedResult,
		Priority:       string(tc.Priority),
		LastRunStatus:  string(tc.LastRunStatus),
		LastRunAt:      tc.LastRunAt,
		CreatedAt:      tc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      tc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
