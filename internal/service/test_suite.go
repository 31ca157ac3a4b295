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

// TestSuiteService handles business logic for test suites
type TestSuiteService struct {
	repo      repository.TestSuiteRepositoryInterface
	cases     repository.TestCaseRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewTestSuiteService creates a new test suite service
func NewTestSuiteService(
	repo repository.TestSuiteRepositoryInterface,
	cases repository.TestCaseRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *TestSuiteService {
	return &TestSuiteService{
		repo:      repo,
		cases:     cases,
		projects:  projects,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateTestSuiteRequest represents the data needed to create a test suite
type CreateTestSuiteRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateTestSuiteRequest represents the data needed to update a test suite
type UpdateTestSuiteRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// TestSuiteResponse represents the response data for a test suite
type TestSuiteResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a test suite in a project; requires the CREATE grant
// on TEST_SUITE
func (s *TestSuiteService) Create(callerID, projectID uuid.UUID, req *CreateTestSuiteRequest) (*TestSuiteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, project.OrganizationID, models.ObjectTypeTestSuite, models.RbacActionCreate); err != nil {
		return nil, err
	}

	suite := &models.TestSuite{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(suite); err != nil {
		return nil, fmt.Errorf("failed to create test suite: %w", err)
	}

	s.activity.Record(project.OrganizationID, callerID, models.ActivityActionCreated, models.ObjectTypeTestSuite, suite.ID,
		map[string]interface{}{"name": suite.Name})

	return s.convertToResponse(suite), nil
}

// GetByID retrieves a test suite; the caller must be a member of the
// owning organization
func (s *TestSuiteService) GetByID(callerID, suiteID uuid.UUID) (*TestSuiteResponse, error) {
	suite, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return nil, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, err
	}

	return s.convertToResponse(suite), nil
}

// List retrieves the test suites of a project; any member may list
func (s *TestSuiteService) List(callerID, projectID uuid.UUID, limit, offset int) ([]TestSuiteResponse, int64, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.perms.RequireMember(project.OrganizationID, callerID); err != nil {
		return nil, 0, err
	}

	suites, total, err := s.repo.GetByProjectID(projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list test suites: %w", err)
	}

	responses := make([]TestSuiteResponse, len(suites))
	for i := range suites {
		responses[i] = *s.convertToResponse(&suites[i])
	}
	return responses, total, nil
}

// Update updates a test suite; requires the UPDATE grant on TEST_SUITE
func (s *TestSuiteService) Update(callerID, suiteID uuid.UUID, req *UpdateTestSuiteRequest) (*TestSuiteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	suite, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestSuite, models.RbacActionUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.Name != nil && *req.Name != suite.Name {
		suite.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		suite.Description = *req.Description
		changes["description"] = *req.Description
	}

	if err := s.repo.Update(suite); err != nil {
		return nil, fmt.Errorf("failed to update test suite: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestSuite, suite.ID, changes)

	return s.convertToResponse(suite), nil
}

// Delete deletes a test suite and its case links; requires the DELETE grant
// on TEST_SUITE. The test cases themselves are untouched.
func (s *TestSuiteService) Delete(callerID, suiteID uuid.UUID) error {
	suite, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestSuite, models.RbacActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(suiteID); err != nil {
		return fmt.Errorf("failed to delete test suite: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionDeleted, models.ObjectTypeTestSuite, suite.ID,
		map[string]interface{}{"name": suite.Name})

	return nil
}

// AddCase links a test case into a suite. Both must belong to the same
// project; duplicate links are rejected.
func (s *TestSuiteService) AddCase(callerID, suiteID, caseID uuid.UUID) error {
	suite, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestSuite, models.RbacActionUpdate); err != nil {
		return err
	}

	testCase, err := s.cases.GetByID(caseID)
	if err != nil {
		return apperrors.ErrTestCaseNotFound
	}
	if testCase.ProjectID != suite.ProjectID {
		return apperrors.NewValidationError("test case belongs to a different project")
	}

	if _, err := s.repo.GetCaseLink(suiteID, caseID); err == nil {
		return apperrors.ErrTestSuiteCaseExists
	}

	link := &models.TestSuiteCase{
		TestSuiteID: suiteID,
		TestCaseID:  caseID,
	}
	if err := s.repo.AddCase(link); err != nil {
		return fmt.Errorf("failed to add case to suite: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestSuite, suite.ID,
		map[string]interface{}{"added_case_id": caseID.String()})

	return nil
}

// ListCases retrieves the test cases linked into a suite
func (s *TestSuiteService) ListCases(callerID, suiteID uuid.UUID) ([]TestCaseResponse, error) {
	_, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return nil, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, err
	}

	links, err := s.repo.GetCases(suiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suite cases: %w", err)
	}

	responses := make([]TestCaseResponse, 0, len(links))
	for i := range links {
		tc := links[i].TestCase
		responses = append(responses, TestCaseResponse{
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
		})
	}
	return responses, nil
}

// RemoveCase unlinks a test case from a suite
func (s *TestSuiteService) RemoveCase(callerID, suiteID, caseID uuid.UUID) error {
	suite, orgID, err := s.getSuiteWithOrg(suiteID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestSuite, models.RbacActionUpdate); err != nil {
		return err
	}

	if _, err := s.repo.GetCaseLink(suiteID, caseID); err != nil {
		return apperrors.ErrTestSuiteCaseNotFound
	}

	if err := s.repo.RemoveCase(suiteID, caseID); err != nil {
		return fmt.Errorf("failed to remove case from suite: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestSuite, suite.ID,
		map[string]interface{}{"removed_case_id": caseID.String()})

	return nil
}

func (s *TestSuiteService) getProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *TestSuiteService) getSuiteWithOrg(suiteID uuid.UUID) (*models.TestSuite, uuid.UUID, error) {
	suite, err := s.repo.GetByID(suiteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, apperrors.ErrTestSuiteNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get test suite: %w", err)
	}
	project, err := s.getProject(suite.ProjectID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return suite, project.OrganizationID, nil
}

func (s *TestSuiteService) convertToResponse(suite *models.TestSuite) *TestSuiteResponse {
	return &TestSuiteResponse{
		ID:          suite.ID,
		ProjectID:   suite.ProjectID,
		Name:        suite.Name,
		Description: suite.Description,
		CreatedAt:   suite.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   suite.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
