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

// TestRunService handles business logic for test runs. Every mutation is
// followed by a recompute of the owning test case's last-run summary so the
// cached columns never drift from the run history.
type TestRunService struct {
	repo      repository.TestRunRepositoryInterface
	cases     repository.TestCaseRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewTestRunService creates a new test run service
func NewTestRunService(
	repo repository.TestRunRepositoryInterface,
	cases repository.TestCaseRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *TestRunService {
	return &TestRunService{
		repo:      repo,
		cases:     cases,
		projects:  projects,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateTestRunRequest represents the data needed to record a test run
type CreateTestRunRequest struct {
	Status          string     `json:"status" validate:"required"`
	DurationSeconds int        `json:"duration_seconds" validate:"omitempty,min=0"`
	Notes           string     `json:"notes"`
	Environment     string     `json:"environment" validate:"omitempty,max=100"`
	ExecutedAt      *time.Time `json:"executed_at"`
}

// UpdateTestRunRequest represents the data needed to update a test run
type UpdateTestRunRequest struct {
	Status          *string    `json:"status"`
	DurationSeconds *int       `json:"duration_seconds" validate:"omitempty,min=0"`
	Notes           *string    `json:"notes"`
	Environment     *string    `json:"environment" validate:"omitempty,max=100"`
	ExecutedAt      *time.Time `json:"executed_at"`
}

// TestRunResponse represents the response data for a test run
type TestRunResponse struct {
	ID              uuid.UUID `json:"id"`
	TestCaseID      uuid.UUID `json:"test_case_id"`
	Status          string    `json:"status"`
	DurationSeconds int       `json:"duration_seconds"`
	Notes           string    `json:"notes"`
	Environment     string    `json:"environment"`
	ExecutedAt      time.Time `json:"executed_at"`
	ExecutedBy      uuid.UUID `json:"executed_by"`
	CreatedAt       string    `json:"created_at"`
}

// Create records a run for a test case; requires the CREATE grant on TEST_RUN.
// ExecutedAt defaults to the current time when omitted.
func (s *TestRunService) Create(callerID, caseID uuid.UUID, req *CreateTestRunRequest) (*TestRunResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.RunStatus(req.Status)
	if !status.IsRecordable() {
		return nil, apperrors.ErrInvalidRunStatus
	}

	testCase, orgID, err := s.getCaseWithOrg(caseID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestRun, models.RbacActionCreate); err != nil {
		return nil, err
	}

	executedAt := time.Now().UTC()
	if req.ExecutedAt != nil {
		executedAt = req.ExecutedAt.UTC()
	}

	run := &models.TestRun{
		TestCaseID:      testCase.ID,
		Status:          status,
		DurationSeconds: req.DurationSeconds,
		Notes:           req.Notes,
		Environment:     req.Environment,
		ExecutedAt:      executedAt,
		ExecutedBy:      callerID,
	}
	if err := s.repo.Create(run); err != nil {
		return nil, fmt.Errorf("failed to create test run: %w", err)
	}

	if err := s.recomputeLastRun(testCase.ID); err != nil {
		return nil, err
	}

	s.activity.Record(orgID, callerID, models.ActivityActionCreated, models.ObjectTypeTestRun, run.ID,
		map[string]interface{}{"test_case_id": testCase.ID.String(), "status": string(status)})

	return s.convertToResponse(run), nil
}

// List retrieves the runs of a test case, newest first; any member may list
func (s *TestRunService) List(callerID, caseID uuid.UUID, limit, offset int) ([]TestRunResponse, int64, error) {
	_, orgID, err := s.getCaseWithOrg(caseID)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, 0, err
	}

	runs, total, err := s.repo.GetByTestCaseID(caseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list test runs: %w", err)
	}

	responses := make([]TestRunResponse, len(runs))
	for i := range runs {
		responses[i] = *s.convertToResponse(&runs[i])
	}
	return responses, total, nil
}

// Update updates a run; requires the UPDATE grant on TEST_RUN
func (s *TestRunService) Update(callerID, runID uuid.UUID, req *UpdateTestRunRequest) (*TestRunResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	run, err := s.getRun(runID)
	if err != nil {
		return nil, err
	}

	_, orgID, err := s.getCaseWithOrg(run.TestCaseID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestRun, models.RbacActionUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.Status != nil {
		status := models.RunStatus(*req.Status)
		if !status.IsRecordable() {
			return nil, apperrors.ErrInvalidRunStatus
		}
		run.Status = status
		changes["status"] = *req.Status
	}
	if req.DurationSeconds != nil {
		run.DurationSeconds = *req.DurationSeconds
		changes["duration_seconds"] = *req.DurationSeconds
	}
	if req.Notes != nil {
		run.Notes = *req.Notes
		changes["notes"] = *req.Notes
	}
	if req.Environment != nil {
		run.Environment = *req.Environment
		changes["environment"] = *req.Environment
	}
	if req.ExecutedAt != nil {
		run.ExecutedAt = req.ExecutedAt.UTC()
		changes["executed_at"] = run.ExecutedAt
	}

	if err := s.repo.Update(run); err != nil {
		return nil, fmt.Errorf("failed to update test run: %w", err)
	}

	if err := s.recomputeLastRun(run.TestCaseID); err != nil {
		return nil, err
	}

	s.activity.Record(orgID, callerID, models.ActivityActionUpdated, models.ObjectTypeTestRun, run.ID, changes)

	return s.convertToResponse(run), nil
}

// Delete deletes a run; requires the DELETE grant on TEST_RUN. The owning
// test case's summary is recomputed from the remaining runs.
func (s *TestRunService) Delete(callerID, runID uuid.UUID) error {
	run, err := s.getRun(runID)
	if err != nil {
		return err
	}

	_, orgID, err := s.getCaseWithOrg(run.TestCaseID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeTestRun, models.RbacActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(runID); err != nil {
		return fmt.Errorf("failed to delete test run: %w", err)
	}

	if err := s.recomputeLastRun(run.TestCaseID); err != nil {
		return err
	}

	s.activity.Record(orgID, callerID, models.ActivityActionDeleted, models.ObjectTypeTestRun, run.ID,
		map[string]interface{}{"test_case_id": run.TestCaseID.String()})

	return nil
}

// recomputeLastRun derives the cached last-run columns of a test case from
// its run history. The latest run wins by executed_at, ties broken by the
// higher id. A case with no runs reverts to NOT_RUN with a null timestamp.
func (s *TestRunService) recomputeLastRun(caseID uuid.UUID) error {
	latest, err := s.repo.GetLatestByTestCase(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.cases.UpdateLastRun(caseID, models.RunStatusNotRun, nil)
		}
		return fmt.Errorf("failed to get latest test run: %w", err)
	}
	at := latest.ExecutedAt
	return s.cases.UpdateLastRun(caseID, latest.Status, &at)
}

func (s *TestRunService) getRun(runID uuid.UUID) (*models.TestRun, error) {
	run, err := s.repo.GetByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}
	return run, nil
}

func (s *TestRunService) getCaseWithOrg(caseID uuid.UUID) (*models.TestCase, uuid.UUID, error) {
	testCase, err := s.cases.GetByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, apperrors.ErrTestCaseNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get test case: %w", err)
	}
	project, err := s.projects.GetByID(testCase.ProjectID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("failed to get project: %w", err)
	}
	return testCase, project.OrganizationID, nil
}

func (s *TestRunService) convertToResponse(run *models.TestRun) *TestRunResponse {
	return &TestRunResponse{
		ID:              run.ID,
		TestCaseID:      run.TestCaseID,
		Status:          string(run.Status),
		DurationSeconds: run.DurationSeconds,
		Notes:           run.Notes,
		Environment:     run.Environment,
		ExecutedAt:      run.ExecutedAt,
		ExecutedBy:      run.ExecutedBy,
		CreatedAt:       run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
