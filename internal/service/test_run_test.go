package service_test

import (
	"testing"
	"time"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/mocks"
	"testtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TestRunServiceTestSuite defines the test suite for TestRunService
type TestRunServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRunRepo      *mocks.MockTestRunRepositoryInterface
	mockCaseRepo     *mocks.MockTestCaseRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockMemberRepo   *mocks.MockOrganizationMemberRepositoryInterface
	mockGrantRepo    *mocks.MockRbacPermissionRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	runService       *service.TestRunService
	validator        *validator.Validate

	orgID     uuid.UUID
	projectID uuid.UUID
	caseID    uuid.UUID
	callerID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TestRunServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRunRepo = mocks.NewMockTestRunRepositoryInterface(suite.ctrl)
	suite.mockCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockGrantRepo = mocks.NewMockRbacPermissionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	perms := service.NewPermissionService(suite.mockMemberRepo, suite.mockGrantRepo)
	activity := service.NewActivityService(suite.mockActivityRepo, perms)
	suite.runService = service.NewTestRunService(
		suite.mockRunRepo, suite.mockCaseRepo, suite.mockProjectRepo,
		perms, activity, suite.validator,
	)

	suite.orgID = uuid.New()
	suite.projectID = uuid.New()
	suite.caseID = uuid.New()
	suite.callerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TestRunServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestRunServiceTestSuite) expectCaseLookup() {
	suite.mockCaseRepo.EXPECT().
		GetByID(suite.caseID).
		Return(&models.TestCase{
			BaseModel: models.BaseModel{ID: suite.caseID},
			ProjectID: suite.projectID,
			Title:     "Login works",
		}, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetByID(suite.projectID).
		Return(&models.Project{
			BaseModel:      models.BaseModel{ID: suite.projectID},
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)
}

func (suite *TestRunServiceTestSuite) expectGrant(action models.RbacAction, granted bool) {
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.callerID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.callerID,
			Role:           models.MemberRoleQAEngineer,
		}, nil).
		Times(1)

	suite.mockGrantRepo.EXPECT().
		HasGrant(suite.orgID, models.MemberRoleQAEngineer, models.ObjectTypeTestRun, action).
		Return(granted, nil).
		Times(1)
}

// TestCreateRun tests recording a run and refreshing the case summary
func (suite *TestRunServiceTestSuite) TestCreateRun() {
	executedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	req := &service.CreateTestRunRequest{
		Status:          string(models.RunStatusPass),
		DurationSeconds: 30,
		Environment:     "staging",
		ExecutedAt:      &executedAt,
	}

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionCreate, true)

	suite.mockRunRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(run *models.TestRun) error {
			run.ID = uuid.New()
			return nil
		}).
		Times(1)

	// The latest run drives the cached summary on the test case
	suite.mockRunRepo.EXPECT().
		GetLatestByTestCase(suite.caseID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusPass,
			ExecutedAt: executedAt,
		}, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		UpdateLastRun(suite.caseID, models.RunStatusPass, gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.runService.Create(suite.callerID, suite.caseID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.RunStatusPass), response.Status)
	assert.Equal(suite.T(), executedAt, response.ExecutedAt)
	assert.Equal(suite.T(), suite.callerID, response.ExecutedBy)
}

// TestCreateRunDefaultsExecutedAt tests that ExecutedAt defaults to now
func (suite *TestRunServiceTestSuite) TestCreateRunDefaultsExecutedAt() {
	req := &service.CreateTestRunRequest{Status: string(models.RunStatusFail)}
	before := time.Now().UTC()

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionCreate, true)

	suite.mockRunRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockRunRepo.EXPECT().
		GetLatestByTestCase(suite.caseID).
		Return(&models.TestRun{
			TestCaseID: suite.caseID,
			Status:     models.RunStatusFail,
			ExecutedAt: time.Now().UTC(),
		}, nil).
		Times(1)
	suite.mockCaseRepo.EXPECT().
		UpdateLastRun(suite.caseID, models.RunStatusFail, gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.runService.Create(suite.callerID, suite.caseID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.False(suite.T(), response.ExecutedAt.Before(before))
}

// TestCreateRunNotRunRejected tests that NOT_RUN cannot be recorded on a run
func (suite *TestRunServiceTestSuite) TestCreateRunNotRunRejected() {
	req := &service.CreateTestRunRequest{Status: string(models.RunStatusNotRun)}

	response, err := suite.runService.Create(suite.callerID, suite.caseID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRunStatus)
}

// TestCreateRunUnknownStatusRejected tests that an unknown status is rejected
func (suite *TestRunServiceTestSuite) TestCreateRunUnknownStatusRejected() {
	req := &service.CreateTestRunRequest{Status: "MAYBE"}

	response, err := suite.runService.Create(suite.callerID, suite.caseID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRunStatus)
}

// TestCreateRunPermissionDenied tests that a missing grant blocks the write
func (suite *TestRunServiceTestSuite) TestCreateRunPermissionDenied() {
	req := &service.CreateTestRunRequest{Status: string(models.RunStatusPass)}

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionCreate, false)

	response, err := suite.runService.Create(suite.callerID, suite.caseID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPermissionDenied)
}

// TestDeleteLastRunRevertsSummary tests that deleting the only run reverts
// the case summary to NOT_RUN
func (suite *TestRunServiceTestSuite) TestDeleteLastRunRevertsSummary() {
	runID := uuid.New()

	suite.mockRunRepo.EXPECT().
		GetByID(runID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: runID},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusPass,
		}, nil).
		Times(1)

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionDelete, true)

	suite.mockRunRepo.EXPECT().Delete(runID).Return(nil).Times(1)

	// No runs remain after the delete
	suite.mockRunRepo.EXPECT().
		GetLatestByTestCase(suite.caseID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		UpdateLastRun(suite.caseID, models.RunStatusNotRun, gomock.Nil()).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	err := suite.runService.Delete(suite.callerID, runID)

	assert.NoError(suite.T(), err)
}

// TestDeleteRunRecomputesFromRemaining tests that deleting a run leaves the
// summary reflecting the newest remaining run
func (suite *TestRunServiceTestSuite) TestDeleteRunRecomputesFromRemaining() {
	runID := uuid.New()
	remainingAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	suite.mockRunRepo.EXPECT().
		GetByID(runID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: runID},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusPass,
		}, nil).
		Times(1)

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionDelete, true)

	suite.mockRunRepo.EXPECT().Delete(runID).Return(nil).Times(1)

	suite.mockRunRepo.EXPECT().
		GetLatestByTestCase(suite.caseID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusBlocked,
			ExecutedAt: remainingAt,
		}, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		UpdateLastRun(suite.caseID, models.RunStatusBlocked, gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	err := suite.runService.Delete(suite.callerID, runID)

	assert.NoError(suite.T(), err)
}

// TestUpdateRunStatusRecomputes tests that editing a run refreshes the summary
func (suite *TestRunServiceTestSuite) TestUpdateRunStatusRecomputes() {
	runID := uuid.New()
	newStatus := string(models.RunStatusFail)
	req := &service.UpdateTestRunRequest{Status: &newStatus}

	suite.mockRunRepo.EXPECT().
		GetByID(runID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: runID},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusPass,
			ExecutedAt: time.Now().UTC(),
		}, nil).
		Times(1)

	suite.expectCaseLookup()
	suite.expectGrant(models.RbacActionUpdate, true)

	suite.mockRunRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockRunRepo.EXPECT().
		GetLatestByTestCase(suite.caseID).
		Return(&models.TestRun{
			BaseModel:  models.BaseModel{ID: runID},
			TestCaseID: suite.caseID,
			Status:     models.RunStatusFail,
			ExecutedAt: time.Now().UTC(),
		}, nil).
		Times(1)
	suite.mockCaseRepo.EXPECT().
		UpdateLastRun(suite.caseID, models.RunStatusFail, gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.runService.Update(suite.callerID, runID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), newStatus, response.Status)
}

// TestRecomputeIsIdempotent tests that recomputing the summary twice with no
// intervening run mutation writes the identical summary both times
func (suite *TestRunServiceTestSuite) TestRecomputeIsIdempotent() {
	runID := uuid.New()
	latestAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	latest := &models.TestRun{
		BaseModel:  models.BaseModel{ID: runID},
		TestCaseID: suite.caseID,
		Status:     models.RunStatusFail,
		ExecutedAt: latestAt,
	}

	type summary struct {
		status models.RunStatus
		at     time.Time
	}
	var written []summary

	// Two note-only edits leave the run history unchanged; each one still
	// triggers a recompute against the same latest run
	for i := 0; i < 2; i++ {
		suite.mockRunRepo.EXPECT().
			GetByID(runID).
			Return(&models.TestRun{
				BaseModel:  models.BaseModel{ID: runID},
				TestCaseID: suite.caseID,
				Status:     models.RunStatusFail,
				ExecutedAt: latestAt,
			}, nil).
			Times(1)

		suite.expectCaseLookup()
		suite.expectGrant(models.RbacActionUpdate, true)

		suite.mockRunRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
		suite.mockRunRepo.EXPECT().GetLatestByTestCase(suite.caseID).Return(latest, nil).Times(1)
		suite.mockCaseRepo.EXPECT().
			UpdateLastRun(suite.caseID, models.RunStatusFail, gomock.Any()).
			DoAndReturn(func(caseID uuid.UUID, status models.RunStatus, at *time.Time) error {
				written = append(written, summary{status: status, at: *at})
				return nil
			}).
			Times(1)
		suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		notes := "flaky on staging"
		_, err := suite.runService.Update(suite.callerID, runID, &service.UpdateTestRunRequest{Notes: &notes})
		assert.NoError(suite.T(), err)
	}

	assert.Len(suite.T(), written, 2)
	assert.Equal(suite.T(), written[0], written[1])
	assert.Equal(suite.T(), models.RunStatusFail, written[0].status)
	assert.Equal(suite.T(), latestAt, written[0].at)
}

// TestListRunsNotAMember tests that a non-member cannot read run history
func (suite *TestRunServiceTestSuite) TestListRunsNotAMember() {
	suite.expectCaseLookup()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.callerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, total, err := suite.runService.List(suite.callerID, suite.caseID, 50, 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.Zero(suite.T(), total)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestTestRunServiceTestSuite runs the test suite
func TestTestRunServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestRunServiceTestSuite))
}
