package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"testtrack-backend/internal/api/handlers"
	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/database/models"
	"testtrack-backend/internal/mocks"
	"testtrack-backend/internal/service"
	"testtrack-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TestCaseHandlerTestSuite defines the test suite for TestCaseHandler
type TestCaseHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCaseRepo     *mocks.MockTestCaseRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo   *mocks.MockOrganizationMemberRepositoryInterface
	mockGrantRepo    *mocks.MockRbacPermissionRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	handler          *handlers.TestCaseHandler
	httpSuite        *testutils.HTTPTestSuite
	caller           *models.User
	orgID            uuid.UUID
	projectID        uuid.UUID
}

// SetupTest wires the handler over a real service backed by repository mocks
func (suite *TestCaseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockGrantRepo = mocks.NewMockRbacPermissionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)

	perms := service.NewPermissionService(suite.mockMemberRepo, suite.mockGrantRepo)
	activity := service.NewActivityService(suite.mockActivityRepo, perms)
	caseService := service.NewTestCaseService(
		suite.mockCaseRepo, suite.mockProjectRepo, suite.mockOrgRepo,
		perms, activity, validator.New(),
	)
	suite.handler = handlers.NewTestCaseHandler(caseService)

	suite.caller = &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Email:       "qa@test.local",
		DisplayName: "QA Person",
		Status:      models.UserStatusActive,
	}
	suite.orgID = uuid.New()
	suite.projectID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	authed := suite.httpSuite.Router.Group("/api/v1")
	authed.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserKey, suite.caller)
		c.Next()
	})
	authed.POST("/projects/:id/test-cases", suite.handler.CreateTestCase)
	authed.GET("/projects/:id/test-cases", suite.handler.ListTestCases)
	authed.GET("/test-cases/:id", suite.handler.GetTestCase)
	authed.PUT("/test-cases/:id", suite.handler.UpdateTestCase)
	authed.DELETE("/test-cases/:id", suite.handler.DeleteTestCase)
}

// TearDownTest cleans up after each test
func (suite *TestCaseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectProjectLookup stubs resolving the project to its organization
func (suite *TestCaseHandlerTestSuite) expectProjectLookup() {
	suite.mockProjectRepo.EXPECT().
		GetByID(suite.projectID).
		Return(&models.Project{
			BaseModel:      models.BaseModel{ID: suite.projectID},
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)
}

// expectGrant stubs the caller's membership and grant check
func (suite *TestCaseHandlerTestSuite) expectGrant(action models.RbacAction, granted bool) {
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.caller.ID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.caller.ID,
			Role:           models.MemberRoleQAEngineer,
		}, nil).
		Times(1)
	suite.mockGrantRepo.EXPECT().
		HasGrant(suite.orgID, models.MemberRoleQAEngineer, models.ObjectTypeTestCase, action).
		Return(granted, nil).
		Times(1)
}

// TestCreateTestCase tests creating a test case over HTTP
func (suite *TestCaseHandlerTestSuite) TestCreateTestCase() {
	requestBody := map[string]interface{}{
		"title":    "Login with valid credentials",
		"steps":    "1. Open login page\n2. Submit valid credentials",
		"priority": "HIGH",
	}

	suite.expectProjectLookup()
	suite.expectGrant(models.RbacActionCreate, true)

	suite.mockOrgRepo.EXPECT().
		GetByID(suite.orgID).
		Return(&models.Organization{
			BaseModel:    models.BaseModel{ID: suite.orgID},
			MaxTestCases: 5000,
		}, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		CountByOrganization(suite.orgID).
		Return(int64(12), nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(testCase *models.TestCase) error {
			testCase.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST",
		fmt.Sprintf("/api/v1/projects/%s/test-cases", suite.projectID), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.TestCaseResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Login with valid credentials", response.Title)
	assert.Equal(suite.T(), string(models.CasePriorityHigh), response.Priority)
	assert.Equal(suite.T(), string(models.RunStatusNotRun), response.LastRunStatus)
}

// TestCreateTestCaseLimitReached tests the case-limit guard mapping to 400
func (suite *TestCaseHandlerTestSuite) TestCreateTestCaseLimitReached() {
	requestBody := map[string]interface{}{"title": "One too many"}

	suite.expectProjectLookup()
	suite.expectGrant(models.RbacActionCreate, true)

	suite.mockOrgRepo.EXPECT().
		GetByID(suite.orgID).
		Return(&models.Organization{
			BaseModel:    models.BaseModel{ID: suite.orgID},
			MaxTestCases: 100,
		}, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		CountByOrganization(suite.orgID).
		Return(int64(100), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST",
		fmt.Sprintf("/api/v1/projects/%s/test-cases", suite.projectID), requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "test case limit reached")
}

// TestCreateTestCasePermissionDenied tests the missing-grant mapping to 403
func (suite *TestCaseHandlerTestSuite) TestCreateTestCasePermissionDenied() {
	requestBody := map[string]interface{}{"title": "Forbidden"}

	suite.expectProjectLookup()
	suite.expectGrant(models.RbacActionCreate, false)

	recorder := suite.httpSuite.MakeRequest("POST",
		fmt.Sprintf("/api/v1/projects/%s/test-cases", suite.projectID), requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "permission denied")
}

// TestGetTestCaseNotFound tests the 404 mapping
func (suite *TestCaseHandlerTestSuite) TestGetTestCaseNotFound() {
	caseID := uuid.New()

	suite.mockCaseRepo.EXPECT().
		GetByID(caseID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/test-cases/%s", caseID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "test case not found")
}

// TestListTestCases tests the pagination envelope
func (suite *TestCaseHandlerTestSuite) TestListTestCases() {
	suite.expectProjectLookup()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.caller.ID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.caller.ID,
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		GetByProjectID(suite.projectID, 10, 0).
		Return([]models.TestCase{
			{
				BaseModel:     models.BaseModel{ID: uuid.New()},
				ProjectID:     suite.projectID,
				Title:         "Case A",
				Priority:      models.CasePriorityMedium,
				LastRunStatus: models.RunStatusPass,
			},
		}, int64(27), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		fmt.Sprintf("/api/v1/projects/%s/test-cases?limit=10", suite.projectID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Items  []service.TestCaseResponse `json:"items"`
		Total  int64                      `json:"total"`
		Limit  int                        `json:"limit"`
		Offset int                        `json:"offset"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Items, 1)
	assert.Equal(suite.T(), int64(27), response.Total)
	assert.Equal(suite.T(), 10, response.Limit)
	assert.Equal(suite.T(), "Case A", response.Items[0].Title)
}

// TestDeleteTestCaseInvalidID tests the UUID parse guard
func (suite *TestCaseHandlerTestSuite) TestDeleteTestCaseInvalidID() {
	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/test-cases/nope", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid test case ID")
}

// TestTestCaseHandlerTestSuite runs the test suite
func TestTestCaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseHandlerTestSuite))
}
