package service_test

import (
	"testing"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/mocks"
	"testtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CommentServiceTestSuite defines the test suite for CommentService
type CommentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCommentRepo  *mocks.MockCommentRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockCaseRepo     *mocks.MockTestCaseRepositoryInterface
	mockRunRepo      *mocks.MockTestRunRepositoryInterface
	mockSuiteRepo    *mocks.MockTestSuiteRepositoryInterface
	mockPlanRepo     *mocks.MockTestPlanRepositoryInterface
	mockMemberRepo   *mocks.MockOrganizationMemberRepositoryInterface
	mockGrantRepo    *mocks.MockRbacPermissionRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	commentService   *service.CommentService
	validator        *validator.Validate

	orgID     uuid.UUID
	projectID uuid.UUID
	caller    *models.User
}

// SetupTest sets up the test suite
func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.mockRunRepo = mocks.NewMockTestRunRepositoryInterface(suite.ctrl)
	suite.mockSuiteRepo = mocks.NewMockTestSuiteRepositoryInterface(suite.ctrl)
	suite.mockPlanRepo = mocks.NewMockTestPlanRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockGrantRepo = mocks.NewMockRbacPermissionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	perms := service.NewPermissionService(suite.mockMemberRepo, suite.mockGrantRepo)
	activity := service.NewActivityService(suite.mockActivityRepo, perms)
	suite.commentService = service.NewCommentService(
		suite.mockCommentRepo, suite.mockProjectRepo, suite.mockCaseRepo,
		suite.mockRunRepo, suite.mockSuiteRepo, suite.mockPlanRepo,
		perms, activity, suite.validator,
	)

	suite.orgID = uuid.New()
	suite.projectID = uuid.New()
	suite.caller = &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Email:       "dev@example.com",
		DisplayName: "Dev Person",
		Status:      models.UserStatusActive,
	}
}

// TearDownTest cleans up after each test
func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCommentOnTestCase tests commenting on a test case
func (suite *CommentServiceTestSuite) TestCreateCommentOnTestCase() {
	caseID := uuid.New()
	req := &service.CreateCommentRequest{
		ObjectType: string(models.ObjectTypeTestCase),
		ObjectID:   caseID.String(),
		Body:       "Flaky on slow networks",
	}

	suite.mockCaseRepo.EXPECT().
		GetByID(caseID).
		Return(&models.TestCase{
			BaseModel: models.BaseModel{ID: caseID},
			ProjectID: suite.projectID,
		}, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetByID(suite.projectID).
		Return(&models.Project{
			BaseModel:      models.BaseModel{ID: suite.projectID},
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.caller.ID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.caller.ID,
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	suite.mockGrantRepo.EXPECT().
		HasGrant(suite.orgID, models.MemberRoleDeveloper, models.ObjectTypeComment, models.RbacActionCreate).
		Return(true, nil).
		Times(1)

	suite.mockCommentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(comment *models.Comment) error {
			comment.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.commentService.Create(suite.caller, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), suite.caller.ID, response.AuthorID)
	assert.Equal(suite.T(), "Dev Person", response.AuthorName)
	assert.Equal(suite.T(), req.Body, response.Body)
}

// TestCreateCommentUnsupportedObject tests rejecting a non-commentable object
func (suite *CommentServiceTestSuite) TestCreateCommentUnsupportedObject() {
	req := &service.CreateCommentRequest{
		ObjectType: string(models.ObjectTypeOrganization),
		ObjectID:   uuid.New().String(),
		Body:       "hello",
	}

	response, err := suite.commentService.Create(suite.caller, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteCommentByAuthor tests that the author can delete their comment
func (suite *CommentServiceTestSuite) TestDeleteCommentByAuthor() {
	commentID := uuid.New()

	suite.mockCommentRepo.EXPECT().
		GetByID(commentID).
		Return(&models.Comment{
			BaseModel:  models.BaseModel{ID: commentID},
			AuthorID:   suite.caller.ID,
			ObjectType: models.ObjectTypeProject,
			ObjectID:   suite.projectID,
			Body:       "obsolete",
		}, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetByID(suite.projectID).
		Return(&models.Project{
			BaseModel:      models.BaseModel{ID: suite.projectID},
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)

	suite.mockCommentRepo.EXPECT().Delete(commentID).Return(nil).Times(1)
	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	err := suite.commentService.Delete(suite.caller, commentID)

	assert.NoError(suite.T(), err)
}

// TestDeleteCommentByOtherUser tests that a non-author non-admin cannot delete
func (suite *CommentServiceTestSuite) TestDeleteCommentByOtherUser() {
	commentID := uuid.New()

	suite.mockCommentRepo.EXPECT().
		GetByID(commentID).
		Return(&models.Comment{
			BaseModel:  models.BaseModel{ID: commentID},
			AuthorID:   uuid.New(), // someone else
			ObjectType: models.ObjectTypeProject,
			ObjectID:   suite.projectID,
		}, nil).
		Times(1)

	err := suite.commentService.Delete(suite.caller, commentID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotCommentAuthor)
}

// TestDeleteCommentByAdmin tests that a platform admin may delete any comment
func (suite *CommentServiceTestSuite) TestDeleteCommentByAdmin() {
	commentID := uuid.New()
	admin := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		IsAdmin:   true,
		Status:    models.UserStatusActive,
	}

	suite.mockCommentRepo.EXPECT().
		GetByID(commentID).
		Return(&models.Comment{
			BaseModel:  models.BaseModel{ID: commentID},
			AuthorID:   uuid.New(),
			ObjectType: models.ObjectTypeProject,
			ObjectID:   suite.projectID,
		}, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetByID(suite.projectID).
		Return(&models.Project{
			BaseModel:      models.BaseModel{ID: suite.projectID},
			OrganizationID: suite.orgID,
		}, nil).
		Times(1)

	suite.mockCommentRepo.EXPECT().Delete(commentID).Return(nil).Times(1)
	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	err := suite.commentService.Delete(admin, commentID)

	assert.NoError(suite.T(), err)
}

// TestCommentServiceTestSuite runs the test suite
func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
