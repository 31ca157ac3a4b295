package service_test

import (
	"errors"
	"testing"

	"testtrack-backend/internal/auth"
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

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo   *mocks.MockOrganizationMemberRepositoryInterface
	mockGrantRepo    *mocks.MockRbacPermissionRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	orgService       *service.OrganizationService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockGrantRepo = mocks.NewMockRbacPermissionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	perms := service.NewPermissionService(suite.mockMemberRepo, suite.mockGrantRepo)
	activity := service.NewActivityService(suite.mockActivityRepo, perms)
	suite.orgService = service.NewOrganizationService(
		suite.mockOrgRepo, suite.mockMemberRepo, suite.mockGrantRepo,
		perms, activity, auth.DefaultRbacConfig(), suite.validator,
		20, 5000,
	)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests that creating an organization seeds the
// founding manager membership and the default grant matrix
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	callerID := uuid.New()
	req := &service.CreateOrganizationRequest{
		Name:        "Acme QA",
		Description: "Quality team",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			org.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(member *models.OrganizationMember) error {
			assert.Equal(suite.T(), callerID, member.UserID)
			assert.Equal(suite.T(), models.MemberRoleOrganizationManager, member.Role)
			return nil
		}).
		Times(1)

	suite.mockGrantRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(perms []models.RbacPermission) error {
			assert.NotEmpty(suite.T(), perms)
			// Every seeded row belongs to the new organization
			for _, p := range perms {
				assert.NotEqual(suite.T(), uuid.Nil, p.OrganizationID)
			}
			return nil
		}).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.orgService.Create(callerID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), 20, response.MaxProjects)
	assert.Equal(suite.T(), 5000, response.MaxTestCases)
}

// TestCreateOrganizationDuplicateName tests rejecting a duplicate name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateName() {
	req := &service.CreateOrganizationRequest{Name: "Acme QA"}

	suite.mockOrgRepo.EXPECT().
		GetByName(req.Name).
		Return(&models.Organization{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      req.Name,
		}, nil).
		Times(1)

	response, err := suite.orgService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

// TestCreateOrganizationNameCheckStorageFailure tests that a failing
// duplicate-name lookup propagates instead of reading as "name is free"
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationNameCheckStorageFailure() {
	req := &service.CreateOrganizationRequest{Name: "Acme QA"}
	dbErr := errors.New("pq: connection refused")

	suite.mockOrgRepo.EXPECT().
		GetByName(req.Name).
		Return(nil, dbErr).
		Times(1)

	response, err := suite.orgService.Create(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, dbErr)
	assert.False(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateOrganizationValidationError tests rejecting an empty name
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{Name: ""}

	response, err := suite.orgService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetOrganizationNotAMember tests that outsiders cannot read an organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotAMember() {
	orgID := uuid.New()
	callerID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.orgService.GetByID(callerID, orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestUpdateOrganizationRequiresManager tests that only managers may update
func (suite *OrganizationServiceTestSuite) TestUpdateOrganizationRequiresManager() {
	orgID := uuid.New()
	callerID := uuid.New()
	name := "Renamed"
	req := &service.UpdateOrganizationRequest{Name: &name}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			UserID:         callerID,
			Role:           models.MemberRoleQAEngineer,
		}, nil).
		Times(1)

	response, err := suite.orgService.Update(callerID, orgID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

// TestListForUser tests listing the caller's organizations with roles
func (suite *OrganizationServiceTestSuite) TestListForUser() {
	callerID := uuid.New()
	orgID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetOrganizationsForUser(callerID).
		Return([]models.OrganizationMember{
			{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: orgID,
				UserID:         callerID,
				Role:           models.MemberRoleOrganizationManager,
				Organization: models.Organization{
					BaseModel: models.BaseModel{ID: orgID},
					Name:      "Acme QA",
				},
			},
		}, nil).
		Times(1)

	responses, err := suite.orgService.ListForUser(callerID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "Acme QA", responses[0].Organization.Name)
	assert.Equal(suite.T(), string(models.MemberRoleOrganizationManager), responses[0].Role)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
