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
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMemberRepo   *mocks.MockOrganizationMemberRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockGrantRepo    *mocks.MockRbacPermissionRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	memberService    *service.MemberService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockOrganizationMemberRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockGrantRepo = mocks.NewMockRbacPermissionRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	perms := service.NewPermissionService(suite.mockMemberRepo, suite.mockGrantRepo)
	activity := service.NewActivityService(suite.mockActivityRepo, perms)
	suite.memberService = service.NewMemberService(suite.mockMemberRepo, suite.mockUserRepo, perms, activity, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) managerMembership(orgID, userID uuid.UUID) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MemberRoleOrganizationManager,
	}
}

// TestAddMember tests adding a user to an organization
func (suite *MemberServiceTestSuite) TestAddMember() {
	orgID := uuid.New()
	callerID := uuid.New()
	userID := uuid.New()
	req := &service.AddMemberRequest{
		UserID: userID.String(),
		Role:   string(models.MemberRoleQAEngineer),
	}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{
			BaseModel:   models.BaseModel{ID: userID},
			Email:       "qa@example.com",
			DisplayName: "QA Person",
			Status:      models.UserStatusActive,
		}, nil).
		Times(1)

	// No existing membership for the target user
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.Add(callerID, orgID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), userID, response.UserID)
	assert.Equal(suite.T(), string(models.MemberRoleQAEngineer), response.Role)
	assert.Equal(suite.T(), "qa@example.com", response.Email)
	assert.Equal(suite.T(), "QA Person", response.Name)
}

// TestAddMemberInvalidRole tests adding a member with an unknown role
func (suite *MemberServiceTestSuite) TestAddMemberInvalidRole() {
	req := &service.AddMemberRequest{
		UserID: uuid.New().String(),
		Role:   "SUPERUSER",
	}

	response, err := suite.memberService.Add(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestAddMemberNotManager tests that a non-manager caller cannot add members
func (suite *MemberServiceTestSuite) TestAddMemberNotManager() {
	orgID := uuid.New()
	callerID := uuid.New()
	req := &service.AddMemberRequest{
		UserID: uuid.New().String(),
		Role:   string(models.MemberRoleDeveloper),
	}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			UserID:         callerID,
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	response, err := suite.memberService.Add(callerID, orgID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

// TestAddMemberDuplicate tests adding a user who is already a member
func (suite *MemberServiceTestSuite) TestAddMemberDuplicate() {
	orgID := uuid.New()
	callerID := uuid.New()
	userID := uuid.New()
	req := &service.AddMemberRequest{
		UserID: userID.String(),
		Role:   string(models.MemberRoleDeveloper),
	}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, userID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			UserID:         userID,
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	response, err := suite.memberService.Add(callerID, orgID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestUpdateMemberRole tests changing a member's role
func (suite *MemberServiceTestSuite) TestUpdateMemberRole() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()
	req := &service.UpdateMemberRoleRequest{Role: string(models.MemberRoleProjectManager)}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			UserID:         uuid.New(),
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		UpdateRole(memberID, models.MemberRoleProjectManager).
		Return(nil).
		Times(1)

	// Exactly one audit record for the role change
	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.UpdateRole(callerID, orgID, memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.MemberRoleProjectManager), response.Role)
}

// TestUpdateMemberRoleNoop tests that setting the same role is a no-op
func (suite *MemberServiceTestSuite) TestUpdateMemberRoleNoop() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()
	req := &service.UpdateMemberRoleRequest{Role: string(models.MemberRoleDeveloper)}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	// No UpdateRole call and no activity record expected
	response, err := suite.memberService.UpdateRole(callerID, orgID, memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.MemberRoleDeveloper), response.Role)
}

// TestUpdateMemberRoleWrongOrg tests that a member of another organization
// cannot be reached through this organization's endpoint
func (suite *MemberServiceTestSuite) TestUpdateMemberRoleWrongOrg() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()
	req := &service.UpdateMemberRoleRequest{Role: string(models.MemberRoleDeveloper)}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: uuid.New(), // different organization
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	response, err := suite.memberService.UpdateRole(callerID, orgID, memberID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

// TestDemoteLastManager tests that the last manager cannot be demoted
func (suite *MemberServiceTestSuite) TestDemoteLastManager() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()
	req := &service.UpdateMemberRoleRequest{Role: string(models.MemberRoleDeveloper)}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			UserID:         callerID,
			Role:           models.MemberRoleOrganizationManager,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CountByRole(orgID, models.MemberRoleOrganizationManager).
		Return(int64(1), nil).
		Times(1)

	response, err := suite.memberService.UpdateRole(callerID, orgID, memberID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLastManager)
}

// TestDemoteManagerWithAnotherRemaining tests demoting a manager when another remains
func (suite *MemberServiceTestSuite) TestDemoteManagerWithAnotherRemaining() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()
	req := &service.UpdateMemberRoleRequest{Role: string(models.MemberRoleQAEngineer)}

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			Role:           models.MemberRoleOrganizationManager,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CountByRole(orgID, models.MemberRoleOrganizationManager).
		Return(int64(2), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		UpdateRole(memberID, models.MemberRoleQAEngineer).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.memberService.UpdateRole(callerID, orgID, memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.MemberRoleQAEngineer), response.Role)
}

// TestRemoveLastManager tests that the last manager cannot be removed
func (suite *MemberServiceTestSuite) TestRemoveLastManager() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			UserID:         callerID,
			Role:           models.MemberRoleOrganizationManager,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CountByRole(orgID, models.MemberRoleOrganizationManager).
		Return(int64(1), nil).
		Times(1)

	err := suite.memberService.Remove(callerID, orgID, memberID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLastManager)
}

// TestRemoveMember tests removing a non-manager member
func (suite *MemberServiceTestSuite) TestRemoveMember() {
	orgID := uuid.New()
	callerID := uuid.New()
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(suite.managerMembership(orgID, callerID), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(&models.OrganizationMember{
			BaseModel:      models.BaseModel{ID: memberID},
			OrganizationID: orgID,
			UserID:         uuid.New(),
			Role:           models.MemberRoleDeveloper,
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		Delete(memberID).
		Return(nil).
		Times(1)

	suite.mockActivityRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.memberService.Remove(callerID, orgID, memberID)

	assert.NoError(suite.T(), err)
}

// TestListMembersNotAMember tests that a non-member cannot list members
func (suite *MemberServiceTestSuite) TestListMembersNotAMember() {
	orgID := uuid.New()
	callerID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, callerID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, total, err := suite.memberService.List(callerID, orgID, 50, 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.Zero(suite.T(), total)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
