package repository

import (
	"time"

	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	SetStatus(id uuid.UUID, status models.UserStatus) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Organization, error)
}

// OrganizationMemberRepositoryInterface defines the interface for membership repository operations
type OrganizationMemberRepositoryInterface interface {
	Create(member *models.OrganizationMember) error
	GetByID(id uuid.UUID) (*models.OrganizationMember, error)
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMember, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error)
	GetOrganizationsForUser(userID uuid.UUID) ([]models.OrganizationMember, error)
	CountByRole(orgID uuid.UUID, role models.MemberRole) (int64, error)
	UpdateRole(id uuid.UUID, role models.MemberRole) error
	Delete(id uuid.UUID) error
}

// RbacPermissionRepositoryInterface defines the interface for RBAC grant repository operations
type RbacPermissionRepositoryInterface interface {
	Create(perm *models.RbacPermission) error
	CreateBatch(perms []models.RbacPermission) error
	HasGrant(orgID uuid.UUID, role models.MemberRole, objectType models.ObjectType, action models.RbacAction) (bool, error)
	GetByOrganization(orgID uuid.UUID) ([]models.RbacPermission, error)
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	Create(testCase *models.TestCase) error
	GetByID(id uuid.UUID) (*models.TestCase, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestCase, int64, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	Update(testCase *models.TestCase) error
	UpdateLastRun(id uuid.UUID, status models.RunStatus, at *time.Time) error
	Delete(id uuid.UUID) error
}

// TestRunRepositoryInterface defines the interface for test run repository operations
type TestRunRepositoryInterface interface {
	Create(run *models.TestRun) error
	GetByID(id uuid.UUID) (*models.TestRun, error)
	GetByTestCaseID(testCaseID uuid.UUID, limit, offset int) ([]models.TestRun, int64, error)
	GetLatestByTestCase(testCaseID uuid.UUID) (*models.TestRun, error)
	Update(run *models.TestRun) error
	Delete(id uuid.UUID) error
}

// TestSuiteRepositoryInterface defines the interface for test suite repository operations
type TestSuiteRepositoryInterface interface {
	Create(suite *models.TestSuite) error
	GetByID(id uuid.UUID) (*models.TestSuite, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestSuite, int64, error)
	Update(suite *models.TestSuite) error
	Delete(id uuid.UUID) error
	AddCase(link *models.TestSuiteCase) error
	GetCaseLink(suiteID, caseID uuid.UUID) (*models.TestSuiteCase, error)
	GetCases(suiteID uuid.UUID) ([]models.TestSuiteCase, error)
	RemoveCase(suiteID, caseID uuid.UUID) error
}

// TestPlanRepositoryInterface defines the interface for test plan repository operations
type TestPlanRepositoryInterface interface {
	Create(plan *models.TestPlan) error
	GetByID(id uuid.UUID) (*models.TestPlan, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestPlan, int64, error)
	Update(plan *models.TestPlan) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByObject(objectType models.ObjectType, objectID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	Delete(id uuid.UUID) error
}

// ActivityLogRepositoryInterface defines the interface for activity log repository operations
type ActivityLogRepositoryInterface interface {
	Create(entry *models.ActivityLog) error
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.ActivityLog, int64, error)
	CountByObject(objectType models.ObjectType, objectID uuid.UUID) (int64, error)
}
