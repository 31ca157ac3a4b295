package testutils

import (
	"fmt"
	"time"

	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per user to avoid uniqueIndex collisions
		Email:        fmt.Sprintf("user-%s@test.local", id.String()[:8]),
		PasswordHash: "$2a$10$test.hash.placeholder.value.not.a.real.one",
		DisplayName:  "Test User",
		Status:       models.UserStatusActive,
		IsAdmin:      false,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithStatus sets a custom status for the user
func (f *UserFactory) WithStatus(status models.UserStatus) *models.User {
	user := f.Create()
	user.Status = status
	return user
}

// Admin creates a platform admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Organization " + id.String()[:8],
		Description:  "A test organization for testing purposes",
		MaxProjects:  20,
		MaxTestCases: 5000,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithLimits sets custom resource limits for the organization
func (f *OrganizationFactory) WithLimits(maxProjects, maxTestCases int) *models.Organization {
	org := f.Create()
	org.MaxProjects = maxProjects
	org.MaxTestCases = maxTestCases
	return org
}

// MemberFactory provides methods to create test OrganizationMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test OrganizationMember with default values
func (f *MemberFactory) Create() *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Role:           models.MemberRoleDeveloper,
	}
}

// WithOrgAndUser sets the organization and user for the membership
func (f *MemberFactory) WithOrgAndUser(orgID, userID uuid.UUID) *models.OrganizationMember {
	member := f.Create()
	member.OrganizationID = orgID
	member.UserID = userID
	return member
}

// WithRole sets a custom role for the membership
func (f *MemberFactory) WithRole(role models.MemberRole) *models.OrganizationMember {
	member := f.Create()
	member.Role = role
	return member
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Project",
		Description:    "A test project",
	}
}

// WithOrganization sets the organization ID for the project
func (f *ProjectFactory) WithOrganization(orgID uuid.UUID) *models.Project {
	project := f.Create()
	project.OrganizationID = orgID
	return project
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// NewTestCaseFactory creates a new TestCaseFactory
func NewTestCaseFactory() *TestCaseFactory {
	return &TestCaseFactory{}
}

// Create creates a test TestCase with default values
func (f *TestCaseFactory) Create() *models.TestCase {
	return &models.TestCase{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:      uuid.New(),
		Title:          "Test case title",
		Description:    "Test case description",
		Steps:          "1. Open the page\n2. Click the button",
		ExpectedResult: "The button turns green",
		Priority:       models.CasePriorityMedium,
		LastRunStatus:  models.RunStatusNotRun,
	}
}

// WithProject sets the project ID for the test case
func (f *TestCaseFactory) WithProject(projectID uuid.UUID) *models.TestCase {
	testCase := f.Create()
	testCase.ProjectID = projectID
	return testCase
}

// WithPriority sets a custom priority for the test case
func (f *TestCaseFactory) WithPriority(priority models.CasePriority) *models.TestCase {
	testCase := f.Create()
	testCase.Priority = priority
	return testCase
}

// TestRunFactory provides methods to create test TestRun data
type TestRunFactory struct{}

// NewTestRunFactory creates a new TestRunFactory
func NewTestRunFactory() *TestRunFactory {
	return &TestRunFactory{}
}

// Create creates a test TestRun with default values
func (f *TestRunFactory) Create() *models.TestRun {
	return &models.TestRun{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TestCaseID:      uuid.New(),
		Status:          models.RunStatusPass,
		DurationSeconds: 12,
		Environment:     "ci",
		ExecutedAt:      time.Now().UTC(),
		ExecutedBy:      uuid.New(),
	}
}

// WithCase sets the test case ID for the run
func (f *TestRunFactory) WithCase(caseID uuid.UUID) *models.TestRun {
	run := f.Create()
	run.TestCaseID = caseID
	return run
}

// WithStatus sets a custom status for the run
func (f *TestRunFactory) WithStatus(status models.RunStatus) *models.TestRun {
	run := f.Create()
	run.Status = status
	return run
}

// WithExecutedAt sets the execution timestamp for the run
func (f *TestRunFactory) WithExecutedAt(at time.Time) *models.TestRun {
	run := f.Create()
	run.ExecutedAt = at
	return run
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Member       *MemberFactory
	Project      *ProjectFactory
	TestCase     *TestCaseFactory
	TestRun      *TestRunFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Member:       NewMemberFactory(),
		Project:      NewProjectFactory(),
		TestCase:     NewTestCaseFactory(),
		TestRun:      NewTestRunFactory(),
	}
}

// CreateProjectHierarchy builds a linked user, organization, membership, and
// project so repository tests can hang cases and runs off real foreign keys
func (fs *FactorySet) CreateProjectHierarchy() (*models.User, *models.Organization, *models.OrganizationMember, *models.Project) {
	user := fs.User.Create()
	org := fs.Organization.Create()
	member := fs.Member.WithOrgAndUser(org.ID, user.ID)
	project := fs.Project.WithOrganization(org.ID)
	return user, org, member, project
}
