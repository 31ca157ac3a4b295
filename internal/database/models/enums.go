package models

// UserStatus represents the lifecycle status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

// MemberRole represents the role of a member within an organization
type MemberRole string

const (
	MemberRoleOrganizationManager MemberRole = "ORGANIZATION_MANAGER"
	MemberRoleProjectManager      MemberRole = "PROJECT_MANAGER"
	MemberRoleProductOwner        MemberRole = "PRODUCT_OWNER"
	MemberRoleQAEngineer          MemberRole = "QA_ENGINEER"
	MemberRoleDeveloper           MemberRole = "DEVELOPER"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOrganizationManager, MemberRoleProjectManager, MemberRoleProductOwner,
		MemberRoleQAEngineer, MemberRoleDeveloper:
		return true
	}
	return false
}

// RunStatus represents the outcome of a test run
type RunStatus string

const (
	RunStatusNotRun     RunStatus = "NOT_RUN"
	RunStatusInProgress RunStatus = "IN_PROGRESS"
	RunStatusPass       RunStatus = "PASS"
	RunStatusFail       RunStatus = "FAIL"
	RunStatusBlocked    RunStatus = "BLOCKED"
	RunStatusSkipped    RunStatus = "SKIPPED"
)

// IsValid checks if the RunStatus is valid
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusNotRun, RunStatusInProgress, RunStatusPass, RunStatusFail,
		RunStatusBlocked, RunStatusSkipped:
		return true
	}
	return false
}

// IsRecordable checks if the RunStatus may be written on a test run.
// NOT_RUN is reserved for test cases that have no runs.
func (s RunStatus) IsRecordable() bool {
	return s.IsValid() && s != RunStatusNotRun
}

// CasePriority represents the priority of a test case
type CasePriority string

const (
	CasePriorityLow      CasePriority = "LOW"
	CasePriorityMedium   CasePriority = "MEDIUM"
	CasePriorityHigh     CasePriority = "HIGH"
	CasePriorityCritical CasePriority = "CRITICAL"
)

// IsValid checks if the CasePriority is valid
func (p CasePriority) IsValid() bool {
	switch p {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh, CasePriorityCritical:
		return true
	}
	return false
}

// PlanStatus represents the lifecycle status of a test plan
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "DRAFT"
	PlanStatusActive    PlanStatus = "ACTIVE"
	PlanStatusCompleted PlanStatus = "COMPLETED"
)

// IsValid checks if the PlanStatus is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusDraft, PlanStatusActive, PlanStatusCompleted:
		return true
	}
	return false
}

// ObjectType identifies the kind of entity an RBAC grant, comment or activity
// record refers to
type ObjectType string

const (
	ObjectTypeOrganization       ObjectType = "ORGANIZATION"
	ObjectTypeOrganizationMember ObjectType = "ORGANIZATION_MEMBER"
	ObjectTypeProject            ObjectType = "PROJECT"
	ObjectTypeTestCase           ObjectType = "TEST_CASE"
	ObjectTypeTestSuite          ObjectType = "TEST_SUITE"
	ObjectTypeTestPlan           ObjectType = "TEST_PLAN"
	ObjectTypeTestRun            ObjectType = "TEST_RUN"
	ObjectTypeComment            ObjectType = "COMMENT"
)

// IsValid checks if the ObjectType is valid
func (t ObjectType) IsValid() bool {
	switch t {
	case ObjectTypeOrganization, ObjectTypeOrganizationMember, ObjectTypeProject,
		ObjectTypeTestCase, ObjectTypeTestSuite, ObjectTypeTestPlan,
		ObjectTypeTestRun, ObjectTypeComment:
		return true
	}
	return false
}

// RbacAction identifies the action an RBAC grant permits
type RbacAction string

const (
	RbacActionCreate RbacAction = "CREATE"
	RbacActionRead   RbacAction = "READ"
	RbacActionUpdate RbacAction = "UPDATE"
	RbacActionDelete RbacAction = "DELETE"
)

// IsValid checks if the RbacAction is valid
func (a RbacAction) IsValid() bool {
	switch a {
	case RbacActionCreate, RbacActionRead, RbacActionUpdate, RbacActionDelete:
		return true
	}
	return false
}

// ActivityAction identifies the kind of mutation an activity record describes
type ActivityAction string

const (
	ActivityActionCreated ActivityAction = "CREATED"
	ActivityActionUpdated ActivityAction = "UPDATED"
	ActivityActionDeleted ActivityAction = "DELETED"
)

// IsValid checks if the ActivityAction is valid
func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionCreated, ActivityActionUpdated, ActivityActionDeleted:
		return true
	}
	return false
}
