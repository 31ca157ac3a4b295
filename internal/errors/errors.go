package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// RateLimitError represents a rejected request under the fixed-window throttle.
// RetryAfterSeconds tells the caller when the window resets.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %d seconds", e.RetryAfterSeconds)
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound    = &NotFoundError{Entity: "organization member"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrTestCaseNotFound      = &NotFoundError{Entity: "test case"}
	ErrTestRunNotFound       = &NotFoundError{Entity: "test run"}
	ErrTestSuiteNotFound     = &NotFoundError{Entity: "test suite"}
	ErrTestSuiteCaseNotFound = &NotFoundError{Entity: "test suite case link"}
	ErrTestPlanNotFound      = &NotFoundError{Entity: "test plan"}
	ErrCommentNotFound       = &NotFoundError{Entity: "comment"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrMembershipExists    = &AlreadyExistsError{Entity: "organization member", Context: "for this user"}
	ErrTestSuiteCaseExists = &AlreadyExistsError{Entity: "test suite case link", Context: "in this suite"}
)

// Authentication Errors
var (
	ErrUnauthenticated = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid or expired token"}
	ErrUserInactive    = &AuthenticationError{Message: "user account is not active"}
	ErrBadCredentials  = &AuthenticationError{Message: "invalid email or password"}
)

// Authorization Errors
var (
	ErrNotAMember       = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrManagerRequired  = &AuthorizationError{Message: "organization manager role required"}
	ErrPermissionDenied = &AuthorizationError{Message: "permission denied"}
	ErrAdminRequired    = &AuthorizationError{Message: "platform admin required"}
	ErrNotCommentAuthor = &AuthorizationError{Message: "only the comment author or an admin may delete a comment"}
)

// Business Logic Errors
var (
	ErrLastManager          = &ValidationError{Message: "cannot remove the last organization manager"}
	ErrProjectLimitReached  = &ValidationError{Message: "organization project limit reached"}
	ErrTestCaseLimitReached = &ValidationError{Message: "organization test case limit reached"}
	ErrInvalidRole          = &ValidationError{Field: "role", Message: "invalid member role"}
	ErrInvalidRunStatus     = &ValidationError{Field: "status", Message: "invalid run status"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsRateLimit checks if an error is a RateLimitError
func IsRateLimit(err error) bool {
	var rateErr *RateLimitError
	return errors.As(err, &rateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
