package service

import (
	"errors"
	"fmt"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for comments. A comment attaches to
// a project-scoped object, and visibility follows the owning organization's
// membership.
type CommentService struct {
	repo      repository.CommentRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	cases     repository.TestCaseRepositoryInterface
	runs      repository.TestRunRepositoryInterface
	suites    repository.TestSuiteRepositoryInterface
	plans     repository.TestPlanRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo repository.CommentRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	cases repository.TestCaseRepositoryInterface,
	runs repository.TestRunRepositoryInterface,
	suites repository.TestSuiteRepositoryInterface,
	plans repository.TestPlanRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{
		repo:      repo,
		projects:  projects,
		cases:     cases,
		runs:      runs,
		suites:    suites,
		plans:     plans,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateCommentRequest represents the data needed to create a comment
type CreateCommentRequest struct {
	ObjectType string `json:"object_type" validate:"required"`
	ObjectID   string `json:"object_id" validate:"required,uuid"`
	Body       string `json:"body" validate:"required,min=1"`
}

// CommentResponse represents the response data for a comment
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	ObjectType string    `json:"object_type"`
	ObjectID   uuid.UUID `json:"object_id"`
	Body       string    `json:"body"`
	CreatedAt  string    `json:"created_at"`
}

// Create attaches a comment to an object. The caller must have the CREATE
// grant on COMMENT in the object's organization.
func (s *CommentService) Create(caller *models.User, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	objectType := models.ObjectType(req.ObjectType)
	objectID, err := uuid.Parse(req.ObjectID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid object_id")
	}

	orgID, err := s.resolveOrg(objectType, objectID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(caller.ID, orgID, models.ObjectTypeComment, models.RbacActionCreate); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID:   caller.ID,
		ObjectType: objectType,
		ObjectID:   objectID,
		Body:       req.Body,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.activity.Record(orgID, caller.ID, models.ActivityActionCreated, models.ObjectTypeComment, comment.ID,
		map[string]interface{}{"object_type": string(objectType), "object_id": objectID.String()})

	comment.Author = *caller
	return s.convertToResponse(comment), nil
}

// ListByObject retrieves the comments on an object in creation order; any
// member of the owning organization may list
func (s *CommentService) ListByObject(callerID uuid.UUID, objectType models.ObjectType, objectID uuid.UUID, limit, offset int) ([]CommentResponse, int64, error) {
	orgID, err := s.resolveOrg(objectType, objectID)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, 0, err
	}

	comments, total, err := s.repo.GetByObject(objectType, objectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *s.convertToResponse(&comments[i])
	}
	return responses, total, nil
}

// Delete deletes a comment. Only the author or a platform admin may delete.
func (s *CommentService) Delete(caller *models.User, commentID uuid.UUID) error {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.AuthorID != caller.ID && !caller.IsAdmin {
		return apperrors.ErrNotCommentAuthor
	}

	orgID, err := s.resolveOrg(comment.ObjectType, comment.ObjectID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.activity.Record(orgID, caller.ID, models.ActivityActionDeleted, models.ObjectTypeComment, comment.ID,
		map[string]interface{}{"object_type": string(comment.ObjectType), "object_id": comment.ObjectID.String()})

	return nil
}

// resolveOrg maps a commentable object to its owning organization
func (s *CommentService) resolveOrg(objectType models.ObjectType, objectID uuid.UUID) (uuid.UUID, error) {
	projectID := uuid.Nil

	switch objectType {
	case models.ObjectTypeProject:
		project, err := s.projects.GetByID(objectID)
		if err != nil {
			return uuid.Nil, apperrors.ErrProjectNotFound
		}
		return project.OrganizationID, nil
	case models.ObjectTypeTestCase:
		testCase, err := s.cases.GetByID(objectID)
		if err != nil {
			return uuid.Nil, apperrors.ErrTestCaseNotFound
		}
		projectID = testCase.ProjectID
	case models.ObjectTypeTestRun:
		run, err := s.runs.GetByID(objectID)
		if err != nil {
			return uuid.Nil, apperrors.ErrTestRunNotFound
		}
		testCase, err := s.cases.GetByID(run.TestCaseID)
		if err != nil {
			return uuid.Nil, apperrors.ErrTestCaseNotFound
		}
		projectID = testCase.ProjectID
	case models.ObjectTypeTestSuite:
		suite, err := s.suites.GetByID(objectID)
		if err != nil {
			return uuid.Nil, apperrors.ErrTestSuiteNotFound
		}
		projectID = suite.ProjectID
	case models.ObjectTypeTestPlan:
		plan, err := s.plans.GetByID(objectID)
		if err != nil {
			return uuid.Nil, apperrors.ErrTestPlanNotFound
		}
		projectID = plan.ProjectID
	default:
		return uuid.Nil, apperrors.NewValidationError("object type does not support comments")
	}

	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return uuid.Nil, apperrors.ErrProjectNotFound
	}
	return project.OrganizationID, nil
}

func (s *CommentService) convertToResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:         comment.ID,
		AuthorID:   comment.AuthorID,
		ObjectType: string(comment.ObjectType),
		ObjectID:   comment.ObjectID,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if comment.Author.ID != uuid.Nil {
		resp.AuthorName = comment.Author.DisplayName
	}
	return resp
}
