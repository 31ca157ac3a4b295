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

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	perms     *PermissionService
	activity  *ActivityService
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	perms *PermissionService,
	activity *ActivityService,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		repo:      repo,
		orgs:      orgs,
		perms:     perms,
		activity:  activity,
		validator: validator,
	}
}

// CreateProjectRequest represents the data needed to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents the data needed to update a project
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ProjectResponse represents the response data for a project
type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a project in an organization. The caller needs the CREATE
// grant on PROJECT, and the organization's project limit must not be reached.
func (s *ProjectService) Create(callerID, orgID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.perms.RequirePermission(callerID, orgID, models.ObjectTypeProject, models.RbacActionCreate); err != nil {
		return nil, err
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	count, err := s.repo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if count >= int64(org.MaxProjects) {
		return nil, apperrors.ErrProjectLimitReached
	}

	project := &models.Project{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.activity.Record(orgID, callerID, models.ActivityActionCreated, models.ObjectTypeProject, project.ID,
		map[string]interface{}{"name": project.Name})

	return s.convertToResponse(project), nil
}

// GetByID retrieves a project; the caller must be a member of its organization
func (s *ProjectService) GetByID(callerID, projectID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.perms.RequireMember(project.OrganizationID, callerID); err != nil {
		return nil, err
	}

	return s.convertToResponse(project), nil
}

// List retrieves the projects of an organization; any member may list
func (s *ProjectService) List(callerID, orgID uuid.UUID, limit, offset int) ([]ProjectResponse, int64, error) {
	if _, err := s.perms.RequireMember(orgID, callerID); err != nil {
		return nil, 0, err
	}

	projects, total, err := s.repo.GetByOrganizationID(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.convertToResponse(&projects[i])
	}
	return responses, total, nil
}

// Update updates a project; requires the UPDATE grant on PROJECT
func (s *ProjectService) Update(callerID, projectID uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.perms.RequirePermission(callerID, project.OrganizationID, models.ObjectTypeProject, models.RbacActionUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.Name != nil && *req.Name != project.Name {
		project.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
		changes["description"] = *req.Description
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.activity.Record(project.OrganizationID, callerID, models.ActivityActionUpdated, models.ObjectTypeProject, project.ID, changes)

	return s.convertToResponse(project), nil
}

// Delete deletes a project and everything under it; requires the DELETE
// grant on PROJECT
func (s *ProjectService) Delete(callerID, projectID uuid.UUID) error {
	project, err := s.getProject(projectID)
	if err != nil {
		return err
	}

	if err := s.perms.RequirePermission(callerID, project.OrganizationID, models.ObjectTypeProject, models.RbacActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.activity.Record(project.OrganizationID, callerID, models.ActivityActionDeleted, models.ObjectTypeProject, project.ID,
		map[string]interface{}{"name": project.Name})

	return nil
}

func (s *ProjectService) getProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) convertToResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		Description:    project.Description,
		CreatedAt:      project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
