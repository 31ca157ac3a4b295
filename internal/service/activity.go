package service

import (
	"encoding/json"
	"fmt"

	"testtrack-backend/internal/database/models"
	"testtrack-backend/internal/logger"
	"testtrack-backend/internal/repository"

	"github.com/google/uuid"
)

// ActivityService appends audit records after mutations. Recording is
// best-effort: a failed append is logged and swallowed so the business
// operation it describes is never undone by an audit failure. Callers must
// invoke Record only after the mutation has committed.
type ActivityService struct {
	repo  repository.ActivityLogRepositoryInterface
	perms *PermissionService
	log   *logger.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityLogRepositoryInterface, perms *PermissionService) *ActivityService {
	return &ActivityService{
		repo:  repo,
		perms: perms,
		log:   logger.New(),
	}
}

// Record appends one activity record. Errors never reach the caller.
func (s *ActivityService) Record(orgID, userID uuid.UUID, action models.ActivityAction, objectType models.ObjectType, objectID uuid.UUID, changes map[string]interface{}) {
	var snapshot json.RawMessage
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			s.log.WithField("object_type", objectType).
				Warnf("failed to marshal activity changes: %v", err)
		} else {
			snapshot = data
		}
	}

	entry := &models.ActivityLog{
		OrganizationID: orgID,
		UserID:         userID,
		Action:         action,
		ObjectType:     objectType,
		ObjectID:       objectID,
		Changes:        snapshot,
	}

	if err := s.repo.Create(entry); err != nil {
		s.log.WithFields(map[string]interface{}{
			"action":      action,
			"object_type": objectType,
			"object_id":   objectID,
		}).Errorf("failed to append activity log: %v", err)
	}
}

// ActivityResponse represents the response data for an activity record
type ActivityResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	UserEmail  string          `json:"user_email,omitempty"`
	Action     string          `json:"action"`
	ObjectType string          `json:"object_type"`
	ObjectID   uuid.UUID       `json:"object_id"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// ListByOrganization retrieves the activity feed of an organization. Reading
// the audit trail is restricted to organization managers.
func (s *ActivityService) ListByOrganization(orgID, callerID uuid.UUID, limit, offset int) ([]ActivityResponse, int64, error) {
	if _, err := s.perms.RequireManager(orgID, callerID); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.repo.GetByOrganizationID(orgID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get activity log: %w", err)
	}

	responses := make([]ActivityResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ActivityResponse{
			ID:         entry.ID,
			UserID:     entry.UserID,
			UserEmail:  entry.User.Email,
			Action:     string(entry.Action),
			ObjectType: string(entry.ObjectType),
			ObjectID:   entry.ObjectID,
			Changes:    entry.Changes,
			CreatedAt:  entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, total, nil
}
