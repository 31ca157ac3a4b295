package service

import (
	"errors"
	"fmt"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles platform-level user administration
type UserService struct {
	repo repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// UserAdminResponse represents the admin view of a user account
type UserAdminResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   string    `json:"created_at"`
}

// List retrieves all user accounts with pagination
func (s *UserService) List(limit, offset int) ([]UserAdminResponse, int64, error) {
	users, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserAdminResponse, len(users))
	for i := range users {
		responses[i] = *s.convertToResponse(&users[i])
	}
	return responses, total, nil
}

// SetStatus changes a user's account status. Suspending or deactivating a
// user makes every outstanding token for that account unusable, since the
// session resolver rejects non-active users on each request.
func (s *UserService) SetStatus(userID uuid.UUID, status models.UserStatus) (*UserAdminResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid user status")
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.SetStatus(userID, status); err != nil {
		return nil, fmt.Errorf("failed to set user status: %w", err)
	}

	user.Status = status
	return s.convertToResponse(user), nil
}

func (s *UserService) convertToResponse(user *models.User) *UserAdminResponse {
	return &UserAdminResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Status:      string(user.Status),
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
