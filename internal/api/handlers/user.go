package handlers

import (
	"net/http"

	"testtrack-backend/internal/database/models"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for platform user administration.
// All routes are behind the admin gate.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// SetUserStatusRequest is the body for status changes
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListUsers handles GET /admin/users
// @Summary List users
// @Description List all platform accounts; admins only
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated user list"
// @Failure 403 {object} map[string]interface{} "Admin required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)
	users, total, err := h.userService.List(limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: users, Total: total, Limit: limit, Offset: offset})
}

// SetUserStatus handles PUT /admin/users/:id/status
// @Summary Set user status
// @Description Activate, deactivate or suspend an account; admins only. Non-active accounts cannot authenticate.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param status body SetUserStatusRequest true "New status"
// @Success 200 {object} service.UserAdminResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 403 {object} map[string]interface{} "Admin required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/status [put]
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.SetStatus(id, models.UserStatus(req.Status))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
