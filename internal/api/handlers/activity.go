package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for the activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivity handles GET /organizations/:id/activity
// @Summary List organization activity
// @Description List the audit trail of an organization, newest first; managers only
// @Tags activity
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated activity feed"
// @Failure 403 {object} map[string]interface{} "Manager role required"
// @Security BearerAuth
// @Router /organizations/{id}/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	limit, offset := pagination(c)
	entries, total, err := h.activityService.ListByOrganization(orgID, user.ID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: entries, Total: total, Limit: limit, Offset: offset})
}
