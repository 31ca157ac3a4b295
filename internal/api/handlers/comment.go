package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/database/models"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for comment operations
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment handles POST /comments
// @Summary Create a comment
// @Description Attach a comment to a project-scoped object
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentResponse "Successfully created comment"
// @Failure 400 {object} map[string]interface{} "Invalid request or object type"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Target object not found"
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /comments
// @Summary List comments on an object
// @Description List the comments on an object in creation order
// @Tags comments
// @Produce json
// @Param object_type query string true "Object type"
// @Param object_id query string true "Object ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated comment list"
// @Failure 400 {object} map[string]interface{} "Invalid query params"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	objectType := models.ObjectType(c.Query("object_type"))
	if !objectType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object_type"})
		return
	}

	objectID, err := uuid.Parse(c.Query("object_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object_id"})
		return
	}

	limit, offset := pagination(c)
	comments, total, err := h.commentService.ListByObject(user.ID, objectType, objectID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: comments, Total: total, Limit: limit, Offset: offset})
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Description Delete a comment; only its author or a platform admin may delete
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 204 "Successfully deleted comment"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(user, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
