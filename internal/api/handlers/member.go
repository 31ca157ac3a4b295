package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for organization membership operations
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember handles POST /organizations/:id/members
// @Summary Add organization member
// @Description Add a user to an organization with a role; managers only
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Manager role required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "User already a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
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

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Add(user.ID, orgID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /organizations/:id/members
// @Summary List organization members
// @Description List the members of an organization; members only
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated member list"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
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
	members, total, err := h.memberService.List(user.ID, orgID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: members, Total: total, Limit: limit, Offset: offset})
}

// UpdateMemberRole handles PUT /organizations/:id/members/:memberId
// @Summary Update member role
// @Description Change a member's role; managers only. The last manager cannot be demoted.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Param member body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request or last manager"
// @Failure 403 {object} map[string]interface{} "Manager role required"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /organizations/{id}/members/{memberId} [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
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

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateRole(user.ID, orgID, memberID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /organizations/:id/members/:memberId
// @Summary Remove organization member
// @Description Remove a member from an organization; managers only. The last manager cannot be removed.
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} map[string]interface{} "Last manager"
// @Failure 403 {object} map[string]interface{} "Manager role required"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /organizations/{id}/members/{memberId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
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

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.memberService.Remove(user.ID, orgID, memberID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
