package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestPlanHandler handles HTTP requests for test plan operations
type TestPlanHandler struct {
	planService *service.TestPlanService
}

// NewTestPlanHandler creates a new test plan handler
func NewTestPlanHandler(planService *service.TestPlanService) *TestPlanHandler {
	return &TestPlanHandler{
		planService: planService,
	}
}

// CreateTestPlan handles POST /projects/:id/test-plans
// @Summary Create a new test plan
// @Description Create a test plan inside a project; new plans start in DRAFT
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param plan body service.CreateTestPlanRequest true "Plan data"
// @Success 201 {object} service.TestPlanResponse "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/test-plans [post]
func (h *TestPlanHandler) CreateTestPlan(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.CreateTestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.Create(user.ID, projectID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetTestPlan handles GET /test-plans/:id
// @Summary Get test plan by ID
// @Tags test-plans
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Success 200 {object} service.TestPlanResponse "Successfully retrieved plan"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Test plan not found"
// @Security BearerAuth
// @Router /test-plans/{id} [get]
func (h *TestPlanHandler) GetTestPlan(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	plan, err := h.planService.GetByID(user.ID, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListTestPlans handles GET /projects/:id/test-plans
// @Summary List project test plans
// @Tags test-plans
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated plan list"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /projects/{id}/test-plans [get]
func (h *TestPlanHandler) ListTestPlans(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	limit, offset := pagination(c)
	plans, total, err := h.planService.List(user.ID, projectID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: plans, Total: total, Limit: limit, Offset: offset})
}

// UpdateTestPlan handles PUT /test-plans/:id
// @Summary Update test plan
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Param plan body service.UpdateTestPlanRequest true "Updated plan data"
// @Success 200 {object} service.TestPlanResponse "Successfully updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request or plan status"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test plan not found"
// @Security BearerAuth
// @Router /test-plans/{id} [put]
func (h *TestPlanHandler) UpdateTestPlan(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	var req service.UpdateTestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.Update(user.ID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteTestPlan handles DELETE /test-plans/:id
// @Summary Delete test plan
// @Tags test-plans
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Success 204 "Successfully deleted plan"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test plan not found"
// @Security BearerAuth
// @Router /test-plans/{id} [delete]
func (h *TestPlanHandler) DeleteTestPlan(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	if err := h.planService.Delete(user.ID, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
