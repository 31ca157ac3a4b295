package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRunHandler handles HTTP requests for test run operations
type TestRunHandler struct {
	runService *service.TestRunService
}

// NewTestRunHandler creates a new test run handler
func NewTestRunHandler(runService *service.TestRunService) *TestRunHandler {
	return &TestRunHandler{
		runService: runService,
	}
}

// CreateTestRun handles POST /test-cases/:id/runs
// @Summary Record a test run
// @Description Record an execution of a test case; the case's last-run summary is recomputed
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param run body service.CreateTestRunRequest true "Run data"
// @Success 201 {object} service.TestRunResponse "Successfully recorded run"
// @Failure 400 {object} map[string]interface{} "Invalid request or run status"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id}/runs [post]
func (h *TestRunHandler) CreateTestRun(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	var req service.CreateTestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.runService.Create(user.ID, caseID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, run)
}

// ListTestRuns handles GET /test-cases/:id/runs
// @Summary List test runs
// @Description List the runs of a test case, newest first; members only
// @Tags test-runs
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated run list"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id}/runs [get]
func (h *TestRunHandler) ListTestRuns(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	limit, offset := pagination(c)
	runs, total, err := h.runService.List(user.ID, caseID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: runs, Total: total, Limit: limit, Offset: offset})
}

// UpdateTestRun handles PUT /test-runs/:id
// @Summary Update test run
// @Description Update a run; the owning case's last-run summary is recomputed
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Param run body service.UpdateTestRunRequest true "Updated run data"
// @Success 200 {object} service.TestRunResponse "Successfully updated run"
// @Failure 400 {object} map[string]interface{} "Invalid request or run status"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test run not found"
// @Security BearerAuth
// @Router /test-runs/{id} [put]
func (h *TestRunHandler) UpdateTestRun(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	var req service.UpdateTestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.runService.Update(user.ID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// DeleteTestRun handles DELETE /test-runs/:id
// @Summary Delete test run
// @Description Delete a run; the owning case's last-run summary is recomputed from the remaining runs
// @Tags test-runs
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Success 204 "Successfully deleted run"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test run not found"
// @Security BearerAuth
// @Router /test-runs/{id} [delete]
func (h *TestRunHandler) DeleteTestRun(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	if err := h.runService.Delete(user.ID, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
