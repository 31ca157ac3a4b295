package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestCaseHandler handles HTTP requests for test case operations
type TestCaseHandler struct {
	caseService *service.TestCaseService
}

// NewTestCaseHandler creates a new test case handler
func NewTestCaseHandler(caseService *service.TestCaseService) *TestCaseHandler {
	return &TestCaseHandler{
		caseService: caseService,
	}
}

// CreateTestCase handles POST /projects/:id/test-cases
// @Summary Create a new test case
// @Description Create a test case inside a project, subject to the organization's case limit
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param testCase body service.CreateTestCaseRequest true "Test case data"
// @Success 201 {object} service.TestCaseResponse "Successfully created test case"
// @Failure 400 {object} map[string]interface{} "Invalid request or case limit reached"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/test-cases [post]
func (h *TestCaseHandler) CreateTestCase(c *gin.Context) {
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

	var req service.CreateTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testCase, err := h.caseService.Create(user.ID, projectID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testCase)
}

// GetTestCase handles GET /test-cases/:id
// @Summary Get test case by ID
// @Description Get a test case including its cached last-run summary
// @Tags test-cases
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Success 200 {object} service.TestCaseResponse "Successfully retrieved test case"
// @Failure 400 {object} map[string]interface{} "Invalid test case ID"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id} [get]
func (h *TestCaseHandler) GetTestCase(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	testCase, err := h.caseService.GetByID(user.ID, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// ListTestCases handles GET /projects/:id/test-cases
// @Summary List project test cases
// @Description List the test cases of a project; members only
// @Tags test-cases
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated test case list"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /projects/{id}/test-cases [get]
func (h *TestCaseHandler) ListTestCases(c *gin.Context) {
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
	cases, total, err := h.caseService.List(user.ID, projectID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: cases, Total: total, Limit: limit, Offset: offset})
}

// UpdateTestCase handles PUT /test-cases/:id
// @Summary Update test case
// @Description Update a test case; requires the UPDATE grant on TEST_CASE
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param testCase body service.UpdateTestCaseRequest true "Updated test case data"
// @Success 200 {object} service.TestCaseResponse "Successfully updated test case"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id} [put]
func (h *TestCaseHandler) UpdateTestCase(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	var req service.UpdateTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testCase, err := h.caseService.Update(user.ID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// DeleteTestCase handles DELETE /test-cases/:id
// @Summary Delete test case
// @Description Delete a test case and its runs; requires the DELETE grant on TEST_CASE
// @Tags test-cases
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Success 204 "Successfully deleted test case"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id} [delete]
func (h *TestCaseHandler) DeleteTestCase(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	if err := h.caseService.Delete(user.ID, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
