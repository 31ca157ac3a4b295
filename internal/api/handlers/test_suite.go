package handlers

import (
	"net/http"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestSuiteHandler handles HTTP requests for test suite operations
type TestSuiteHandler struct {
	suiteService *service.TestSuiteService
}

// NewTestSuiteHandler creates a new test suite handler
func NewTestSuiteHandler(suiteService *service.TestSuiteService) *TestSuiteHandler {
	return &TestSuiteHandler{
		suiteService: suiteService,
	}
}

// CreateTestSuite handles POST /projects/:id/test-suites
// @Summary Create a new test suite
// @Description Create a test suite inside a project
// @Tags test-suites
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param suite body service.CreateTestSuiteRequest true "Suite data"
// @Success 201 {object} service.TestSuiteResponse "Successfully created suite"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/test-suites [post]
func (h *TestSuiteHandler) CreateTestSuite(c *gin.Context) {
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

	var req service.CreateTestSuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suite, err := h.suiteService.Create(user.ID, projectID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, suite)
}

// GetTestSuite handles GET /test-suites/:id
// @Summary Get test suite by ID
// @Tags test-suites
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Success 200 {object} service.TestSuiteResponse "Successfully retrieved suite"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Test suite not found"
// @Security BearerAuth
// @Router /test-suites/{id} [get]
func (h *TestSuiteHandler) GetTestSuite(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	suite, err := h.suiteService.GetByID(user.ID, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, suite)
}

// ListTestSuites handles GET /projects/:id/test-suites
// @Summary List project test suites
// @Tags test-suites
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated suite list"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /projects/{id}/test-suites [get]
func (h *TestSuiteHandler) ListTestSuites(c *gin.Context) {
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
	suites, total, err := h.suiteService.List(user.ID, projectID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Items: suites, Total: total, Limit: limit, Offset: offset})
}

// UpdateTestSuite handles PUT /test-suites/:id
// @Summary Update test suite
// @Tags test-suites
// @Accept json
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Param suite body service.UpdateTestSuiteRequest true "Updated suite data"
// @Success 200 {object} service.TestSuiteResponse "Successfully updated suite"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test suite not found"
// @Security BearerAuth
// @Router /test-suites/{id} [put]
func (h *TestSuiteHandler) UpdateTestSuite(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	var req service.UpdateTestSuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suite, err := h.suiteService.Update(user.ID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, suite)
}

// DeleteTestSuite handles DELETE /test-suites/:id
// @Summary Delete test suite
// @Description Delete a suite and its case links; the linked test cases are untouched
// @Tags test-suites
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Success 204 "Successfully deleted suite"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Test suite not found"
// @Security BearerAuth
// @Router /test-suites/{id} [delete]
func (h *TestSuiteHandler) DeleteTestSuite(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	if err := h.suiteService.Delete(user.ID, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSuiteCase handles POST /test-suites/:id/cases/:caseId
// @Summary Add test case to suite
// @Description Link a test case into a suite; both must belong to the same project
// @Tags test-suites
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Param caseId path string true "Test case ID (UUID)"
// @Success 204 "Successfully linked case"
// @Failure 400 {object} map[string]interface{} "Case belongs to a different project"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Suite or case not found"
// @Failure 409 {object} map[string]interface{} "Case already in suite"
// @Security BearerAuth
// @Router /test-suites/{id}/cases/{caseId} [post]
func (h *TestSuiteHandler) AddSuiteCase(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	suiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	caseID, err := uuid.Parse(c.Param("caseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	if err := h.suiteService.AddCase(user.ID, suiteID, caseID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSuiteCases handles GET /test-suites/:id/cases
// @Summary List suite test cases
// @Tags test-suites
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Success 200 {array} service.TestCaseResponse "Test cases in the suite"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Test suite not found"
// @Security BearerAuth
// @Router /test-suites/{id}/cases [get]
func (h *TestSuiteHandler) ListSuiteCases(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	suiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	cases, err := h.suiteService.ListCases(user.ID, suiteID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cases)
}

// RemoveSuiteCase handles DELETE /test-suites/:id/cases/:caseId
// @Summary Remove test case from suite
// @Tags test-suites
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Param caseId path string true "Test case ID (UUID)"
// @Success 204 "Successfully unlinked case"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Suite or link not found"
// @Security BearerAuth
// @Router /test-suites/{id}/cases/{caseId} [delete]
func (h *TestSuiteHandler) RemoveSuiteCase(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	suiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	caseID, err := uuid.Parse(c.Param("caseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	if err := h.suiteService.RemoveCase(user.ID, suiteID, caseID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
