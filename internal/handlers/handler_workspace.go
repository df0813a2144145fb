package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// WorkspaceAdminHandler handles the internal-only workspace management
// surface. Client access to a workspace's content goes through the
// workspace-scoped routes instead.
type WorkspaceAdminHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

// NewWorkspaceAdminHandler creates a new WorkspaceAdminHandler.
func NewWorkspaceAdminHandler(ws portssvc.WorkspaceSvcFacade) *WorkspaceAdminHandler {
	return &WorkspaceAdminHandler{workspaceService: ws}
}

// registerWorkspaceAdminRoutes sets up workspace CRUD under /admin.
func registerWorkspaceAdminRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade) {
	h := NewWorkspaceAdminHandler(workspaceService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.CreateWorkspace)
		workspaces.GET("", h.ListWorkspaces)
		workspaces.GET("/:workspace_id", h.GetWorkspace)
		workspaces.PUT("/:workspace_id", h.UpdateWorkspace)
	}
}

// CreateWorkspace godoc
// @Summary Create a workspace
// @Tags admin
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/workspaces [post]
func (h *WorkspaceAdminHandler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req.Name, req.CompanyName, creatorUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// ListWorkspaces godoc
// @Summary List workspaces
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/workspaces [get]
func (h *WorkspaceAdminHandler) ListWorkspaces(c *gin.Context) {
	var params dto.ListWorkspacesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	workspaces, err := h.workspaceService.ListWorkspaces(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// GetWorkspace godoc
// @Summary Get workspace
// @Tags admin
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/workspaces/{workspace_id} [get]
func (h *WorkspaceAdminHandler) GetWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		handleServiceError(c, err, "Workspace not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// UpdateWorkspace godoc
// @Summary Update workspace
// @Description Updates name, company name or lifecycle status. Omitted fields keep their current values.
// @Tags admin
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/workspaces/{workspace_id} [put]
func (h *WorkspaceAdminHandler) UpdateWorkspace(c *gin.Context) {
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	workspaceID := c.Param("workspace_id")

	// Overlay the supplied fields on the current row.
	current, err := h.workspaceService.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		handleServiceError(c, err, "Workspace not found")
		return
	}
	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	companyName := current.CompanyName
	if req.CompanyName != nil {
		companyName = *req.CompanyName
	}
	status := current.Status
	if req.Status != nil {
		status = domain.WorkspaceStatus(*req.Status)
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	workspace, err := h.workspaceService.UpdateWorkspace(ctx, workspaceID, name, companyName, status, updaterUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}
