package handlers

import (
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	BaseHandler
	projectService *services.ProjectService
}

func NewProjectHandler(base BaseHandler, projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projectService: projectService}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(email, &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *gin.Context) {
	var req dto.ProjectFilterRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.projectService.List(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.Get(c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Update handles PUT /projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(email, c.Param("id"), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(email, c.Param("id")); err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
