package handlers

import (
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// Create handles POST /applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(email, &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// ListMine handles GET /applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(email)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Decide handles PUT /applications/:id.
func (h *ApplicationHandler) Decide(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Decide(email, c.Param("id"), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}

// ListApprovals handles GET /client/approvals.
func (h *ApplicationHandler) ListApprovals(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListApprovals(email)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForProject handles GET /projects/:id/applications.
func (h *ApplicationHandler) ListForProject(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForProject(email, c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
