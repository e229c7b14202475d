package handlers

import (
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

// SendApproval handles POST /notifications/approval. The approval
// workflow sends these emails itself; this endpoint lets a client
// re-trigger one when delivery failed.
func (h *NotificationHandler) SendApproval(c *gin.Context) {
	var req dto.ApprovalEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.notificationService.SendDecision(&req); err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
