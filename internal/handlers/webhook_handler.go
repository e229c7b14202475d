package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/webhook"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	BaseHandler
	verifier    webhook.Verifier
	userService *services.UserService
}

func NewWebhookHandler(base BaseHandler, verifier webhook.Verifier, userService *services.UserService) *WebhookHandler {
	return &WebhookHandler{BaseHandler: base, verifier: verifier, userService: userService}
}

// HandleClerk handles POST /webhooks/clerk. The signature covers the
// raw body, so it must be read before any JSON decoding.
func (h *WebhookHandler) HandleClerk(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Failed to read request body"))
		return
	}

	if err := h.verifier.Verify(payload, c.Request.Header); err != nil {
		logger.CtxWarn(c.Request.Context(), "webhook signature rejected", "error", err)
		appErrors.HandleError(c, appErrors.ErrWebhookVerifyFailed)
		return
	}

	var event webhook.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Malformed webhook payload"))
		return
	}

	if err := h.userService.HandleIdentityEvent(&event); err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
