package handlers

import (
	"net/http"

	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

// CreateOrder handles POST /payments/create-order.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateOrder(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyOrder handles POST /payments/verify-order.
func (h *PaymentHandler) VerifyOrder(c *gin.Context) {
	var req dto.VerifyOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.paymentService.VerifyOrder(&req); err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
