package services

import (
	"freelancehub_backend/internal/appErrors"
	"freelancehub_backend/internal/services/dto"
)

// OrderGateway is what the payment service needs from the gateway
// adapter; tests swap in a fake.
type OrderGateway interface {
	CreateOrder(amount int64, notes map[string]interface{}) (map[string]interface{}, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type PaymentService struct {
	gateway OrderGateway
}

func NewPaymentService(gateway OrderGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

func (s *PaymentService) CreateOrder(req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, appErrors.ErrInvalidPaymentRequest
	}

	var notes map[string]interface{}
	if req.UserID != "" {
		notes = map[string]interface{}{"userId": req.UserID}
	}

	order, err := s.gateway.CreateOrder(req.Amount, notes)
	if err != nil {
		return nil, appErrors.ExternalServiceError(err)
	}
	return &dto.CreateOrderResponse{OK: true, Order: order}, nil
}

// VerifyOrder checks the signature handed back by the checkout flow.
// A mismatch is a client error, not a server one.
func (s *PaymentService) VerifyOrder(req *dto.VerifyOrderRequest) error {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return appErrors.ErrInvalidPaymentRequest
	}
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return appErrors.ErrInvalidSignature
	}
	return nil
}
