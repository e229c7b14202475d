package dto

type CreateOrderRequest struct {
	// Amount is in paise, the gateway's smallest currency unit.
	Amount int64  `json:"amount" binding:"required" validate:"required,gt=0"`
	UserID string `json:"userId"`
}

type CreateOrderResponse struct {
	OK    bool                   `json:"ok"`
	Order map[string]interface{} `json:"order"`
}

type VerifyOrderRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required" validate:"required"`
	Signature string `json:"razorpay_signature" binding:"required" validate:"required"`
}
