package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the Razorpay adapter. Order creation goes through the SDK;
// signature verification recomputes the HMAC locally so no network call
// is needed on the verify path.
type Gateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder opens an auto-captured INR order for the given amount
// (in paise). Returns the raw gateway response.
func (g *Gateway) CreateOrder(amount int64, notes map[string]interface{}) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":          amount,
		"currency":        "INR",
		"receipt":         fmt.Sprintf("rcpt_%d", time.Now().UnixMilli()),
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return order, nil
}

// VerifySignature checks the payment signature the gateway handed to the
// frontend: HMAC-SHA256 over "orderId|paymentId" keyed with the secret.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
