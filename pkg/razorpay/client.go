package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	rzp "github.com/razorpay/razorpay-go"
)

// Gateway is the payment-processor surface the services depend on.
type Gateway interface {
	// CreateOrder opens a payment intent for the given amount (in paise) and
	// returns the processor's order id.
	CreateOrder(amountPaise int64, currency, receipt string) (string, error)
	// VerifySignature checks the processor's callback signature for
	// orderID + paymentID against the shared secret.
	VerifySignature(orderID, paymentID, signature string) bool
}

type Client struct {
	api       *rzp.Client
	keySecret string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		api:       rzp.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

func (c *Client) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := c.api.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return id, nil
}

func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.keySecret)
}

// VerifySignature computes HMAC-SHA256 over "orderID|paymentID" with the key
// secret and compares it to the supplied signature in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
