package razorpay_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"shop_backend/pkg/razorpay"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	good := sign("order_abc", "pay_xyz", secret)

	assert.True(t, razorpay.VerifySignature("order_abc", "pay_xyz", good, secret))

	assert.False(t, razorpay.VerifySignature("order_abc", "pay_xyz", good, "wrong_secret"))
	assert.False(t, razorpay.VerifySignature("order_other", "pay_xyz", good, secret))
	assert.False(t, razorpay.VerifySignature("order_abc", "pay_other", good, secret))
	assert.False(t, razorpay.VerifySignature("order_abc", "pay_xyz", "", secret))
	assert.False(t, razorpay.VerifySignature("order_abc", "pay_xyz", "deadbeef", secret))
}

// The payload is orderID|paymentID, not the reverse. A swapped pair must not
// validate.
func TestVerifySignature_OrderMatters(t *testing.T) {
	const secret = "test_secret"
	swapped := sign("pay_xyz", "order_abc", secret)
	assert.False(t, razorpay.VerifySignature("order_abc", "pay_xyz", swapped, secret))
}
