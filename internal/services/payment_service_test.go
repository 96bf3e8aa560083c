package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

type paymentFixture struct {
	payments      *mockPaymentRepo
	orders        *mockOrderRepo
	users         *mockUserRepo
	notifications *mockNotificationRepo
	gateway       *mockGateway
	mail          *mockMailer
	svc           services.PaymentService
}

func newPaymentFixture() *paymentFixture {
	orders := newMockOrderRepo()
	f := &paymentFixture{
		payments:      newMockPaymentRepo(orders),
		orders:        orders,
		users:         newMockUserRepo(),
		notifications: &mockNotificationRepo{},
		gateway:       &mockGateway{validSig: "good-signature"},
		mail:          &mockMailer{},
	}
	f.svc = services.NewPaymentService(f.payments, f.orders, f.users, f.notifications, f.gateway, f.mail, zap.NewNop())
	return f
}

func (f *paymentFixture) seedOrder(t *testing.T, userID uint, finalPrice float64) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber:     "ORD-TEST00001",
		UserID:          userID,
		TotalPrice:      decimal.NewFromFloat(finalPrice),
		FinalPrice:      decimal.NewFromFloat(finalPrice),
		ShippingAddress: "somewhere",
		Status:          string(models.OrderPending),
	}
	require.NoError(t, f.orders.Create(order))
	return order
}

func (f *paymentFixture) seedUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{Username: "buyer", Email: "buyer@example.com", PasswordHash: "x"}
	require.NoError(t, f.users.Create(user))
	return user
}

func TestCreateIntent_RecordsPendingPayment(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 225.00)

	payment, err := f.svc.CreateIntent(models.Principal{UserID: user.ID}, order.ID)
	require.NoError(t, err)

	assert.Equal(t, string(models.PaymentPending), payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(225)))
	assert.NotEmpty(t, payment.RazorpayOrderID)
	assert.Len(t, f.gateway.createdOrders, 1)
}

func TestCreateIntent_OnePaymentPerOrder(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 100.00)
	p := models.Principal{UserID: user.ID}

	_, err := f.svc.CreateIntent(p, order.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateIntent(p, order.ID)
	appErr := requireAppErr(t, err, 400)
	assert.Equal(t, "A payment already exists for this order.", appErr.Message)
	assert.Len(t, f.gateway.createdOrders, 1, "no second gateway call")
}

func TestCreateIntent_OwnershipHidden(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 100.00)

	_, err := f.svc.CreateIntent(models.Principal{UserID: 99}, order.ID)
	requireAppErr(t, err, 404)
}

func TestCreateIntent_NonPositiveAmount(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 0)

	_, err := f.svc.CreateIntent(models.Principal{UserID: user.ID}, order.ID)
	requireAppErr(t, err, 400)
	assert.Empty(t, f.gateway.createdOrders)
}

func TestCreateIntent_GatewayDown(t *testing.T) {
	f := newPaymentFixture()
	f.gateway.failCreate = true
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 100.00)

	_, err := f.svc.CreateIntent(models.Principal{UserID: user.ID}, order.ID)
	requireAppErr(t, err, 502)
}

func TestVerify_Success_NotifiesOnce(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 100.00)
	p := models.Principal{UserID: user.ID}

	payment, err := f.svc.CreateIntent(p, order.ID)
	require.NoError(t, err)

	verified, err := f.svc.Verify(p, payment.RazorpayOrderID, "pay_123", "good-signature")
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentSuccess), verified.Status)
	assert.Equal(t, "pay_123", verified.RazorpayPaymentID)
	assert.Len(t, f.notifications.notifications, 1)
	assert.Equal(t, []string{"buyer@example.com"}, f.mail.sent)

	// Re-verification of a resolved payment returns current state without a
	// second notification or email.
	again, err := f.svc.Verify(p, payment.RazorpayOrderID, "pay_123", "good-signature")
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentSuccess), again.Status)
	assert.Len(t, f.notifications.notifications, 1)
	assert.Len(t, f.mail.sent, 1)
}

func TestVerify_BadSignatureMarksFailed(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)
	order := f.seedOrder(t, user.ID, 100.00)
	p := models.Principal{UserID: user.ID}

	payment, err := f.svc.CreateIntent(p, order.ID)
	require.NoError(t, err)

	failed, err := f.svc.Verify(p, payment.RazorpayOrderID, "pay_123", "forged")
	appErr := requireAppErr(t, err, 400)
	assert.Equal(t, "Payment verification failed!", appErr.Message)
	require.NotNil(t, failed)
	assert.Equal(t, string(models.PaymentFailed), failed.Status)
	assert.Empty(t, f.notifications.notifications)
	assert.Empty(t, f.mail.sent)

	// FAILED is terminal: a later correct signature does not flip it back.
	resolved, err := f.svc.Verify(p, payment.RazorpayOrderID, "pay_123", "good-signature")
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentFailed), resolved.Status)
	assert.Empty(t, f.mail.sent)
}

func TestVerify_UnknownPayment(t *testing.T) {
	f := newPaymentFixture()
	user := f.seedUser(t)

	_, err := f.svc.Verify(models.Principal{UserID: user.ID}, "order_unknown", "pay_123", "good-signature")
	requireAppErr(t, err, 404)
}
