package services_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

// mockTxManager serializes transaction bodies with a mutex, standing in for
// the row-level locking the real datastore provides.
type mockTxManager struct {
	mu sync.Mutex
}

func (m *mockTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(nil)
}

// --- Cart ---

type mockCartRepo struct {
	items  map[uint]*models.CartItem
	nextID uint
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[uint]*models.CartItem)}
}

func (m *mockCartRepo) WithTx(_ *gorm.DB) repository.CartRepository { return m }

func (m *mockCartRepo) Create(item *models.CartItem) error {
	m.nextID++
	item.ID = m.nextID
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockCartRepo) GetByID(id uint) (*models.CartItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *mockCartRepo) GetByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	for _, item := range m.items {
		if item.UserID == userID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockCartRepo) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	for _, item := range m.items {
		if item.UserID == userID && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCartRepo) Update(item *models.CartItem) error {
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockCartRepo) Delete(id uint) error {
	delete(m.items, id)
	return nil
}

func (m *mockCartRepo) DeleteByUser(userID uint) error {
	for id, item := range m.items {
		if item.UserID == userID {
			delete(m.items, id)
		}
	}
	return nil
}

// --- Inventory ---

type mockInventoryRepo struct {
	byProduct map[uint]*models.Inventory
	nextID    uint
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{byProduct: make(map[uint]*models.Inventory)}
}

func (m *mockInventoryRepo) WithTx(_ *gorm.DB) repository.InventoryRepository { return m }

func (m *mockInventoryRepo) Create(inventory *models.Inventory) error {
	m.nextID++
	inventory.ID = m.nextID
	copied := *inventory
	m.byProduct[inventory.ProductID] = &copied
	return nil
}

func (m *mockInventoryRepo) GetByID(id uint) (*models.Inventory, error) {
	for _, inv := range m.byProduct {
		if inv.ID == id {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInventoryRepo) GetByProductID(productID uint) (*models.Inventory, error) {
	inv, ok := m.byProduct[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *inv
	return &copied, nil
}

func (m *mockInventoryRepo) GetByProductIDForUpdate(productID uint) (*models.Inventory, error) {
	return m.GetByProductID(productID)
}

func (m *mockInventoryRepo) Update(inventory *models.Inventory) error {
	copied := *inventory
	m.byProduct[inventory.ProductID] = &copied
	return nil
}

func (m *mockInventoryRepo) GetAll() ([]models.Inventory, error) {
	var inventories []models.Inventory
	for _, inv := range m.byProduct {
		inventories = append(inventories, *inv)
	}
	return inventories, nil
}

func (m *mockInventoryRepo) stock(productID uint) int {
	return m.byProduct[productID].Stock
}

// --- Order ---

type mockOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uint]*models.Order)}
}

func (m *mockOrderRepo) WithTx(_ *gorm.DB) repository.OrderRepository { return m }

func (m *mockOrderRepo) Create(order *models.Order) error {
	for _, existing := range m.orders {
		if existing.OrderNumber == order.OrderNumber {
			return fmt.Errorf("duplicate order number %s", order.OrderNumber)
		}
	}
	m.nextID++
	order.ID = m.nextID
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) GetByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range m.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *mockOrderRepo) Update(order *models.Order) error {
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

// --- Coupon ---

type mockCouponRepo struct {
	coupons map[uint]*models.Coupon
	nextID  uint
}

func newMockCouponRepo() *mockCouponRepo {
	return &mockCouponRepo{coupons: make(map[uint]*models.Coupon)}
}

func (m *mockCouponRepo) Create(coupon *models.Coupon) error {
	m.nextID++
	coupon.ID = m.nextID
	copied := *coupon
	m.coupons[coupon.ID] = &copied
	return nil
}

func (m *mockCouponRepo) GetByID(id uint) (*models.Coupon, error) {
	coupon, ok := m.coupons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *coupon
	return &copied, nil
}

func (m *mockCouponRepo) GetActiveByCode(code string) (*models.Coupon, error) {
	for _, coupon := range m.coupons {
		if coupon.Code == code && coupon.IsActive {
			copied := *coupon
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCouponRepo) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	for _, coupon := range m.coupons {
		coupons = append(coupons, *coupon)
	}
	return coupons, nil
}

func (m *mockCouponRepo) Update(coupon *models.Coupon) error {
	copied := *coupon
	m.coupons[coupon.ID] = &copied
	return nil
}

// --- Payment ---

type mockPaymentRepo struct {
	payments map[uint]*models.Payment
	orders   *mockOrderRepo
	nextID   uint
}

func newMockPaymentRepo(orders *mockOrderRepo) *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[uint]*models.Payment), orders: orders}
}

func (m *mockPaymentRepo) Create(payment *models.Payment) error {
	m.nextID++
	payment.ID = m.nextID
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

func (m *mockPaymentRepo) GetByOrderID(orderID uint) (*models.Payment, error) {
	for _, payment := range m.payments {
		if payment.OrderID == orderID {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByRazorpayOrderID mirrors the real repository's Order preload.
func (m *mockPaymentRepo) GetByRazorpayOrderID(razorpayOrderID string) (*models.Payment, error) {
	for _, payment := range m.payments {
		if payment.RazorpayOrderID == razorpayOrderID {
			copied := *payment
			if order, err := m.orders.GetByID(payment.OrderID); err == nil {
				copied.Order = *order
			}
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) Update(payment *models.Payment) error {
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

// --- User ---

type mockUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	m.nextID++
	user.ID = m.nextID
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

// --- Notification ---

type mockNotificationRepo struct {
	notifications []*models.Notification
}

func (m *mockNotificationRepo) Create(notification *models.Notification) error {
	notification.ID = uint(len(m.notifications) + 1)
	copied := *notification
	m.notifications = append(m.notifications, &copied)
	return nil
}

func (m *mockNotificationRepo) GetByID(id uint) (*models.Notification, error) {
	for _, n := range m.notifications {
		if n.ID == id {
			copied := *n
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) GetByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

func (m *mockNotificationRepo) Update(notification *models.Notification) error {
	for i, n := range m.notifications {
		if n.ID == notification.ID {
			copied := *notification
			m.notifications[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --- Referral ---

type mockReferralRepo struct {
	referrals map[uint]*models.Referral
	nextID    uint
}

func newMockReferralRepo() *mockReferralRepo {
	return &mockReferralRepo{referrals: make(map[uint]*models.Referral)}
}

func (m *mockReferralRepo) Create(referral *models.Referral) error {
	m.nextID++
	referral.ID = m.nextID
	copied := *referral
	m.referrals[referral.ID] = &copied
	return nil
}

func (m *mockReferralRepo) GetByReferrer(referrerID uint) ([]models.Referral, error) {
	var referrals []models.Referral
	for _, r := range m.referrals {
		if r.ReferrerID == referrerID {
			referrals = append(referrals, *r)
		}
	}
	return referrals, nil
}

func (m *mockReferralRepo) GetByCode(code string) (*models.Referral, error) {
	for _, r := range m.referrals {
		if r.ReferralCode == code {
			copied := *r
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferralRepo) Claim(code string, userID uint, points int) (int64, error) {
	for _, r := range m.referrals {
		if r.ReferralCode == code && r.ReferredUserID == nil {
			uid := userID
			r.ReferredUserID = &uid
			r.RewardPoints += points
			return 1, nil
		}
	}
	return 0, nil
}

// --- Gateway and mailer fakes ---

type mockGateway struct {
	createdOrders []string
	failCreate    bool
	validSig      string
}

func (m *mockGateway) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	if m.failCreate {
		return "", fmt.Errorf("gateway unreachable")
	}
	id := fmt.Sprintf("order_mock_%d", len(m.createdOrders)+1)
	m.createdOrders = append(m.createdOrders, id)
	return id, nil
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == m.validSig
}

type mockMailer struct {
	sent []string
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func (m *mockMailer) SendWithAttachment(to, subject, body, attachmentPath string) error {
	m.sent = append(m.sent, to)
	return nil
}

// requireAppErr asserts err is an application error with the given HTTP code.
func requireAppErr(t *testing.T, err error, code int) *apperrors.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.Error)
	require.True(t, ok, "expected *apperrors.Error, got %T", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}
