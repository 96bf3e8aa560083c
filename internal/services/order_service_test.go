package services_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

type orderFixture struct {
	tx        *mockTxManager
	carts     *mockCartRepo
	inventory *mockInventoryRepo
	orders    *mockOrderRepo
	coupons   *mockCouponRepo
	catalog   map[uint]models.Product
	svc       services.OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		tx:        &mockTxManager{},
		carts:     newMockCartRepo(),
		inventory: newMockInventoryRepo(),
		orders:    newMockOrderRepo(),
		coupons:   newMockCouponRepo(),
		catalog:   make(map[uint]models.Product),
	}
	f.svc = services.NewOrderService(f.tx, f.carts, f.inventory, f.orders, services.NewCouponService(f.coupons))
	return f
}

func (f *orderFixture) addProduct(t *testing.T, id uint, name string, price float64, stock int) {
	t.Helper()
	require.NoError(t, f.inventory.Create(&models.Inventory{
		ProductID: id,
		Stock:     stock,
	}))
	f.catalog[id] = models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromFloat(price),
	}
}

// addToCart stores a cart line carrying the product snapshot the real
// repository would preload.
func (f *orderFixture) addToCart(t *testing.T, userID, productID uint, quantity int) {
	t.Helper()
	require.NoError(t, f.carts.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Product:   f.catalog[productID],
		Quantity:  quantity,
	}))
}

var buyer = models.Principal{UserID: 1, Email: "buyer@example.com"}

func TestPlaceOrder_TotalsAndCartCleared(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addToCart(t, buyer.UserID, 1, 3)

	order, err := f.svc.PlaceOrder(buyer, "221B Baker Street", "")
	require.NoError(t, err)

	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(59.97)), "got %s", order.TotalPrice)
	assert.True(t, order.FinalPrice.Equal(decimal.NewFromFloat(59.97)))
	assert.True(t, order.DiscountPrice.IsZero())
	assert.Equal(t, string(models.OrderPending), order.Status)
	assert.Equal(t, 7, f.inventory.stock(1))

	remaining, _ := f.carts.GetByUser(buyer.UserID)
	assert.Empty(t, remaining, "cart should be emptied after checkout")

	require.Len(t, order.Items, 1)
	assert.Equal(t, "T-Shirt", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestPlaceOrder_OrderNumberFormat(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addToCart(t, buyer.UserID, 1, 1)

	order, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{10}$`), order.OrderNumber)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	appErr := requireAppErr(t, err, 400)
	assert.Equal(t, "Cart is empty.", appErr.Message)
}

func TestPlaceOrder_MissingShippingAddress(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addToCart(t, buyer.UserID, 1, 1)

	_, err := f.svc.PlaceOrder(buyer, "   ", "")
	requireAppErr(t, err, 400)
}

func TestPlaceOrder_InsufficientStockIsAllOrNothing(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addProduct(t, 2, "Jeans", 59.99, 1)
	f.addToCart(t, buyer.UserID, 1, 2)
	f.addToCart(t, buyer.UserID, 2, 5)

	_, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	appErr := requireAppErr(t, err, 400)
	assert.Equal(t, "Not enough stock for Jeans. Available: 1", appErr.Message)

	// No partial decrement, no order, cart intact.
	assert.Equal(t, 10, f.inventory.stock(1))
	assert.Equal(t, 1, f.inventory.stock(2))
	orders, _ := f.orders.GetAll()
	assert.Empty(t, orders)
	remaining, _ := f.carts.GetByUser(buyer.UserID)
	assert.Len(t, remaining, 2)
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "Coat", 125.00, 5)
	f.addToCart(t, buyer.UserID, 1, 2)
	require.NoError(t, f.coupons.Create(&models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		MinOrderAmount:     decimal.NewFromInt(100),
		IsActive:           true,
	}))

	order, err := f.svc.PlaceOrder(buyer, "somewhere", "SAVE10")
	require.NoError(t, err)

	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(250)), "got %s", order.TotalPrice)
	assert.True(t, order.DiscountPrice.Equal(decimal.NewFromInt(25)), "got %s", order.DiscountPrice)
	assert.True(t, order.FinalPrice.Equal(decimal.NewFromInt(225)), "got %s", order.FinalPrice)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, 3, f.inventory.stock(1))
}

func TestPlaceOrder_InvalidCouponAbortsCheckout(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "Coat", 125.00, 5)
	f.addToCart(t, buyer.UserID, 1, 2)

	_, err := f.svc.PlaceOrder(buyer, "somewhere", "NOPE")
	appErr := requireAppErr(t, err, 400)
	assert.Equal(t, "Invalid or inactive coupon.", appErr.Message)
	assert.Equal(t, 5, f.inventory.stock(1))
}

// Two buyers race for the last unit. Exactly one checkout succeeds and stock
// never goes negative.
func TestPlaceOrder_ConcurrentLastUnit(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "Limited Sneaker", 199.99, 1)

	second := models.Principal{UserID: 2, Email: "other@example.com"}
	f.addToCart(t, buyer.UserID, 1, 1)
	f.addToCart(t, second.UserID, 1, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, p := range []models.Principal{buyer, second} {
		wg.Add(1)
		go func(i int, p models.Principal) {
			defer wg.Done()
			_, errs[i] = f.svc.PlaceOrder(p, "somewhere", "")
		}(i, p)
	}
	wg.Wait()

	var successes, failures int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			failures++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)
	assert.Equal(t, 0, f.inventory.stock(1))

	orders, _ := f.orders.GetAll()
	assert.Len(t, orders, 1)
}

func TestGetOrder_OwnershipHidden(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addToCart(t, buyer.UserID, 1, 1)
	order, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	require.NoError(t, err)

	stranger := models.Principal{UserID: 99}
	_, err = f.svc.GetOrder(stranger, order.ID)
	appErr := requireAppErr(t, err, 404)
	assert.Equal(t, "Order not found.", appErr.Message)

	admin := models.Principal{UserID: 99, IsAdmin: true}
	got, err := f.svc.GetOrder(admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestApplyCoupon_RecomputesTotals(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "Coat", 125.00, 5)
	f.addToCart(t, buyer.UserID, 1, 2)
	order, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	require.NoError(t, err)

	require.NoError(t, f.coupons.Create(&models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		MinOrderAmount:     decimal.NewFromInt(100),
		IsActive:           true,
	}))

	updated, err := f.svc.ApplyCoupon(buyer, order.ID, "SAVE10")
	require.NoError(t, err)
	assert.True(t, updated.DiscountPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, updated.FinalPrice.Equal(decimal.NewFromInt(225)))
}

func TestAdminUpdateStatus_ForwardOnly(t *testing.T) {
	f := newOrderFixture()
	f.addProduct(t, 1, "T-Shirt", 19.99, 10)
	f.addToCart(t, buyer.UserID, 1, 1)
	order, err := f.svc.PlaceOrder(buyer, "somewhere", "")
	require.NoError(t, err)

	updated, err := f.svc.AdminUpdateStatus(order.ID, string(models.OrderShipped))
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderShipped), updated.Status)

	_, err = f.svc.AdminUpdateStatus(order.ID, string(models.OrderPending))
	requireAppErr(t, err, 400)

	_, err = f.svc.AdminUpdateStatus(order.ID, "bogus")
	requireAppErr(t, err, 400)
}

func TestCartTotal_ExactDecimal(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{Price: decimal.NewFromFloat(19.99)}, Quantity: 3},
		{Product: models.Product{Price: decimal.NewFromFloat(0.10)}, Quantity: 3},
	}
	total := services.CartTotal(items)
	assert.True(t, total.Equal(decimal.NewFromFloat(60.27)), "got %s", total)
}
