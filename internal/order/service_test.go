package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/internal/cart"
	"github.com/nadafaclean/store-service/internal/catalog"
	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
	"github.com/nadafaclean/store-service/pkg/notify"
)

func setup(t *testing.T) (OrderService, cart.CartService, catalog.CatalogService) {
	t.Helper()
	store := kvstore.NewMemStore()

	catalogLog := logger.NewLogger("error", &catalog.CatalogLogHook{})
	catalogService := catalog.NewService(catalog.NewStorage(store, catalogLog), catalogLog, notify.Nop{})

	cartLog := logger.NewLogger("error", &cart.CartLogHook{})
	cartService := cart.NewService(cart.NewStorage(store, cartLog), cartLog)

	orderLog := logger.NewLogger("error", &OrderLogHook{})
	orderService := NewService(NewStorage(store, orderLog), cartService, catalogService, orderLog, notify.Nop{})

	return orderService, cartService, catalogService
}

func customer() CustomerInfo {
	return CustomerInfo{
		Name:    "سารة",
		Email:   "sara@example.com",
		Phone:   "0501234567",
		Address: "حي النرجس",
		City:    "الرياض",
	}
}

func TestCreateOrderFromSeedScenario(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 2))
	require.Equal(t, 31.98, cartService.TotalPrice())

	// standard delivery (15) into the Riyadh zone (fee 0)
	order, err := orderService.CreateOrder(customer(), "3001", "3101")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, 31.98, order.Subtotal)
	assert.Equal(t, 15.0, order.DeliveryFee)
	assert.Equal(t, 46.98, order.Total)
	assert.Equal(t, "توصيل عادي", order.DeliveryOptionName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "2001", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 15.99, order.Items[0].UnitPrice)

	assert.Empty(t, cartService.Items(), "order creation must clear the cart")
	assert.Equal(t, 0, cartService.ItemCount())
}

func TestCreateOrderWithZoneFee(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 1))

	// express (30) into the eastern province (fee 5)
	order, err := orderService.CreateOrder(customer(), "3002", "3102")
	require.NoError(t, err)
	assert.Equal(t, 35.0, order.DeliveryFee)
	assert.Equal(t, 50.99, order.Total)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orderService, _, _ := setup(t)

	_, err := orderService.CreateOrder(customer(), "3001", "3101")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrderUnknownDelivery(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 1))

	_, err = orderService.CreateOrder(customer(), "no-such-option", "3101")
	assert.ErrorIs(t, err, ErrDeliveryUnavailable)

	_, err = orderService.CreateOrder(customer(), "3001", "no-such-zone")
	assert.ErrorIs(t, err, ErrDeliveryUnavailable)

	assert.NotEmpty(t, cartService.Items(), "failed order must not clear the cart")
}

func TestOrderSnapshotSurvivesProductEdits(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 2))

	order, err := orderService.CreateOrder(customer(), "3001", "3101")
	require.NoError(t, err)

	newPrice := 99.0
	require.NoError(t, catalogService.UpdateProduct("2001", catalog.ProductUpdate{Price: &newPrice}))

	stored, err := orderService.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.99, stored.Items[0].UnitPrice)
	assert.Equal(t, 46.98, stored.Total)
}

func TestGetOrdersForCustomer(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 1))
	_, err = orderService.CreateOrder(customer(), "3001", "3101")
	require.NoError(t, err)

	assert.Len(t, orderService.GetOrdersForCustomer("SARA@example.com"), 1)
	assert.Empty(t, orderService.GetOrdersForCustomer("other@example.com"))
}

func TestStatusTransitions(t *testing.T) {
	orderService, cartService, catalogService := setup(t)

	floor, err := catalogService.GetProductByID("2001")
	require.NoError(t, err)
	require.NoError(t, cartService.AddToCart(*floor, 1))
	order, err := orderService.CreateOrder(customer(), "3001", "3101")
	require.NoError(t, err)

	t.Run("unknown status refused", func(t *testing.T) {
		assert.ErrorIs(t, orderService.UpdateOrderStatus(order.ID, "shipped"), ErrUnknownStatus)
	})

	t.Run("forward transitions", func(t *testing.T) {
		require.NoError(t, orderService.UpdateOrderStatus(order.ID, StatusProcessing))
		require.NoError(t, orderService.UpdateOrderStatus(order.ID, StatusCompleted))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		assert.ErrorIs(t, orderService.UpdateOrderStatus(order.ID, StatusPending), ErrInvalidTransition)
		assert.ErrorIs(t, orderService.UpdateOrderStatus(order.ID, StatusCancelled), ErrInvalidTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		assert.ErrorIs(t, orderService.UpdateOrderStatus("missing", StatusProcessing), ErrOrderNotFound)
	})
}
