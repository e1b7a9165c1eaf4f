package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
)

func twoItemCart() *domain.CartSnapshot {
	return &domain.CartSnapshot{
		CustomerID: 42,
		Items: []domain.CartItem{
			{ProductID: 1, SKU: "SKU-001", Name: "Mouse", UnitPrice: 29.99, Quantity: 1, LineTotal: 29.99},
			{ProductID: 2, SKU: "SKU-002", Name: "Pad", UnitPrice: 29.99, Quantity: 1, LineTotal: 29.99},
		},
		CartTotal: 59.98,
	}
}

func TestConfirmPayment_RequiresCustomer(t *testing.T) {
	store := &MockStoreGateway{}
	c := newTestController(&MockAuthGateway{}, store)

	c.ConfirmPayment(context.Background())

	assert.Equal(t, "Customer context not available.", c.State().CartPanel.Message)
	assert.Empty(t, store.Calls)
}

func TestConfirmPayment_EmptyCartNeverHitsNetwork(t *testing.T) {
	store := &MockStoreGateway{}
	c := loggedInController(store, 42)
	c.state.Cart = &domain.CartSnapshot{CustomerID: 42}

	c.ConfirmPayment(context.Background())

	state := c.State()
	assert.Equal(t, domain.StatusError, state.CartPanel.Kind)
	assert.Equal(t, "Cart is empty.", state.CartPanel.Message)
	assert.Empty(t, store.Calls)
	assert.Nil(t, state.Pending)
}

func TestConfirmPayment_Success(t *testing.T) {
	store := &MockStoreGateway{
		Receipt:   &domain.OrderReceipt{OrderID: 7, Status: "PENDING", CorrelationID: "corr-1"},
		ClearSnap: &domain.CartSnapshot{CustomerID: 42},
		Orders: []domain.OrderSummary{
			{OrderID: 7, OrderTotal: 59.98, Status: "CREATED"},
		},
	}
	c := loggedInController(store, 42)
	c.state.Cart = twoItemCart()

	c.ConfirmPayment(context.Background())

	state := c.State()
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(7), state.Pending.Order.OrderID)
	// Refetched status overlays the locally known one.
	assert.Equal(t, "CREATED", state.Pending.Order.Status)
	assert.Equal(t, "corr-1", state.Pending.Order.CorrelationID)
	assert.Equal(t, 59.98, state.Pending.Total)
	assert.Len(t, state.Pending.Items, 2)

	assert.Equal(t, domain.ViewConfirm, state.ActiveView)
	assert.Equal(t, domain.StatusIdle, state.CartPanel.Kind)
	assert.Equal(t, domain.StatusSuccess, state.PendingPanel.Kind)
	assert.Equal(t, "Payment confirmed for order #7.", state.PendingPanel.Message)
	assert.Equal(t, domain.StatusSuccess, state.StatusPanel.Kind)
	assert.Equal(t, "Payment confirmed for order #7.", state.StatusPanel.Message)

	// Only ids and quantities go to the backend, never prices.
	require.Len(t, store.CreateRequests, 1)
	request := store.CreateRequests[0]
	assert.Equal(t, int64(42), request.CustomerID)
	assert.Equal(t, []gateway.OrderItemInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	}, request.Items)

	assert.Equal(t, []string{"CreateOrder", "ClearCart", "FetchOrders"}, store.Calls)
}

func TestConfirmPayment_ReplacesPriorPendingOrder(t *testing.T) {
	store := &MockStoreGateway{
		Receipt:   &domain.OrderReceipt{OrderID: 8, Status: "CREATED"},
		ClearSnap: &domain.CartSnapshot{CustomerID: 42},
		Orders:    []domain.OrderSummary{{OrderID: 8, Status: "CREATED"}},
	}
	c := loggedInController(store, 42)
	c.state.Cart = twoItemCart()
	c.state.Pending = &domain.PendingOrder{Order: domain.OrderReceipt{OrderID: 7}}

	c.ConfirmPayment(context.Background())

	state := c.State()
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(8), state.Pending.Order.OrderID)
}

func TestConfirmPayment_CreationFailureBroadcastsToAllChannels(t *testing.T) {
	store := &MockStoreGateway{
		CreateErr: &gateway.Error{StatusCode: 409, Message: "Insufficient stock"},
	}
	c := loggedInController(store, 42)
	c.state.Cart = twoItemCart()
	c.state.ActiveView = domain.ViewCart

	c.ConfirmPayment(context.Background())

	state := c.State()
	for _, panel := range []domain.PanelStatus{state.CartPanel, state.PendingPanel, state.StatusPanel} {
		assert.Equal(t, domain.StatusError, panel.Kind)
		assert.Equal(t, "Insufficient stock", panel.Message)
	}
	assert.Nil(t, state.Pending)
	assert.Equal(t, domain.ViewCart, state.ActiveView)
	// The sequence aborted before the cart clear and order refresh.
	assert.Equal(t, []string{"CreateOrder"}, store.Calls)
}

func TestConfirmPayment_CartClearFailureIsSoft(t *testing.T) {
	store := &MockStoreGateway{
		Receipt:  &domain.OrderReceipt{OrderID: 7, Status: "CREATED"},
		ClearErr: errors.New("clear failed"),
		Orders:   []domain.OrderSummary{{OrderID: 7, Status: "CREATED"}},
	}
	c := loggedInController(store, 42)
	c.state.Cart = twoItemCart()

	c.ConfirmPayment(context.Background())

	state := c.State()
	// The order stands; the stale cart stays until the next load.
	require.NotNil(t, state.Pending)
	assert.Equal(t, domain.StatusSuccess, state.PendingPanel.Kind)
	require.NotNil(t, state.Cart)
	assert.Equal(t, 59.98, state.Cart.CartTotal)
	assert.Equal(t, domain.ViewConfirm, state.ActiveView)
}

func TestConfirmPayment_OrderRefreshFailureIsDegradedSuccess(t *testing.T) {
	store := &MockStoreGateway{
		Receipt:   &domain.OrderReceipt{OrderID: 7, Status: "CREATED"},
		ClearSnap: &domain.CartSnapshot{CustomerID: 42},
		OrdersErr: &gateway.Error{StatusCode: 500, Message: "Failed to load orders"},
	}
	c := loggedInController(store, 42)
	c.state.Cart = twoItemCart()

	c.ConfirmPayment(context.Background())

	state := c.State()
	// Pending order keeps the locally known status; only the status
	// panel reports the refresh failure.
	require.NotNil(t, state.Pending)
	assert.Equal(t, "CREATED", state.Pending.Order.Status)
	assert.Equal(t, domain.StatusSuccess, state.PendingPanel.Kind)
	assert.Equal(t, domain.StatusError, state.StatusPanel.Kind)
	assert.Equal(t, "Failed to load orders", state.StatusPanel.Message)
	assert.Equal(t, domain.ViewConfirm, state.ActiveView)
}

func TestCancelPendingOrder_Success(t *testing.T) {
	store := &MockStoreGateway{
		Orders: []domain.OrderSummary{{OrderID: 7, Status: "CANCELLED"}},
	}
	c := loggedInController(store, 42)
	c.state.Pending = &domain.PendingOrder{Order: domain.OrderReceipt{OrderID: 7, Status: "CREATED"}}
	c.state.ActiveView = domain.ViewConfirm

	c.CancelPendingOrder(context.Background())

	state := c.State()
	assert.Nil(t, state.Pending)
	assert.Equal(t, domain.ViewCart, state.ActiveView)
	assert.Equal(t, "Order #7 cancelled.", state.CartPanel.Message)
	assert.Equal(t, "Order #7 cancelled.", state.StatusPanel.Message)
	assert.Equal(t, []int64{7}, store.CancelledIDs)
	assert.Contains(t, store.Calls, "FetchOrders")
}

func TestCancelPendingOrder_FailureRetainsPending(t *testing.T) {
	store := &MockStoreGateway{CancelErr: &gateway.Error{StatusCode: 409, Message: "Order cannot be cancelled"}}
	c := loggedInController(store, 42)
	c.state.Pending = &domain.PendingOrder{Order: domain.OrderReceipt{OrderID: 7}}
	c.state.ActiveView = domain.ViewConfirm

	c.CancelPendingOrder(context.Background())

	state := c.State()
	require.NotNil(t, state.Pending)
	assert.Equal(t, domain.ViewConfirm, state.ActiveView)
	assert.Equal(t, domain.StatusError, state.PendingPanel.Kind)
	assert.Equal(t, "Order cannot be cancelled", state.PendingPanel.Message)
	assert.Equal(t, "Order cannot be cancelled", state.StatusPanel.Message)
}

func TestCancelPendingOrder_NothingPending(t *testing.T) {
	store := &MockStoreGateway{}
	c := loggedInController(store, 42)

	c.CancelPendingOrder(context.Background())

	assert.Equal(t, "No pending order to cancel.", c.State().PendingPanel.Message)
	assert.Empty(t, store.Calls)
}

func TestCancelOrder_StatusChannelOnly(t *testing.T) {
	store := &MockStoreGateway{
		Orders: []domain.OrderSummary{{OrderID: 3, Status: "CANCELLED"}},
	}
	c := loggedInController(store, 42)
	pending := &domain.PendingOrder{Order: domain.OrderReceipt{OrderID: 7}}
	c.state.Pending = pending
	c.state.CartPanel = domain.Success("Item added to cart.")

	c.CancelOrder(context.Background(), 3)

	state := c.State()
	assert.Equal(t, "Order #3 cancelled successfully.", state.StatusPanel.Message)
	// Pending order and cart channel are untouched.
	require.NotNil(t, state.Pending)
	assert.Equal(t, int64(7), state.Pending.Order.OrderID)
	assert.Equal(t, "Item added to cart.", state.CartPanel.Message)
}

func TestRefreshOrders(t *testing.T) {
	store := &MockStoreGateway{Orders: []domain.OrderSummary{{OrderID: 1}}}
	c := loggedInController(store, 42)

	c.RefreshOrders(context.Background())

	state := c.State()
	assert.Equal(t, domain.StatusSuccess, state.StatusPanel.Kind)
	assert.Equal(t, "Orders refreshed.", state.StatusPanel.Message)
	assert.Len(t, state.Orders, 1)
}

func TestRefreshOrders_Failure(t *testing.T) {
	store := &MockStoreGateway{OrdersErr: &gateway.Error{StatusCode: 500, Message: "Failed to load orders"}}
	c := loggedInController(store, 42)

	c.RefreshOrders(context.Background())

	state := c.State()
	assert.Equal(t, domain.StatusError, state.StatusPanel.Kind)
	assert.Equal(t, "Failed to load orders", state.StatusPanel.Message)
}

func TestBackToCart(t *testing.T) {
	c := loggedInController(&MockStoreGateway{}, 42)
	c.state.Pending = &domain.PendingOrder{Order: domain.OrderReceipt{OrderID: 7}}
	c.state.ActiveView = domain.ViewConfirm

	c.BackToCart()

	state := c.State()
	assert.Nil(t, state.Pending)
	assert.Equal(t, domain.ViewCart, state.ActiveView)
}
