package dashboard

import (
	"context"
	"fmt"
	"log"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
)

// ConfirmPayment turns the current cart into an order. Order creation is
// the one hard step: its failure aborts everything and is broadcast
// identically to the cart, pending and status panels. The cart clear and
// the order-list refresh afterwards are best-effort; the order stands
// regardless of how they go.
func (c *Controller) ConfirmPayment(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CustomerID == nil {
		c.state.CartPanel = domain.Errorf(msgNoCustomer)
		return
	}
	customerID := *c.state.CustomerID
	if c.state.Cart == nil || len(c.state.Cart.Items) == 0 {
		c.state.CartPanel = domain.Errorf(msgEmptyCart)
		return
	}

	// Snapshot the cart before it gets cleared so the confirmation panel
	// can show what was actually bought.
	snapshotItems := append([]domain.CartItem(nil), c.state.Cart.Items...)
	snapshotTotal := c.state.Cart.CartTotal

	c.state.CartPanel = domain.Loading()
	c.state.PendingPanel = domain.Loading()
	c.state.StatusPanel = domain.Loading()

	// Prices are not trusted from this side, only product ids and counts.
	lines := make([]gateway.OrderItemInput, len(snapshotItems))
	for i, item := range snapshotItems {
		lines[i] = gateway.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	receipt, err := c.store.CreateOrder(ctx, gateway.CreateOrderRequest{
		CustomerID: customerID,
		Items:      lines,
	})
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		failure := domain.Errorf(err.Error())
		c.resetPendingOrder()
		c.state.CartPanel = failure
		c.state.PendingPanel = failure
		c.state.StatusPanel = failure
		return
	}
	c.metrics.OrdersPlaced.Inc()

	// Payment is settled synchronously by order creation; the earlier
	// reserve and payment-confirmation round trips are no longer made.
	if cleared, err := c.store.ClearCart(ctx, customerID); err != nil {
		log.Printf("failed to clear cart after payment: %v", err)
		c.metrics.GatewayErrors.Inc()
	} else {
		c.state.Cart = cleared
	}

	confirmed := fmt.Sprintf("Payment confirmed for order #%d.", receipt.OrderID)

	finalOrder := *receipt
	orders, err := c.store.FetchOrders(ctx, customerID)
	if err != nil {
		log.Printf("failed to refresh orders after payment: %v", err)
		c.metrics.GatewayErrors.Inc()
		c.state.StatusPanel = domain.Errorf(err.Error())
	} else {
		c.state.Orders = orders
		for _, order := range orders {
			if order.OrderID == receipt.OrderID {
				finalOrder.Status = order.Status
				break
			}
		}
		c.state.StatusPanel = domain.Success(confirmed)
	}

	c.state.Pending = &domain.PendingOrder{
		Order: finalOrder,
		Items: snapshotItems,
		Total: snapshotTotal,
	}
	c.state.PendingPanel = domain.Success(confirmed)
	c.state.CartPanel = domain.Idle()
	c.state.ActiveView = domain.ViewConfirm
}

// CancelPendingOrder cancels the order shown on the confirmation panel.
// On failure the pending order is kept so the user can retry.
func (c *Controller) CancelPendingOrder(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Pending == nil {
		c.state.PendingPanel = domain.Errorf(msgNoPendingOrder)
		return
	}
	orderID := c.state.Pending.Order.OrderID

	c.state.PendingPanel = domain.Loading()
	if err := c.store.CancelOrder(ctx, orderID); err != nil {
		c.metrics.GatewayErrors.Inc()
		failure := domain.Errorf(err.Error())
		c.state.PendingPanel = failure
		c.state.StatusPanel = failure
		return
	}
	c.metrics.OrdersCancelled.Inc()

	c.state.PendingPanel = domain.Idle()
	if c.state.CustomerID != nil {
		_ = c.loadOrders(ctx, *c.state.CustomerID)
	}

	cancelled := fmt.Sprintf("Order #%d cancelled.", orderID)
	c.state.CartPanel = domain.Success(cancelled)
	c.state.StatusPanel = domain.Success(cancelled)
	c.resetPendingOrder()
	c.state.ActiveView = domain.ViewCart
}

// CancelOrder cancels from the status panel. It reports to the status
// channel only and leaves the pending order and cart alone.
func (c *Controller) CancelOrder(ctx context.Context, orderID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.StatusPanel = domain.Loading()
	if err := c.store.CancelOrder(ctx, orderID); err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.StatusPanel = domain.Errorf(err.Error())
		return
	}
	c.metrics.OrdersCancelled.Inc()

	c.state.StatusPanel = domain.Success(fmt.Sprintf("Order #%d cancelled successfully.", orderID))
	if c.state.CustomerID != nil {
		_ = c.loadOrders(ctx, *c.state.CustomerID)
	}
}

// RefreshOrders refetches the order list for the status panel.
func (c *Controller) RefreshOrders(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.StatusPanel = domain.Loading()
	if c.state.CustomerID != nil {
		if err := c.loadOrders(ctx, *c.state.CustomerID); err != nil {
			return
		}
	}
	c.state.StatusPanel = domain.Success(msgOrdersRefreshed)
}
