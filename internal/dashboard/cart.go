package dashboard

import (
	"context"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

// Cart mutations share one shape: customer precondition, gateway call,
// wholesale snapshot replacement, cart-channel report. The displayed
// cart is always exactly what the store service returned.

func (c *Controller) AddToCart(ctx context.Context, productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	customerID, ok := c.requireCustomer()
	if !ok {
		return
	}
	c.state.CartPanel = domain.Loading()
	snapshot, err := c.store.AddCartItem(ctx, customerID, productID, quantity)
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.CartPanel = domain.Errorf(err.Error())
		return
	}
	c.metrics.CartMutations.Inc()
	c.state.Cart = snapshot
	c.state.CartPanel = domain.Success(msgItemAdded)
}

func (c *Controller) UpdateCartQuantity(ctx context.Context, productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	customerID, ok := c.requireCustomer()
	if !ok {
		return
	}
	c.state.CartPanel = domain.Loading()
	snapshot, err := c.store.UpdateCartItem(ctx, customerID, productID, quantity)
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.CartPanel = domain.Errorf(err.Error())
		return
	}
	c.metrics.CartMutations.Inc()
	c.state.Cart = snapshot
	c.state.CartPanel = domain.Success(msgCartUpdated)
}

func (c *Controller) RemoveCartItem(ctx context.Context, productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	customerID, ok := c.requireCustomer()
	if !ok {
		return
	}
	c.state.CartPanel = domain.Loading()
	snapshot, err := c.store.RemoveCartItem(ctx, customerID, productID)
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.CartPanel = domain.Errorf(err.Error())
		return
	}
	c.metrics.CartMutations.Inc()
	c.state.Cart = snapshot
	c.state.CartPanel = domain.Success(msgItemRemoved)
}

func (c *Controller) ClearCart(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	customerID, ok := c.requireCustomer()
	if !ok {
		return
	}
	c.state.CartPanel = domain.Loading()
	snapshot, err := c.store.ClearCart(ctx, customerID)
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.CartPanel = domain.Errorf(err.Error())
		return
	}
	c.metrics.CartMutations.Inc()
	c.state.Cart = snapshot
	c.state.CartPanel = domain.Success(msgCartCleared)
}

// requireCustomer enforces the hard precondition shared by every cart
// and order operation. Lock must be held.
func (c *Controller) requireCustomer() (int64, bool) {
	if c.state.CustomerID == nil {
		c.state.CartPanel = domain.Errorf(msgNoCustomer)
		return 0, false
	}
	return *c.state.CustomerID, true
}
