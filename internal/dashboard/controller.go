package dashboard

import (
	"sync"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/metrics"
)

// User-visible messages. Local validation never reaches the network.
const (
	msgNoCustomer      = "Customer context not available."
	msgEmptyCart       = "Cart is empty."
	msgNoPendingOrder  = "No pending order to cancel."
	msgSessionFailed   = "Unable to verify session."
	msgSignedIn        = "Signed in successfully."
	msgAccountCreated  = "Account created and signed in."
	msgUsernameShort   = "Username must be at least 3 characters long."
	msgPasswordShort   = "Password must be at least 8 characters long."
	msgItemAdded       = "Item added to cart."
	msgCartUpdated     = "Cart updated."
	msgItemRemoved     = "Item removed."
	msgCartCleared     = "Cart cleared."
	msgOrdersRefreshed = "Orders refreshed."
)

// Controller owns the dashboard state. Every handler runs under one
// mutex, so one handler completes before the next mutation is visible;
// there is no finer-grained protection against racing user actions.
type Controller struct {
	mu      sync.Mutex
	state   State
	auth    AuthGateway
	store   StoreGateway
	metrics *metrics.Registry
}

func NewController(auth AuthGateway, store StoreGateway, registry *metrics.Registry) *Controller {
	return &Controller{
		state:   newState(),
		auth:    auth,
		store:   store,
		metrics: registry,
	}
}

// State returns a copy of the current dashboard state for rendering.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// SelectView switches the active panel. Unknown views are ignored.
func (c *Controller) SelectView(view domain.View) {
	if !view.IsValid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ActiveView = view
}

// BackToCart leaves the confirmation panel, dropping the pending order.
func (c *Controller) BackToCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetPendingOrder()
	c.state.ActiveView = domain.ViewCart
}

func (c *Controller) resetPendingOrder() {
	c.state.Pending = nil
	c.state.PendingPanel = domain.Idle()
}

// clearCustomerState drops everything that only makes sense with a
// resolved customer: cart, orders, customer id.
func (c *Controller) clearCustomerState() {
	c.state.CustomerID = nil
	c.state.Cart = nil
	c.state.Orders = nil
}
