package dashboard

import (
	"context"
	"log"
	"strings"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
)

// ReloadSession probes the auth service and resolves the session to a
// customer. Runs on startup and after login, signup and logout.
func (c *Controller) ReloadSession(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloadSession(ctx)
}

func (c *Controller) reloadSession(ctx context.Context) {
	c.metrics.SessionReloads.Inc()

	session, err := c.auth.FetchSession(ctx)
	if err != nil {
		// Unverifiable, not logged-out: surface it and drop dependent state.
		log.Printf("failed to verify session: %v", err)
		c.metrics.GatewayErrors.Inc()
		c.state.SigninPanel = domain.Errorf(msgSessionFailed)
		c.clearCustomerState()
		c.resetPendingOrder()
		return
	}

	c.state.Session = session
	if session == nil {
		// Valid logged-out state, no error to report.
		c.clearCustomerState()
		c.resetPendingOrder()
		return
	}

	profile, err := c.store.FetchCustomerProfile(ctx, session.Username)
	if err != nil {
		// Session stays; the dashboard is unusable without a customer.
		log.Printf("failed to resolve customer %q: %v", session.Username, err)
		c.metrics.GatewayErrors.Inc()
		c.clearCustomerState()
		c.state.CartPanel = domain.Errorf(err.Error())
		return
	}

	customerID := profile.CustomerID
	c.state.CustomerID = &customerID
	c.state.ActiveView = domain.ViewCatalogue
	c.initializeDashboard(ctx, customerID)
}

// initializeDashboard loads products, cart and orders in order. Each
// sub-load fails in isolation: a cart failure never blocks the orders
// load, and a missing catalogue is tolerated.
func (c *Controller) initializeDashboard(ctx context.Context, customerID int64) {
	if err := c.loadProducts(ctx); err != nil {
		log.Printf("failed to load products: %v", err)
	}
	_ = c.loadCart(ctx, customerID)
	_ = c.loadOrders(ctx, customerID)
}

func (c *Controller) loadProducts(ctx context.Context) error {
	products, err := c.store.FetchProducts(ctx)
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		return err
	}
	c.state.Products = products
	return nil
}

func (c *Controller) loadCart(ctx context.Context, customerID int64) error {
	snapshot, err := c.store.GetCart(ctx, customerID)
	if err != nil {
		log.Printf("failed to load cart: %v", err)
		c.metrics.GatewayErrors.Inc()
		c.state.CartPanel = domain.Errorf(err.Error())
		return err
	}
	c.state.Cart = snapshot
	return nil
}

func (c *Controller) loadOrders(ctx context.Context, customerID int64) error {
	orders, err := c.store.FetchOrders(ctx, customerID)
	if err != nil {
		log.Printf("failed to load orders: %v", err)
		c.metrics.GatewayErrors.Inc()
		c.state.StatusPanel = domain.Errorf(err.Error())
		return err
	}
	c.state.Orders = orders
	return nil
}

// Login signs the user in and rebuilds the dashboard from the new session.
func (c *Controller) Login(ctx context.Context, username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SigninPanel = domain.Loading()
	result, err := c.auth.Login(ctx, gateway.Credentials{Username: username, Password: password})
	if err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.SigninPanel = domain.Errorf(err.Error())
		return
	}

	c.reloadSession(ctx)

	message := msgSignedIn
	if result.Message != "" {
		message = result.Message
	}
	c.state.SigninPanel = domain.Success(message)
}

// Signup creates an account and signs it in. Credential shape is checked
// locally before any network call.
func (c *Controller) Signup(ctx context.Context, username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		c.state.SignupPanel = domain.Errorf(msgUsernameShort)
		return
	}
	if len(password) < 8 {
		c.state.SignupPanel = domain.Errorf(msgPasswordShort)
		return
	}

	c.state.SignupPanel = domain.Loading()
	if _, err := c.auth.Signup(ctx, gateway.Credentials{Username: username, Password: password}); err != nil {
		c.metrics.GatewayErrors.Inc()
		c.state.SignupPanel = domain.Errorf(err.Error())
		return
	}

	c.reloadSession(ctx)
	c.state.SignupPanel = domain.Success(msgAccountCreated)
}

// Logout clears the whole dashboard. A gateway failure is logged only;
// the local state is dropped either way.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.auth.Logout(ctx); err != nil {
		log.Printf("logout failed: %v", err)
		c.metrics.GatewayErrors.Inc()
	}

	c.state.Session = nil
	c.state.Products = nil
	c.clearCustomerState()
	c.state.ActiveView = domain.ViewCatalogue
	c.state.SigninPanel = domain.Idle()
	c.state.SignupPanel = domain.Idle()
	c.state.CartPanel = domain.Idle()
	c.state.StatusPanel = domain.Idle()
	c.resetPendingOrder()
}
