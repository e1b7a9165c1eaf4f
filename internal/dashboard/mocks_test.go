package dashboard

import (
	"context"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/metrics"
)

// MockAuthGateway implements AuthGateway for testing
type MockAuthGateway struct {
	Session    *domain.Session
	SessionErr error
	LoginRes   *gateway.AuthResult
	LoginErr   error
	SignupRes  *gateway.AuthResult
	SignupErr  error
	LogoutErr  error

	Calls []string
}

func (m *MockAuthGateway) Login(_ context.Context, _ gateway.Credentials) (*gateway.AuthResult, error) {
	m.Calls = append(m.Calls, "Login")
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return m.LoginRes, nil
}

func (m *MockAuthGateway) Signup(_ context.Context, _ gateway.Credentials) (*gateway.AuthResult, error) {
	m.Calls = append(m.Calls, "Signup")
	if m.SignupErr != nil {
		return nil, m.SignupErr
	}
	return m.SignupRes, nil
}

func (m *MockAuthGateway) Logout(_ context.Context) error {
	m.Calls = append(m.Calls, "Logout")
	return m.LogoutErr
}

func (m *MockAuthGateway) FetchSession(_ context.Context) (*domain.Session, error) {
	m.Calls = append(m.Calls, "FetchSession")
	if m.SessionErr != nil {
		return nil, m.SessionErr
	}
	return m.Session, nil
}

// MockStoreGateway implements StoreGateway for testing
type MockStoreGateway struct {
	Products    []domain.Product
	ProductsErr error
	Profile     *domain.CustomerProfile
	ProfileErr  error
	Orders      []domain.OrderSummary
	OrdersErr   error
	GetCartSnap *domain.CartSnapshot
	GetCartErr  error
	MutateSnap  *domain.CartSnapshot
	MutateErr   error
	ClearSnap   *domain.CartSnapshot
	ClearErr    error
	Receipt     *domain.OrderReceipt
	CreateErr   error
	CancelErr   error

	CreateRequests []gateway.CreateOrderRequest
	CancelledIDs   []int64
	Calls          []string
}

func (m *MockStoreGateway) FetchProducts(_ context.Context) ([]domain.Product, error) {
	m.Calls = append(m.Calls, "FetchProducts")
	if m.ProductsErr != nil {
		return nil, m.ProductsErr
	}
	return m.Products, nil
}

func (m *MockStoreGateway) FetchCustomerProfile(_ context.Context, _ string) (*domain.CustomerProfile, error) {
	m.Calls = append(m.Calls, "FetchCustomerProfile")
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return m.Profile, nil
}

func (m *MockStoreGateway) FetchOrders(_ context.Context, _ int64) ([]domain.OrderSummary, error) {
	m.Calls = append(m.Calls, "FetchOrders")
	if m.OrdersErr != nil {
		return nil, m.OrdersErr
	}
	return m.Orders, nil
}

func (m *MockStoreGateway) GetCart(_ context.Context, _ int64) (*domain.CartSnapshot, error) {
	m.Calls = append(m.Calls, "GetCart")
	if m.GetCartErr != nil {
		return nil, m.GetCartErr
	}
	return m.GetCartSnap, nil
}

func (m *MockStoreGateway) AddCartItem(_ context.Context, _, _ int64, _ int) (*domain.CartSnapshot, error) {
	m.Calls = append(m.Calls, "AddCartItem")
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	return m.MutateSnap, nil
}

func (m *MockStoreGateway) UpdateCartItem(_ context.Context, _, _ int64, _ int) (*domain.CartSnapshot, error) {
	m.Calls = append(m.Calls, "UpdateCartItem")
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	return m.MutateSnap, nil
}

func (m *MockStoreGateway) RemoveCartItem(_ context.Context, _, _ int64) (*domain.CartSnapshot, error) {
	m.Calls = append(m.Calls, "RemoveCartItem")
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	return m.MutateSnap, nil
}

func (m *MockStoreGateway) ClearCart(_ context.Context, _ int64) (*domain.CartSnapshot, error) {
	m.Calls = append(m.Calls, "ClearCart")
	if m.ClearErr != nil {
		return nil, m.ClearErr
	}
	return m.ClearSnap, nil
}

func (m *MockStoreGateway) CreateOrder(_ context.Context, request gateway.CreateOrderRequest) (*domain.OrderReceipt, error) {
	m.Calls = append(m.Calls, "CreateOrder")
	m.CreateRequests = append(m.CreateRequests, request)
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.Receipt, nil
}

func (m *MockStoreGateway) CancelOrder(_ context.Context, orderID int64) error {
	m.Calls = append(m.Calls, "CancelOrder")
	m.CancelledIDs = append(m.CancelledIDs, orderID)
	return m.CancelErr
}

// newTestController creates a fully wired Controller for testing
func newTestController(auth *MockAuthGateway, store *MockStoreGateway) *Controller {
	return NewController(auth, store, metrics.NewRegistry())
}

// loggedInController returns a controller with a resolved customer so
// cart and checkout preconditions pass.
func loggedInController(store *MockStoreGateway, customerID int64) *Controller {
	c := newTestController(&MockAuthGateway{}, store)
	c.state.Session = &domain.Session{Username: "demo"}
	c.state.CustomerID = &customerID
	return c
}
