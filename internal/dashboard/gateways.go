package dashboard

import (
	"context"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/gateway"
)

// AuthGateway is the slice of the auth service the controller needs.
type AuthGateway interface {
	Login(ctx context.Context, credentials gateway.Credentials) (*gateway.AuthResult, error)
	Signup(ctx context.Context, credentials gateway.Credentials) (*gateway.AuthResult, error)
	Logout(ctx context.Context) error
	FetchSession(ctx context.Context) (*domain.Session, error)
}

// StoreGateway is the slice of the store service the controller needs.
type StoreGateway interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchCustomerProfile(ctx context.Context, username string) (*domain.CustomerProfile, error)
	FetchOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error)
	GetCart(ctx context.Context, customerID int64) (*domain.CartSnapshot, error)
	AddCartItem(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartSnapshot, error)
	UpdateCartItem(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartSnapshot, error)
	RemoveCartItem(ctx context.Context, customerID, productID int64) (*domain.CartSnapshot, error)
	ClearCart(ctx context.Context, customerID int64) (*domain.CartSnapshot, error)
	CreateOrder(ctx context.Context, request gateway.CreateOrderRequest) (*domain.OrderReceipt, error)
	CancelOrder(ctx context.Context, orderID int64) error
}
