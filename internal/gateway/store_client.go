package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

// StoreClient wraps the store service endpoints: catalogue, customer
// lookup, cart CRUD and order operations. Pure call/response mapping.
type StoreClient struct {
	baseURL string
	client  *http.Client
}

func NewStoreClient(baseURL string, client *http.Client) *StoreClient {
	return &StoreClient{
		baseURL: baseURL,
		client:  client,
	}
}

type OrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID int64            `json:"customerId"`
	Items      []OrderItemInput `json:"items"`
}

type ReserveStockResult struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

func (c *StoreClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := doJSON(ctx, c.client, http.MethodGet, c.baseURL+"/products", nil, &products, "Failed to load products")
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *StoreClient) FetchCustomerProfile(ctx context.Context, username string) (*domain.CustomerProfile, error) {
	endpoint := c.baseURL + "/customers/by-username/" + url.PathEscape(username)
	var profile domain.CustomerProfile
	err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &profile, "Failed to resolve customer")
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *StoreClient) FetchOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/orders", c.baseURL, customerID)
	var orders []domain.OrderSummary
	err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &orders, "Failed to load orders")
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *StoreClient) GetCart(ctx context.Context, customerID int64) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/cart", c.baseURL, customerID)
	var snapshot domain.CartSnapshot
	err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &snapshot, "Failed to load cart")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *StoreClient) AddCartItem(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/cart/items", c.baseURL, customerID)
	body := map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}
	var snapshot domain.CartSnapshot
	err := doJSON(ctx, c.client, http.MethodPost, endpoint, body, &snapshot, "Failed to add item to cart")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *StoreClient) UpdateCartItem(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/cart/items/%d", c.baseURL, customerID, productID)
	body := map[string]interface{}{"quantity": quantity}
	var snapshot domain.CartSnapshot
	err := doJSON(ctx, c.client, http.MethodPut, endpoint, body, &snapshot, "Failed to update cart item")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *StoreClient) RemoveCartItem(ctx context.Context, customerID, productID int64) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/cart/items/%d", c.baseURL, customerID, productID)
	var snapshot domain.CartSnapshot
	err := doJSON(ctx, c.client, http.MethodDelete, endpoint, nil, &snapshot, "Failed to remove cart item")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *StoreClient) ClearCart(ctx context.Context, customerID int64) (*domain.CartSnapshot, error) {
	endpoint := fmt.Sprintf("%s/customers/%d/cart", c.baseURL, customerID)
	var snapshot domain.CartSnapshot
	err := doJSON(ctx, c.client, http.MethodDelete, endpoint, nil, &snapshot, "Failed to clear cart")
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *StoreClient) CreateOrder(ctx context.Context, request CreateOrderRequest) (*domain.OrderReceipt, error) {
	var receipt domain.OrderReceipt
	err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/orders", request, &receipt, "Failed to create order")
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *StoreClient) CancelOrder(ctx context.Context, orderID int64) error {
	endpoint := fmt.Sprintf("%s/orders/%d/cancel", c.baseURL, orderID)
	return doJSON(ctx, c.client, http.MethodPost, endpoint, nil, nil, "Failed to cancel order")
}

// ReserveOrder is part of the earlier two-step reserve+confirm protocol.
// The backend still serves it; the checkout flow no longer calls it.
func (c *StoreClient) ReserveOrder(ctx context.Context, orderID int64) (*ReserveStockResult, error) {
	endpoint := fmt.Sprintf("%s/orders/%d/reserve", c.baseURL, orderID)
	var result ReserveStockResult
	err := doJSON(ctx, c.client, http.MethodPost, endpoint, nil, &result, "Failed to reserve stock")
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmPayment is the legacy payment-confirmation call; see ReserveOrder.
func (c *StoreClient) ConfirmPayment(ctx context.Context, orderID int64) error {
	endpoint := fmt.Sprintf("%s/orders/%d/payment", c.baseURL, orderID)
	return doJSON(ctx, c.client, http.MethodPost, endpoint, nil, nil, "Failed to confirm payment")
}
