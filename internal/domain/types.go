package domain

// Product is a catalogue entry. Read-only on this side; the store service
// owns pricing and the active flag.
type Product struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Active      bool    `json:"active"`
}

type CartItem struct {
	ProductID int64   `json:"productId"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartSnapshot is the server-authoritative cart state as of the last
// successful call. Totals are never recomputed locally.
type CartSnapshot struct {
	CustomerID int64      `json:"customerId"`
	Items      []CartItem `json:"items"`
	CartTotal  float64    `json:"cartTotal"`
}

func (s *CartSnapshot) ItemCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

type OrderItem struct {
	ProductID   *int64  `json:"productId"`
	ProductSKU  *string `json:"productSku"`
	ProductName *string `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type OrderSummary struct {
	OrderID    int64       `json:"orderId"`
	OrderTotal float64     `json:"orderTotal"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
	Items      []OrderItem `json:"items"`
}

// OrderReceipt is the immediate result of order creation, authoritative
// for the new order's identity.
type OrderReceipt struct {
	OrderID       int64  `json:"orderId"`
	Status        string `json:"status"`
	CorrelationID string `json:"correlationId"`
}

type CustomerProfile struct {
	CustomerID int64  `json:"customerId"`
	FullName   string `json:"fullName"`
}

type Session struct {
	Username string `json:"username"`
}

// PendingOrder holds the most recently confirmed order for the
// confirmation panel, with the cart contents snapshotted at confirmation
// time. At most one exists; a new confirmation replaces any prior one.
type PendingOrder struct {
	Order OrderReceipt `json:"order"`
	Items []CartItem   `json:"items"`
	Total float64      `json:"total"`
}
