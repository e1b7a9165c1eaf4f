package stubstore

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUserExists         = errors.New("Username is already taken")
	ErrCustomerNotFound   = errors.New("Customer not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrItemNotFound       = errors.New("Cart item not found")
	ErrInsufficientStock  = errors.New("Insufficient stock")
	ErrOrderNotFound      = errors.New("Order not found")
	ErrNotCancellable     = errors.New("Order cannot be cancelled")
)

const OrderStatusCreated = "CREATED"
const OrderStatusCancelled = "CANCELLED"

type account struct {
	password   string
	customerID int64
	fullName   string
}

type cartLine struct {
	productID int64
	quantity  int
}

type order struct {
	id            int64
	customerID    int64
	status        string
	total         float64
	items         []domain.OrderItem
	correlationID string
	createdAt     time.Time
	updatedAt     time.Time
}

// Store is the in-memory backend state: accounts, sessions, catalogue,
// stock, carts and orders behind one mutex. All money math happens here,
// never on the console side.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]*account
	sessions     map[string]string
	products     []domain.Product
	stock        map[int64]int
	carts        map[int64][]cartLine
	orders       map[int64]*order
	nextCustomer int64
	nextOrder    int64
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]*account),
		sessions:     make(map[string]string),
		stock:        make(map[int64]int),
		carts:        make(map[int64][]cartLine),
		orders:       make(map[int64]*order),
		nextCustomer: 1,
		nextOrder:    1,
	}
}

// SeedAccount registers a user with a customer record and returns the
// customer id.
func (s *Store) SeedAccount(username, password, fullName string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAccount(username, password, fullName)
}

func (s *Store) createAccount(username, password, fullName string) int64 {
	id := s.nextCustomer
	s.nextCustomer++
	s.accounts[username] = &account{
		password:   password,
		customerID: id,
		fullName:   fullName,
	}
	return id
}

// SeedProduct adds a catalogue entry with the given stock level.
func (s *Store) SeedProduct(product domain.Product, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	s.stock[product.ID] = stock
}

func (s *Store) Signup(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[username]; exists {
		return ErrUserExists
	}
	s.createAccount(username, password, username)
	return nil
}

func (s *Store) Authenticate(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, exists := s.accounts[username]
	if !exists || acc.password != password {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Store) CreateSession(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.New().String()
	s.sessions[token] = username
	return token
}

func (s *Store) ResolveSession(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.sessions[token]
	return username, ok
}

func (s *Store) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) CustomerByUsername(username string) (*domain.CustomerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, exists := s.accounts[username]
	if !exists {
		return nil, ErrCustomerNotFound
	}
	return &domain.CustomerProfile{CustomerID: acc.customerID, FullName: acc.fullName}, nil
}

func (s *Store) productByID(id int64) (*domain.Product, bool) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], true
		}
	}
	return nil, false
}

// snapshot renders the cart with server-computed line and cart totals.
// Lock must be held.
func (s *Store) snapshot(customerID int64) *domain.CartSnapshot {
	lines := s.carts[customerID]
	items := make([]domain.CartItem, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		product, ok := s.productByID(line.productID)
		if !ok {
			continue
		}
		lineTotal := product.UnitPrice * float64(line.quantity)
		items = append(items, domain.CartItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  line.quantity,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return &domain.CartSnapshot{CustomerID: customerID, Items: items, CartTotal: total}
}

func (s *Store) GetCart(customerID int64) *domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(customerID)
}

func (s *Store) AddCartItem(customerID, productID int64, quantity int) (*domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productByID(productID); !ok {
		return nil, ErrProductNotFound
	}
	lines := s.carts[customerID]
	merged := false
	for i := range lines {
		if lines[i].productID == productID {
			lines[i].quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, cartLine{productID: productID, quantity: quantity})
	}
	s.carts[customerID] = lines
	return s.snapshot(customerID), nil
}

func (s *Store) UpdateCartItem(customerID, productID int64, quantity int) (*domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[customerID]
	for i := range lines {
		if lines[i].productID == productID {
			lines[i].quantity = quantity
			return s.snapshot(customerID), nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Store) RemoveCartItem(customerID, productID int64) (*domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[customerID]
	for i := range lines {
		if lines[i].productID == productID {
			s.carts[customerID] = append(lines[:i], lines[i+1:]...)
			return s.snapshot(customerID), nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Store) ClearCart(customerID int64) *domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
	return s.snapshot(customerID)
}

// OrderLine is a submitted order line: product and count only, prices
// come from the catalogue.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrder prices the submitted lines from the catalogue, checks and
// decrements stock, and records the order as CREATED.
func (s *Store) CreateOrder(customerID int64, lines []OrderLine) (*domain.OrderReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate stock for every line before touching any.
	for _, line := range lines {
		if _, ok := s.productByID(line.ProductID); !ok {
			return nil, ErrProductNotFound
		}
		if s.stock[line.ProductID] < line.Quantity {
			return nil, ErrInsufficientStock
		}
	}

	total := 0.0
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, _ := s.productByID(line.ProductID)
		s.stock[line.ProductID] -= line.Quantity
		total += product.UnitPrice * float64(line.Quantity)
		productID := product.ID
		sku := product.SKU
		name := product.Name
		items = append(items, domain.OrderItem{
			ProductID:   &productID,
			ProductSKU:  &sku,
			ProductName: &name,
			Quantity:    line.Quantity,
			UnitPrice:   product.UnitPrice,
		})
	}

	now := time.Now().UTC()
	o := &order{
		id:            s.nextOrder,
		customerID:    customerID,
		status:        OrderStatusCreated,
		total:         total,
		items:         items,
		correlationID: uuid.New().String(),
		createdAt:     now,
		updatedAt:     now,
	}
	s.nextOrder++
	s.orders[o.id] = o

	return &domain.OrderReceipt{
		OrderID:       o.id,
		Status:        o.status,
		CorrelationID: o.correlationID,
	}, nil
}

func (s *Store) Orders(customerID int64) []domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	summaries := make([]domain.OrderSummary, 0)
	for id := int64(1); id < s.nextOrder; id++ {
		o, exists := s.orders[id]
		if !exists || o.customerID != customerID {
			continue
		}
		summaries = append(summaries, domain.OrderSummary{
			OrderID:    o.id,
			OrderTotal: o.total,
			Status:     o.status,
			CreatedAt:  o.createdAt.Format(time.RFC3339),
			UpdatedAt:  o.updatedAt.Format(time.RFC3339),
			Items:      append([]domain.OrderItem(nil), o.items...),
		})
	}
	return summaries
}

// CancelOrder returns reserved stock and marks the order CANCELLED. Only
// freshly created orders can be cancelled.
func (s *Store) CancelOrder(orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[orderID]
	if !exists {
		return ErrOrderNotFound
	}
	if o.status != OrderStatusCreated {
		return ErrNotCancellable
	}
	for _, item := range o.items {
		if item.ProductID != nil {
			s.stock[*item.ProductID] += item.Quantity
		}
	}
	o.status = OrderStatusCancelled
	o.updatedAt = time.Now().UTC()
	return nil
}

// OrderStatus reports the current status for the legacy reserve endpoint.
func (s *Store) OrderStatus(orderID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[orderID]
	if !exists {
		return "", ErrOrderNotFound
	}
	return o.status, nil
}
