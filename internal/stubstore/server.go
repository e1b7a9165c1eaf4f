package stubstore

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SessionCookie carries the stub auth session, standing in for the real
// auth service's cookie credential.
const SessionCookie = "STORE_SESSION"

// Server exposes the backend REST contract over the in-memory store:
// the auth endpoints under /api/auth and the store endpoints under /api.
type Server struct {
	store *Store
}

func NewServer(store *Store) *Server {
	return &Server{store: store}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/signup", s.signup)
		r.Post("/logout", s.logout)
		r.Get("/me", s.me)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.products)
		r.Get("/customers/by-username/{username}", s.customerByUsername)
		r.Get("/customers/{customerID}/orders", s.customerOrders)
		r.Get("/customers/{customerID}/cart", s.getCart)
		r.Delete("/customers/{customerID}/cart", s.clearCart)
		r.Post("/customers/{customerID}/cart/items", s.addCartItem)
		r.Put("/customers/{customerID}/cart/items/{productID}", s.updateCartItem)
		r.Delete("/customers/{customerID}/cart/items/{productID}", s.removeCartItem)
		r.Post("/orders", s.createOrder)
		r.Post("/orders/{orderID}/cancel", s.cancelOrder)
		r.Post("/orders/{orderID}/reserve", s.reserveOrder)
		r.Post("/orders/{orderID}/payment", s.confirmPayment)
	})

	return r
}

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type cartItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type createOrderDTO struct {
	CustomerID int64         `json:"customerId"`
	Items      []cartItemDTO `json:"items"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.store.Authenticate(req.Username, req.Password); err != nil {
		writeMessage(w, http.StatusUnauthorized, err.Error())
		return
	}
	s.setSession(w, req.Username)
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Signed in successfully.",
		"username": req.Username,
	})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.store.Signup(req.Username, req.Password); err != nil {
		writeMessage(w, http.StatusConflict, err.Error())
		return
	}
	s.setSession(w, req.Username)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "Account created.",
		"username": req.Username,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		s.store.DeleteSession(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", MaxAge: -1, Path: "/"})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

func (s *Server) products(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Products())
}

func (s *Server) customerByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.CustomerByUsername(chi.URLParam(r, "username"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) customerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Orders(customerID))
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetCart(customerID))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.ClearCart(customerID))
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	var req cartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snapshot, err := s.store.AddCartItem(customerID, req.ProductID, req.Quantity)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}
	var req cartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snapshot, err := s.store.UpdateCartItem(customerID, productID, req.Quantity)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerID")
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}
	snapshot, err := s.store.RemoveCartItem(customerID, productID)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	lines := make([]OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	receipt, err := s.store.CreateOrder(req.CustomerID, lines)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, ErrProductNotFound) {
			status = http.StatusNotFound
		}
		writeMessage(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	if err := s.store.CancelOrder(orderID); err != nil {
		status := http.StatusConflict
		if errors.Is(err, ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		writeMessage(w, status, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

// reserveOrder and confirmPayment keep the legacy two-step endpoints
// alive; the console's checkout flow no longer calls them.
func (s *Server) reserveOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	status, err := s.store.OrderStatus(orderID)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orderId": orderID, "status": status})
}

func (s *Server) confirmPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}
	if _, err := s.store.OrderStatus(orderID); err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setSession(w http.ResponseWriter, username string) {
	token := s.store.CreateSession(username)
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: token, Path: "/"})
}

func (s *Server) session(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	return s.store.ResolveSession(cookie.Value)
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, param+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
