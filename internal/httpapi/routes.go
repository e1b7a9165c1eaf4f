package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

// NewRouter wires the console API: one route per user intent, plus the
// dashboard render, health and metrics.
func NewRouter(handler *Handler, metricsHandler http.Handler, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", handler.Dashboard)
		r.Post("/view/{view}", handler.SelectView)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handler.Login)
			r.Post("/signup", handler.Signup)
			r.Post("/logout", handler.Logout)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/items", handler.AddItem)
			r.Put("/items/{productID}", handler.UpdateQuantity)
			r.Delete("/items/{productID}", handler.RemoveItem)
			r.Delete("/", handler.ClearCart)
		})

		r.Post("/checkout", handler.ConfirmPayment)
		r.Post("/checkout/back", handler.BackToCart)
		r.Post("/checkout/cancel", handler.CancelPendingOrder)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/refresh", handler.RefreshOrders)
			r.Post("/{orderID}/cancel", handler.CancelOrder)
		})
	})

	return r
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderCurrent(w)
}

func (h *Handler) SelectView(w http.ResponseWriter, r *http.Request) {
	view := domain.View(chi.URLParam(r, "view"))
	if !view.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid_view", "unknown dashboard view")
		return
	}
	h.controller.SelectView(view)
	h.renderCurrent(w)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	h.controller.Login(r.Context(), req.Username, req.Password)
	h.renderCurrent(w)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	h.controller.Signup(r.Context(), req.Username, req.Password)
	h.renderCurrent(w)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout(r.Context())
	h.renderCurrent(w)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId must be positive")
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}
	h.controller.AddToCart(r.Context(), req.ProductID, req.Quantity)
	h.renderCurrent(w)
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productID must be a positive integer")
		return
	}
	var req updateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}
	h.controller.UpdateCartQuantity(r.Context(), productID, req.Quantity)
	h.renderCurrent(w)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productID must be a positive integer")
		return
	}
	h.controller.RemoveCartItem(r.Context(), productID)
	h.renderCurrent(w)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.controller.ClearCart(r.Context())
	h.renderCurrent(w)
}

func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.controller.ConfirmPayment(r.Context())
	h.renderCurrent(w)
}

func (h *Handler) BackToCart(w http.ResponseWriter, r *http.Request) {
	h.controller.BackToCart()
	h.renderCurrent(w)
}

func (h *Handler) CancelPendingOrder(w http.ResponseWriter, r *http.Request) {
	h.controller.CancelPendingOrder(r.Context())
	h.renderCurrent(w)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(chi.URLParam(r, "orderID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderID must be a positive integer")
		return
	}
	h.controller.CancelOrder(r.Context(), orderID)
	h.renderCurrent(w)
}

func (h *Handler) RefreshOrders(w http.ResponseWriter, r *http.Request) {
	h.controller.RefreshOrders(r.Context())
	h.renderCurrent(w)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
