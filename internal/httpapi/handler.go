package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/dashboard"
	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

// Handler projects controller state over HTTP. It holds no state of its
// own; every response is rendered from a fresh controller snapshot.
type Handler struct {
	controller *dashboard.Controller
}

func NewHandler(controller *dashboard.Controller) *Handler {
	return &Handler{controller: controller}
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type addItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type updateQuantityDTO struct {
	Quantity int `json:"quantity"`
}

// dashboardResponse is the full dashboard render: the shared header
// bits plus the projection of whichever panel is active.
type dashboardResponse struct {
	Session    *domain.Session    `json:"session"`
	ActiveView domain.View        `json:"activeView"`
	CartCount  int                `json:"cartCount"`
	OrderCount int                `json:"orderCount"`
	Panel      interface{}        `json:"panel"`
	Signin     domain.PanelStatus `json:"signin"`
	Signup     domain.PanelStatus `json:"signup"`
}

type cataloguePanel struct {
	Products []domain.Product     `json:"products"`
	Cart     *domain.CartSnapshot `json:"cart"`
}

type cartPanel struct {
	Cart   *domain.CartSnapshot `json:"cart"`
	Status domain.PanelStatus   `json:"status"`
}

type confirmPanel struct {
	Order  domain.OrderReceipt `json:"order"`
	Items  []domain.CartItem   `json:"items"`
	Total  float64             `json:"total"`
	Status domain.PanelStatus  `json:"status"`
}

type statusPanel struct {
	Orders []domain.OrderSummary `json:"orders"`
	Status domain.PanelStatus    `json:"status"`
}

type historyPanel struct {
	Orders []domain.OrderSummary `json:"orders"`
}

func renderDashboard(state dashboard.State) dashboardResponse {
	resp := dashboardResponse{
		Session:    state.Session,
		ActiveView: state.ActiveView,
		CartCount:  state.Cart.ItemCount(),
		OrderCount: len(state.Orders),
		Signin:     state.SigninPanel,
		Signup:     state.SignupPanel,
	}

	switch state.ActiveView {
	case domain.ViewCatalogue:
		resp.Panel = cataloguePanel{Products: state.Products, Cart: state.Cart}
	case domain.ViewCart:
		resp.Panel = cartPanel{Cart: state.Cart, Status: state.CartPanel}
	case domain.ViewConfirm:
		// The confirmation panel only renders with a pending order.
		if state.Pending != nil {
			resp.Panel = confirmPanel{
				Order:  state.Pending.Order,
				Items:  state.Pending.Items,
				Total:  state.Pending.Total,
				Status: state.PendingPanel,
			}
		}
	case domain.ViewStatus:
		resp.Panel = statusPanel{Orders: state.Orders, Status: state.StatusPanel}
	case domain.ViewHistory:
		resp.Panel = historyPanel{Orders: state.Orders}
	}
	return resp
}

func (h *Handler) renderCurrent(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, renderDashboard(h.controller.State()))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
