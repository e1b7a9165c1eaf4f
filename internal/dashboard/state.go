package dashboard

import "github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"

// State is the whole dashboard: session, catalogue, cart and order
// mirrors, the pending order, the active view and the per-panel status
// channels. Mutated only by Controller handlers.
type State struct {
	Session    *domain.Session       `json:"session"`
	CustomerID *int64                `json:"customerId"`
	Products   []domain.Product      `json:"products"`
	Cart       *domain.CartSnapshot  `json:"cart"`
	Orders     []domain.OrderSummary `json:"orders"`
	Pending    *domain.PendingOrder  `json:"pending"`

	ActiveView domain.View `json:"activeView"`

	SigninPanel  domain.PanelStatus `json:"signinPanel"`
	SignupPanel  domain.PanelStatus `json:"signupPanel"`
	CartPanel    domain.PanelStatus `json:"cartPanel"`
	PendingPanel domain.PanelStatus `json:"pendingPanel"`
	StatusPanel  domain.PanelStatus `json:"statusPanel"`
}

func newState() State {
	return State{
		ActiveView:   domain.ViewCatalogue,
		SigninPanel:  domain.Idle(),
		SignupPanel:  domain.Idle(),
		CartPanel:    domain.Idle(),
		PendingPanel: domain.Idle(),
		StatusPanel:  domain.Idle(),
	}
}

// clone returns a copy safe to hand to the view layer while handlers
// keep mutating the original.
func (s State) clone() State {
	out := s
	if s.Session != nil {
		session := *s.Session
		out.Session = &session
	}
	if s.CustomerID != nil {
		id := *s.CustomerID
		out.CustomerID = &id
	}
	if s.Products != nil {
		out.Products = append([]domain.Product(nil), s.Products...)
	}
	if s.Cart != nil {
		cart := *s.Cart
		cart.Items = append([]domain.CartItem(nil), s.Cart.Items...)
		out.Cart = &cart
	}
	if s.Orders != nil {
		out.Orders = append([]domain.OrderSummary(nil), s.Orders...)
	}
	if s.Pending != nil {
		pending := *s.Pending
		pending.Items = append([]domain.CartItem(nil), s.Pending.Items...)
		out.Pending = &pending
	}
	return out
}
