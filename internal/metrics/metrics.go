package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg             *prometheus.Registry
	SessionReloads  prometheus.Counter
	CartMutations   prometheus.Counter
	OrdersPlaced    prometheus.Counter
	OrdersCancelled prometheus.Counter
	GatewayErrors   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	sessionReloads := prometheus.NewCounter(prometheus.CounterOpts{Name: "console_session_reloads_total"})
	cartMutations := prometheus.NewCounter(prometheus.CounterOpts{Name: "console_cart_mutations_total"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "console_orders_placed_total"})
	ordersCancelled := prometheus.NewCounter(prometheus.CounterOpts{Name: "console_orders_cancelled_total"})
	gatewayErrors := prometheus.NewCounter(prometheus.CounterOpts{Name: "console_gateway_errors_total"})

	r.MustRegister(sessionReloads, cartMutations, ordersPlaced, ordersCancelled, gatewayErrors)
	return &Registry{
		reg:             r,
		SessionReloads:  sessionReloads,
		CartMutations:   cartMutations,
		OrdersPlaced:    ordersPlaced,
		OrdersCancelled: ordersCancelled,
		GatewayErrors:   gatewayErrors,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
