package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	OrdersPlaced        prometheus.Counter
	NotificationsFailed *prometheus.CounterVec
	InventoryChanges    *prometheus.CounterVec
	LowStockAlerts      prometheus.Counter
}

var (
	global *Registry
	once   sync.Once
)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_orders_placed_total"})
	notificationsFailed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_notifications_failed_total",
	}, []string{"kind"})
	inventoryChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_inventory_changes_total",
	}, []string{"change_type"})
	lowStockAlerts := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_low_stock_alerts_published_total"})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests, httpDuration, ordersPlaced, notificationsFailed, inventoryChanges, lowStockAlerts,
	)
	return &Registry{
		reg:                 r,
		HTTPRequests:        httpRequests,
		HTTPDuration:        httpDuration,
		OrdersPlaced:        ordersPlaced,
		NotificationsFailed: notificationsFailed,
		InventoryChanges:    inventoryChanges,
		LowStockAlerts:      lowStockAlerts,
	}
}

// Get returns the process-wide registry, creating it on first use.
func Get() *Registry {
	once.Do(func() {
		global = NewRegistry()
	})
	return global
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
