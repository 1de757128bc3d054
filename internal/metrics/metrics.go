package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Shopping metrics
	SessionsCreated prometheus.Counter
	SessionsExpired prometheus.Counter
	ActiveSessions  prometheus.Gauge
	CartUnitsAdded  prometheus.Counter
	CartsCleared    prometheus.Counter
	ListsSaved      prometheus.Counter
	ListsDeleted    prometheus.Counter
	ItemsToggled    prometheus.Counter
}

// NewCollector creates a collector with its own registry, so several
// collectors can coexist in tests
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of shopping sessions created",
		}),
		SessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Total number of idle sessions evicted",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of live shopping sessions",
		}),
		CartUnitsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_units_added_total",
			Help:      "Total quantity added to carts",
		}),
		CartsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carts_cleared_total",
			Help:      "Total number of carts cleared",
		}),
		ListsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lists_saved_total",
			Help:      "Total number of shopping lists saved",
		}),
		ListsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lists_deleted_total",
			Help:      "Total number of shopping lists deleted",
		}),
		ItemsToggled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_items_toggled_total",
			Help:      "Total number of saved-list item check toggles",
		}),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.SessionsCreated,
		c.SessionsExpired,
		c.ActiveSessions,
		c.CartUnitsAdded,
		c.CartsCleared,
		c.ListsSaved,
		c.ListsDeleted,
		c.ItemsToggled,
	)

	return c
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) SessionCreated() {
	c.SessionsCreated.Inc()
	c.ActiveSessions.Inc()
}

func (c *Collector) SessionEnded(expired bool) {
	if expired {
		c.SessionsExpired.Inc()
	}
	c.ActiveSessions.Dec()
}

func (c *Collector) CartAdded(quantity int) {
	c.CartUnitsAdded.Add(float64(quantity))
}

func (c *Collector) CartCleared() {
	c.CartsCleared.Inc()
}

func (c *Collector) ListSaved() {
	c.ListsSaved.Inc()
}

func (c *Collector) ListDeleted() {
	c.ListsDeleted.Inc()
}

func (c *Collector) ItemToggled() {
	c.ItemsToggled.Inc()
}
