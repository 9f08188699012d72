// Package metrics holds the Prometheus collectors of the service.
// Every Metrics value owns its own registry so tests can create as many as they need.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics Prometheus collectors for HTTP traffic and booking lifecycle
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreated     prometheus.Counter
	slotConflicts       prometheus.Counter
	statusTransitions   *prometheus.CounterVec
	paymentsProcessed   *prometheus.CounterVec
	notificationsTotal  *prometheus.CounterVec
	eventsPublishFailed *prometheus.CounterVec
}

// New creates and registers all collectors under the given service namespace.
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings successfully created",
			ConstLabels: constLabels,
		}),
		slotConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Booking attempts rejected because the slot was already reserved",
			ConstLabels: constLabels,
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Applied booking status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		paymentsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payments_processed_total",
			Help:        "Payments marked as paid",
			ConstLabels: constLabels,
		}, []string{"method"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_notifications_total",
			Help:        "Confirmation notifications by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		eventsPublishFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "events_publish_failed_total",
			Help:        "Lifecycle events that could not be published",
			ConstLabels: constLabels,
		}, []string{"routing_key"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsCreated,
		m.slotConflicts,
		m.statusTransitions,
		m.paymentsProcessed,
		m.notificationsTotal,
		m.eventsPublishFailed,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingCreated() {
	m.bookingsCreated.Inc()
}

func (m *Metrics) IncSlotConflict() {
	m.slotConflicts.Inc()
}

func (m *Metrics) IncStatusTransition(from, to string) {
	m.statusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncPaymentProcessed(method string) {
	m.paymentsProcessed.WithLabelValues(method).Inc()
}

// IncNotification records a notification outcome: sent or failed.
func (m *Metrics) IncNotification(sent bool) {
	outcome := "failed"
	if sent {
		outcome = "sent"
	}
	m.notificationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncEventPublishFailed(routingKey string) {
	m.eventsPublishFailed.WithLabelValues(routingKey).Inc()
}
