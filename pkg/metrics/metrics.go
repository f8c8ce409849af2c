package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы попытки бронирования
const (
	BookingOutcomeCreated  = "created"
	BookingOutcomeConflict = "conflict"
	BookingOutcomeFailed   = "failed"
	BookingOutcomeInvalid  = "invalid"
)

// Metrics набор метрик сервиса
// Каждый экземпляр владеет собственным реестром, поэтому New можно вызывать повторно (например, в тестах)
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	BookingAttemptsTotal     *prometheus.CounterVec
	AvailabilityFetchesTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}, []string{"db"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}, []string{"db"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}, []string{"db"}),

		BookingAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_attempts_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),

		AvailabilityFetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "availability_fetches_total",
			Help:      "Booked-slots fetches by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.BookingAttemptsTotal,
		m.AvailabilityFetchesTotal,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBooking учитывает исход попытки бронирования
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveAvailabilityFetch учитывает результат запроса занятых слотов
func (m *Metrics) ObserveAvailabilityFetch(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.AvailabilityFetchesTotal.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
