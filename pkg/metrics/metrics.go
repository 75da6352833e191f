package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	CatalogRequestsTotal    *prometheus.CounterVec
	CatalogResultSize       *prometheus.HistogramVec
	CatalogActiveDimensions *prometheus.CounterVec

	NotificationsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}, []string{"db"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}, []string{"db"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}, []string{"db"}),

		CatalogRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_requests_total",
			Help:        "Catalog listing requests by source",
			ConstLabels: labels,
		}, []string{"source", "status"}),
		CatalogResultSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "catalog_result_size",
			Help:        "Number of yachts left after filtering",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"source"}),
		CatalogActiveDimensions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_filter_dimension_total",
			Help:        "How often each filter dimension is active",
			ConstLabels: labels,
		}, []string{"dimension"}),

		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_published_total",
			Help:        "Events published to the broker",
			ConstLabels: labels,
		}, []string{"routing_key", "status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBIdleConnections,
		m.DBInUseConnections,
		m.DBWaitCount,
		m.CatalogRequestsTotal,
		m.CatalogResultSize,
		m.CatalogActiveDimensions,
		m.NotificationsTotal,
	)

	return m
}

// ObserveHTTP фиксирует завершенный HTTP запрос
// Все Observe* методы допускают nil получатель (метрики выключены)
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDB фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDB(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveCatalog фиксирует результат выдачи каталога
func (m *Metrics) ObserveCatalog(source string, resultSize int, activeDimensions []string) {
	if m == nil {
		return
	}
	m.CatalogRequestsTotal.WithLabelValues(source, "ok").Inc()
	m.CatalogResultSize.WithLabelValues(source).Observe(float64(resultSize))
	for _, d := range activeDimensions {
		m.CatalogActiveDimensions.WithLabelValues(d).Inc()
	}
}

// ObserveCatalogError фиксирует ошибку загрузки каталога
func (m *Metrics) ObserveCatalogError(source string) {
	if m == nil {
		return
	}
	m.CatalogRequestsTotal.WithLabelValues(source, "error").Inc()
}

// ObserveNotification фиксирует публикацию события
func (m *Metrics) ObserveNotification(routingKey string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.NotificationsTotal.WithLabelValues(routingKey, status).Inc()
}
