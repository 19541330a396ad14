package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     *prometheus.GaugeVec
	DBInUseConns    *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec
	DBWaitCount     *prometheus.GaugeVec

	SlotsGenerated   *prometheus.CounterVec
	ConflictsFound   *prometheus.CounterVec
	BatchItemsFailed *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		SlotsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_slots_generated_total",
			Help:        "Generated time slots by availability outcome",
			ConstLabels: constLabels,
		}, []string{"available"}),

		ConflictsFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_rule_conflicts_total",
			Help:        "Availability rule writes rejected because of overlap",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		BatchItemsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_batch_items_failed_total",
			Help:        "Failed items in bulk and copy operations",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}
}

// ObserveSlots учитывает сгенерированные слоты. Безопасен для nil.
func (m *Metrics) ObserveSlots(available, unavailable int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues("true").Add(float64(available))
	m.SlotsGenerated.WithLabelValues("false").Add(float64(unavailable))
}

// ObserveConflict учитывает отклонённую из-за пересечения запись. Безопасен для nil.
func (m *Metrics) ObserveConflict(operation string) {
	if m == nil {
		return
	}
	m.ConflictsFound.WithLabelValues(operation).Inc()
}

// ObserveBatchFailures учитывает неуспешные элементы пакетной операции. Безопасен для nil.
func (m *Metrics) ObserveBatchFailures(operation string, failed int) {
	if m == nil || failed == 0 {
		return
	}
	m.BatchItemsFailed.WithLabelValues(operation).Add(float64(failed))
}
