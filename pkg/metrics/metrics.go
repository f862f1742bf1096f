package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration  *prometheus.HistogramVec
	DBQueryErrors    *prometheus.CounterVec
	DBOpenConns      prometheus.Gauge
	DBInUseConns     prometheus.Gauge
	DBIdleConns      prometheus.Gauge
	DBWaitCountTotal prometheus.Gauge

	FittableSlotsOffered  prometheus.Histogram
	FittableSlotsReturned prometheus.Histogram
	ImportRowsTotal       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
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
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCountTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		FittableSlotsOffered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "fittable_slots_offered",
			Help:        "Number of open slots received from the scheduling service per request",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 8, 10),
		}),
		FittableSlotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "fittable_slots_returned",
			Help:        "Number of slots usable as a booking start per request",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 8, 10),
		}),
		ImportRowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "service_import_rows_total",
			Help:        "Rows processed by the service import, by stage and status",
			ConstLabels: labels,
		}, []string{"stage", "status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCountTotal,
		m.FittableSlotsOffered,
		m.FittableSlotsReturned,
		m.ImportRowsTotal,
	)

	return m
}

// RecordFittableSlots фиксирует результат подбора слотов
// Безопасно вызывать на nil (метрики выключены)
func (m *Metrics) RecordFittableSlots(offered, returned int) {
	if m == nil {
		return
	}
	m.FittableSlotsOffered.Observe(float64(offered))
	m.FittableSlotsReturned.Observe(float64(returned))
}

// RecordImportRows увеличивает счётчик строк импорта
// Безопасно вызывать на nil (метрики выключены)
func (m *Metrics) RecordImportRows(stage, status string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.ImportRowsTotal.WithLabelValues(stage, status).Add(float64(count))
}
