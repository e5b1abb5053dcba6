package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса.
// Имя сервиса добавляется как константный лейбл ко всем метрикам.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	operationsTotal *prometheus.CounterVec
	bookingsTotal   *prometheus.CounterVec

	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpen      prometheus.Gauge
	dbPoolIdle      prometheus.Gauge
	dbPoolInUse     prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		operationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "coordinator_operations_total",
			Help:        "Total number of dispatched coordinator operations",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		bookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "coordinator_bookings_total",
			Help:        "Booking workflow outcomes",
			ConstLabels: constLabels,
		}, []string{"result"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"query"}),

		dbPoolOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		dbPoolIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		dbPoolInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of in-use database connections",
			ConstLabels: constLabels,
		}),
	}
}

// IncHTTPRequest инкрементирует счетчик HTTP запросов
func (m *Metrics) IncHTTPRequest(method, path, status string) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// ObserveHTTPDuration записывает длительность HTTP запроса
func (m *Metrics) ObserveHTTPDuration(method, path string, seconds float64) {
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncOperation инкрементирует счетчик операций координатора
func (m *Metrics) IncOperation(operation, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// IncBooking инкрементирует счетчик исходов бронирования
func (m *Metrics) IncBooking(result string) {
	m.bookingsTotal.WithLabelValues(result).Inc()
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(query string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(query).Observe(seconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbPoolOpen.Set(float64(open))
	m.dbPoolIdle.Set(float64(idle))
	m.dbPoolInUse.Set(float64(inUse))
}
