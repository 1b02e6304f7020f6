package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Методы записи безопасно вызывать на nil, когда метрики выключены в конфиге.
// Каждый экземпляр использует собственный registry, поэтому New можно вызывать несколько раз (в тестах)
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CommandsTotal    *prometheus.CounterVec
	LimitViolations  *prometheus.CounterVec
	StorageErrors    *prometheus.CounterVec
	TelegramRequests *prometheus.CounterVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"path", "method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"path", "method"},
		),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bot_commands_total",
				Help:        "Processed chat commands by kind",
				ConstLabels: constLabels,
			},
			[]string{"command"},
		),
		LimitViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bot_limit_violations_total",
				Help:        "Rejected day-off dates by violation kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		StorageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bot_storage_errors_total",
				Help:        "Calendar storage failures by operation",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		TelegramRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bot_telegram_requests_total",
				Help:        "Telegram Bot API calls by method and result",
				ConstLabels: constLabels,
			},
			[]string{"method", "result"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Duration of database queries",
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CommandsTotal,
		m.LimitViolations,
		m.StorageErrors,
		m.TelegramRequests,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для проверки собранных значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(path, method, http.StatusText(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// IncCommand увеличивает счетчик обработанных команд
func (m *Metrics) IncCommand(command string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command).Inc()
}

// IncLimitViolation увеличивает счетчик отклоненных дат
func (m *Metrics) IncLimitViolation(kind string) {
	if m == nil {
		return
	}
	m.LimitViolations.WithLabelValues(kind).Inc()
}

// IncStorageError увеличивает счетчик ошибок хранилища
func (m *Metrics) IncStorageError(operation string) {
	if m == nil {
		return
	}
	m.StorageErrors.WithLabelValues(operation).Inc()
}

// IncTelegramRequest увеличивает счетчик обращений к Bot API
func (m *Metrics) IncTelegramRequest(method, result string) {
	if m == nil {
		return
	}
	m.TelegramRequests.WithLabelValues(method, result).Inc()
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
