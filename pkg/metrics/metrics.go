package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	submissionsTotal    *prometheus.CounterVec
	notificationsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		submissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_submissions_total",
				Help: "Booking submission attempts by terminal outcome",
			},
			[]string{"service", "outcome"},
		),

		notificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_notifications_total",
				Help: "Notification dispatch results by channel and status",
			},
			[]string{"service", "channel", "status"},
		),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(durationSeconds)
}

// IncSubmission фиксирует терминальный исход попытки бронирования
// outcome: succeeded | failed_validation | failed_payment_init |
// failed_payment_confirm | failed_timeout | failed_canceled
func (m *Metrics) IncSubmission(outcome string) {
	m.submissionsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncNotification фиксирует результат отправки уведомления
func (m *Metrics) IncNotification(channel, status string) {
	m.notificationsTotal.WithLabelValues(m.serviceName, channel, status).Inc()
}
