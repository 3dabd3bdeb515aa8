package service

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/student-records-api/internal/store"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// in-memory record store.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors. The store gauges
// read live counts, so scrape values always reflect current state.
func NewMetricsService(counts func() store.SummaryCounts) *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, goroutines)

	if counts != nil {
		subjects := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "store_subjects_total",
			Help: "Subjects currently in the catalog",
		}, func() float64 { return float64(counts().SubjectCount) })
		students := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "store_students_total",
			Help: "Students currently registered",
		}, func() float64 { return float64(counts().StudentCount) })
		marks := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "store_marks_total",
			Help: "Mark rows currently in the ledger",
		}, func() float64 { return float64(counts().MarkCount) })
		attendance := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "store_attendance_total",
			Help: "Attendance rows currently in the ledger",
		}, func() float64 { return float64(counts().AttendanceCount) })
		registry.MustRegister(subjects, students, marks, attendance)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"method": method, "path": path, "status": httpStatusLabel(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

func httpStatusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
