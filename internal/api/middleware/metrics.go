package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// MetricsCollector интерфейс сборщика HTTP метрик
type MetricsCollector interface {
	IncHTTPRequest(method, path, status string)
	ObserveHTTPDuration(method, path string, seconds float64)
}

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает счетчик запросов и гистограмму длительности.
// Путь берется из шаблона роута mux, чтобы не раздувать кардинальность
// лейблов значениями path-параметров.
func MetricsMiddleware(collector MetricsCollector, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			collector.IncHTTPRequest(r.Method, path, strconv.Itoa(rec.status))
			collector.ObserveHTTPDuration(r.Method, path, time.Since(start).Seconds())
		})
	}
}
