package middleware

import (
	"net/http"
	"strconv"
	"time"

	"hospital-admin-api/internal/monitoring"

	"github.com/gorilla/mux"
)

type MetricsMiddleware struct {
}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, req)

		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		monitoring.RequestsTotal.WithLabelValues(
			req.Method,
			path,
			strconv.Itoa(recorder.status),
		).Inc()

		monitoring.RequestDuration.WithLabelValues(
			req.Method,
			path,
		).Observe(time.Since(start).Seconds())
	})
}
