package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/config"
	"clinic-engagement-engine/pkg/handlers"
	"clinic-engagement-engine/pkg/metrics"
)

func NewRouter(engine handlers.Engine, cfg *config.Config, logger *logrus.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *mux.Router {
	handler := handlers.NewHandler(engine, logger, cfg.PodID)

	router := mux.NewRouter()

	// API routes
	router.HandleFunc("/sessions", handler.OpenSession).Methods("POST")
	router.HandleFunc("/sessions/{id}/utterances", handler.SubmitUtterance).Methods("POST")
	router.HandleFunc("/sessions/{id}/messages", handler.Transcript).Methods("GET")
	router.HandleFunc("/sessions/{id}", handler.CloseSession).Methods("DELETE")
	router.HandleFunc("/health", handler.Health).Methods("GET")
	router.HandleFunc("/status", handler.Status).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")

	router.Use(loggingMiddleware(logger, m))

	return router
}

func NewHTTPServer(engine handlers.Engine, cfg *config.Config, logger *logrus.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(engine, cfg, logger, m, gatherer),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *logrus.Logger, m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			m.HTTPRequestsProcessed.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
				"remote":   r.RemoteAddr,
			}).Debug("HTTP request processed")
		})
	}
}
