// internal/server/server.go

// Package server wires the intake routes onto one HTTP listener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"waitlist-service/internal/common/config"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/metrics"
	"waitlist-service/internal/common/observability"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Relay    httprouter.Handle
	Recorder httprouter.Handle
	Export   httprouter.Handle
}

type Server struct {
	config   *config.ServerConfig
	router   *httprouter.Router
	obs      *observability.Observability
	logger   logger.Logger
	postgres Pinger
	redis    Pinger
	srv      *http.Server
}

func New(cfg *config.ServerConfig, handlers Handlers, obs *observability.Observability, postgres, redis Pinger, log logger.Logger) *Server {
	s := &Server{
		config:   cfg,
		router:   httprouter.New(),
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
		postgres: postgres,
		redis:    redis,
	}

	s.router.POST("/api/waitlist", s.instrument("/api/waitlist", handlers.Relay))
	s.router.POST("/api/applications", s.instrument("/api/applications", handlers.Recorder))
	s.router.GET("/api/applications", s.instrument("/api/applications", handlers.Export))
	s.router.GET("/health", s.instrument("/health", s.health))
	s.router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.srv = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// instrument records request count and latency per route.
func (s *Server) instrument(route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next(sw, r, p)

		duration := time.Since(start)
		metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequestProcessed(r.Context(), route, strconv.Itoa(sw.status))
			s.obs.RecordRequestDuration(r.Context(), route, duration)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"method":   r.Method,
			"route":    route,
			"status":   sw.status,
			"duration": duration.String(),
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]string{}

	if s.postgres != nil {
		if err := s.postgres.Ping(ctx); err != nil {
			checks["postgres"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["postgres"] = "ok"
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "ok"
		}
	}

	statusText := "healthy"
	if status != http.StatusOK {
		statusText = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": statusText,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) Start() error {
	s.logger.Info("server listening", map[string]interface{}{
		"addr": s.config.Addr(),
	})
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
