// Package server exposes a planner.Network over HTTP.
//
// Routes:
//
//	GET  /healthz         liveness probe
//	GET  /api/locations   location list and connectivity
//	POST /api/trips       plan one trip: {"start":0,"end":2,"mode":"D"}
//	GET  /metrics         Prometheus exposition
//
// Every response carries an X-Request-ID header; an incoming one is reused.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/planner"
)

// Server routes HTTP requests to a read-only network.
type Server struct {
	network  *planner.Network
	cfg      config.ServerConfig
	log      *zap.Logger
	router   *mux.Router
	validate *validator.Validate
}

// New wires the routes. A nil logger is replaced with a no-op one.
func New(nw *planner.Network, cfg config.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		network:  nw,
		cfg:      cfg,
		log:      log.Named("server"),
		router:   mux.NewRouter(),
		validate: validator.New(),
	}
	s.router.Use(s.requestID, s.accessLog)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/locations", s.handleLocations).Methods(http.MethodGet)
	s.router.HandleFunc("/api/trips", s.handlePlan).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout. It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// statusRecorder captures the response code for access logs and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog logs one line per request and counts it by route template.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		observeRequest(route, r.Method, rec.status)
		s.log.Debug("request",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(began)))
	})
}
