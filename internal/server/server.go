// Package server exposes the validation and adaptation pipeline over HTTP.
//
// The API mirrors the pipeline stages:
//
//	POST /api/validate                - rule engine only
//	POST /api/validate/comprehensive  - rule engine + brand guardian
//	POST /api/validate/quick          - copy-only check, no layout required
//	POST /api/adapt                   - adapt to one target format
//	POST /api/adapt/batch             - adapt to several target formats
//	GET  /api/formats                 - format catalog
//	GET  /api/rules                   - rule catalog
//	GET  /healthz                     - liveness probe
//
// Stored layouts (optional, requires a store backend):
//
//	POST   /api/layouts       - save a layout
//	GET    /api/layouts       - list layouts, ?campaign= filters
//	GET    /api/layouts/{id}  - fetch one layout
//	DELETE /api/layouts/{id}  - remove a layout
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/store"
)

// Server holds the shared dependencies for all handlers.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// Config configures a server instance.
type Config struct {
	// Runner executes validation and adaptation. Required.
	Runner *pipeline.Runner

	// Store persists layouts. Optional; layout endpoints return 503 when nil.
	Store store.Store

	// Logger for request logging. Defaults to log.Default().
	Logger *log.Logger
}

// New creates a server from the given config.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: logger,
	}
}

// Router builds the chi router with all routes and middleware mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/validate/comprehensive", s.handleValidateComprehensive)
		r.Post("/validate/quick", s.handleValidateQuick)
		r.Post("/adapt", s.handleAdapt)
		r.Post("/adapt/batch", s.handleAdaptBatch)
		r.Get("/formats", s.handleFormats)
		r.Get("/rules", s.handleRules)

		r.Route("/layouts", func(r chi.Router) {
			r.Post("/", s.handleLayoutCreate)
			r.Get("/", s.handleLayoutList)
			r.Get("/{id}", s.handleLayoutGet)
			r.Delete("/{id}", s.handleLayoutDelete)
		})
	})

	return r
}

// requestLogger logs each request with method, path, status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
