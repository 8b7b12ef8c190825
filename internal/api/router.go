// Package api exposes the morphology engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/analyze?word=<word>
//	GET /api/expand?root=<root>[&verb_type=<class>]
//	GET /api/expand/simple?root=<root>[&verb_type=<class>]
//	GET /api/generate?root=<root>[&tense=perfective][&subject=3sm][&verb_type=<class>]
//	GET /api/derived?root=<root>&class=<class>[&verb_type=<class>]
//	GET /api/stems?root=<root>[&code=<stem>]
//	GET /api/templates
//	GET /api/health
//	GET /metrics
package api

import (
	"net/http"

	"github.com/ethiomorph/ethiomorph"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Options configures NewRouter.
type Options struct {
	Logger *zap.Logger
	// Metrics defaults to a fresh collector set in the "ethiomorph" namespace.
	Metrics *Metrics
	// CORSOrigins defaults to any origin.
	CORSOrigins []string
}

// NewRouter builds the HTTP handler serving engine.
func NewRouter(engine *ethiomorph.Engine, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics("ethiomorph")
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &server{engine: engine, log: logger, metrics: metrics}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(logger, metrics))
	router.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}).Handler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/analyze", s.handleAnalyze)
		r.Get("/expand", s.handleExpand)
		r.Get("/expand/simple", s.handleExpandSimple)
		r.Get("/generate", s.handleGenerate)
		r.Get("/derived", s.handleDerived)
		r.Get("/stems", s.handleStems)
		r.Get("/templates", s.handleTemplates)
		r.Get("/health", s.handleHealth)
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
	})
	return router
}
