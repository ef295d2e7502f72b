// Package ui exposes the cleaning core over HTTP: dataset upload, the
// profiling report, action-queue editing with live preview, apply, and
// CSV export.
package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goscrub/app"
	"goscrub/internal"
	"goscrub/internal/config"
	"goscrub/ports"
)

// Server wires HTTP routes to the cleaning service
type Server struct {
	router  *chi.Mux
	service *app.CleaningService
	reader  ports.DatasetReader
	config  *config.Config
	log     *internal.Logger
}

// NewServer creates the HTTP server
func NewServer(cfg *config.Config, service *app.CleaningService, reader ports.DatasetReader, log *internal.Logger) *Server {
	if log == nil {
		log = internal.DefaultLogger
	}
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		reader:  reader,
		config:  cfg,
		log:     log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/datasets", s.handleUpload)
		r.Get("/datasets/current", s.handleSummary)
		r.Get("/datasets/current/profile", s.handleProfile)
		r.Get("/datasets/current/report", s.handleReportHTML)
		r.Get("/datasets/current/preview", s.handlePreview)
		r.Get("/datasets/current/export", s.handleExport)
		r.Post("/datasets/current/apply", s.handleApply)

		r.Route("/queue", func(r chi.Router) {
			r.Get("/", s.handleQueueList)
			r.Post("/", s.handlePropose)
			r.Delete("/{actionID}", s.handleRemove)
			r.Put("/order", s.handleReorder)
			r.Delete("/", s.handleClear)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", s.handleSaveRecipe)
			r.Post("/{recipeID}/replay", s.handleReplayRecipe)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the configured port
func (s *Server) ListenAndServe() error {
	addr := ":" + s.config.Server.Port
	s.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
