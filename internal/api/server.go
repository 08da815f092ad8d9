package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// Server wires the tour editor and player to an HTTP router.
type Server struct {
	logger    *log.Logger
	store     *tour.Store
	player    *tour.Player
	gateway   host.Gateway
	container geom.Rect
}

// Config collects the collaborators a Server needs.
type Config struct {
	Logger    *log.Logger
	Store     *tour.Store
	Player    *tour.Player
	Gateway   host.Gateway
	Container geom.Rect
}

// New creates a server. A nil logger falls back to log.Default.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		logger:    logger,
		store:     cfg.Store,
		player:    cfg.Player,
		gateway:   cfg.Gateway,
		container: cfg.Container,
	}
}

// Router builds the chi router with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/flow.svg", s.handleFlowSVG)
		r.Post("/save", s.handleSave)

		r.Route("/player", func(r chi.Router) {
			r.Post("/load", s.handleLoad)
			r.Post("/next", s.handleNext)
			r.Post("/previous", s.handlePrevious)
			r.Post("/jump/{index}", s.handleJump)
		})

		r.Route("/steps", func(r chi.Router) {
			r.Get("/", s.handleListSteps)
			r.Post("/", s.handleAddStep)
			r.Patch("/{index}", s.handleUpdateStep)
			r.Delete("/{index}", s.handleRemoveStep)
			r.Post("/{index}/up", s.handleMoveUp)
			r.Post("/{index}/down", s.handleMoveDown)
			r.Get("/{index}/overlay.svg", s.handleOverlaySVG)
		})

		r.Route("/presentation", func(r chi.Router) {
			r.Get("/", s.handleGetPresentation)
			r.Put("/", s.handleSetPresentation)
		})
	})

	return r
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
