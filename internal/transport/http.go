package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
)

// Services contains the domain services exposed over HTTP.
type Services struct {
	Overview      *overview.Service
	Emissions     *emission.Service
	Registrations *registration.Service
	Queries       *query.Service
	Activity      *activity.Service
}

// Config configures the HTTP router.
type Config struct {
	Services Services
	// Auth guards the /api routes; nil leaves them open.
	Auth func(http.Handler) http.Handler
	// MCP is mounted at /mcp when set.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	svc Services
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	srv := &Server{svc: cfg.Services}

	r.Get("/health", srv.handleHealth)
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Auth != nil {
			r.Use(cfg.Auth)
		}

		r.Get("/overview", srv.handleOverview)

		r.Route("/emissions", func(r chi.Router) {
			r.Get("/companies", srv.handleListCompanies)
			r.Get("/companies/{id}", srv.handleGetCompany)
			r.Patch("/companies/{id}", srv.handleUpdateCompany)
			r.Get("/sectors", srv.handleSectors)
			r.Post("/limits", srv.handleSetSectorLimit)
			r.Get("/export.csv", srv.handleExportEmissions)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Get("/", srv.handleListRegistrations)
			r.Get("/export.xlsx", srv.handleExportRegistrations)
			r.Post("/{email}/{decision}", srv.handleDecideRegistration)
		})

		r.Route("/queries", func(r chi.Router) {
			r.Get("/", srv.handleListQueries)
			r.Get("/stats", srv.handleQueryStats)
			r.Get("/{id}", srv.handleGetQuery)
			r.Patch("/{id}", srv.handleUpdateQuery)
			r.Delete("/{id}", srv.handleDeleteQuery)
		})

		r.Get("/activity", srv.handleActivity)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
