package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// EmissionService defines emission registry operations needed by MCP.
type EmissionService interface {
	List(ctx context.Context, opts emission.ListOptions) ([]emission.CompanyView, error)
	Update(ctx context.Context, req emission.UpdateRequest) (*emission.CompanyView, error)
	ApplySectorLimit(ctx context.Context, sector string, limit float64) (int64, error)
	Sectors(ctx context.Context) ([]string, error)
	Budgets(ctx context.Context) ([]emission.SectorBudgetView, error)
}

// RegistrationService defines registration queue operations needed by MCP.
type RegistrationService interface {
	List(ctx context.Context, search string) ([]registration.Request, error)
	Decide(ctx context.Context, email string, decision registration.Decision) (*registration.Outcome, error)
}

// QueryService defines query ticket operations needed by MCP.
type QueryService interface {
	List(ctx context.Context, opts query.ListOptions) ([]query.Query, error)
	Update(ctx context.Context, req query.UpdateRequest) (*query.Query, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (query.Stats, error)
	SLAAlerts(ctx context.Context) ([]query.Query, error)
}

// OverviewService defines dashboard operations needed by MCP.
type OverviewService interface {
	Get(ctx context.Context) (*overview.Overview, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Overview      OverviewService
	Emissions     EmissionService
	Registrations RegistrationService
	Queries       QueryService
	Activity      ActivityService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      OperatorResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Version       string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "govdash",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio is local only and never authenticates.
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	} else {
		server.AddReceivingMiddleware(noAuthMiddleware(activity.SystemActor))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}
