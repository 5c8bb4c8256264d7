package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecotrack/govdash/internal/config"
	"github.com/ecotrack/govdash/internal/mcp"
	"github.com/ecotrack/govdash/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API and MCP endpoint",
		Long: `Serve the dashboard over HTTP (REST API under /api and MCP under /mcp)
or, with transport mode stdio, serve only the MCP tools over stdin/stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mcpServer := a.newMCPServer()
			if a.cfg.Transport.Mode == config.TransportStdio {
				return runStdio(ctx, a, mcpServer)
			}
			return runHTTP(ctx, a, mcpServer)
		},
	}
}

func (a *app) newMCPServer() *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Overview:      a.overview,
			Emissions:     a.emissions,
			Registrations: a.registrations,
			Queries:       a.queries,
			Activity:      a.activity,
		},
		Resolver:      a.operators,
		AuthEnabled:   a.cfg.Auth.Enabled,
		TransportMode: a.cfg.Transport.Mode,
		Version:       version,
		Logger:        a.logger,
	})
}

func (a *app) newRouter(mcpServer *sdkmcp.Server) http.Handler {
	var auth func(http.Handler) http.Handler
	if a.cfg.Auth.Enabled {
		auth = transport.AuthMiddleware(a.operators)
	}
	return transport.NewServer(transport.Config{
		Services: transport.Services{
			Overview:      a.overview,
			Emissions:     a.emissions,
			Registrations: a.registrations,
			Queries:       a.queries,
			Activity:      a.activity,
		},
		Auth:   auth,
		MCP:    mcp.NewHTTPHandler(mcpServer),
		Logger: a.logger,
	})
}

func runStdio(ctx context.Context, a *app, mcpServer *sdkmcp.Server) error {
	a.logger.Info("starting stdio transport", "auth", "disabled")

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, a *app, mcpServer *sdkmcp.Server) error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           a.newRouter(mcpServer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", addr, "auth", a.cfg.Auth.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
