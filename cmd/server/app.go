package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ecotrack/govdash/internal/config"
	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	"github.com/ecotrack/govdash/internal/sqlite"
)

// app holds the opened database and the services built on it.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *sqlite.DB
	operators *sqlite.OperatorRepository

	overview      *overview.Service
	emissions     *emission.Service
	registrations *registration.Service
	queries       *query.Service
	activity      *activity.Service

	closers []io.Closer
}

func openApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &app{cfg: cfg}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.TransportStdio {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			a.closers = append(a.closers, file)
			logWriter = fileWriter
		}
	}
	a.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		a.Close()
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	a.closers = append([]io.Closer{db}, a.closers...)

	if err := db.RunMigrations(); err != nil {
		a.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	a.operators = sqlite.NewOperatorRepository(db)
	a.activity = activity.NewService(sqlite.NewActivityRepository(db), a.logger)
	a.overview = overview.NewService(sqlite.NewOverviewRepository(db), a.logger)
	a.emissions = emission.NewService(sqlite.NewCompanyRepository(db), a.activity, a.logger)
	a.registrations = registration.NewService(sqlite.NewRegistrationRepository(db), a.activity, a.logger)
	a.queries = query.NewService(sqlite.NewQueryRepository(db), a.activity, cfg.Queries.SLAAlertWindow(), a.logger)

	return a, nil
}

// Close releases the database and log file.
func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
