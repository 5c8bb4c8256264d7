package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Transport TransportConfig `yaml:"transport"`
	Queries   QueriesConfig   `yaml:"queries"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type AuthConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// MaxSLAAlertHours bounds sla_alert_hours to ten years.
const MaxSLAAlertHours = 10 * 365 * 24

// QueriesConfig controls the SLA alert window of the query desk.
type QueriesConfig struct {
	SLAAlertHours int `yaml:"sla_alert_hours"`
}

// SLAAlertWindow returns the configured alert window as a duration.
func (q QueriesConfig) SLAAlertWindow() time.Duration {
	return time.Duration(q.SLAAlertHours) * time.Hour
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "govdash.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			Enabled: true,
		},
		Transport: TransportConfig{
			Mode: TransportHTTP,
		},
		Queries: QueriesConfig{
			SLAAlertHours: 48,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// path takes precedence over GOVDASH_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GOVDASH_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("GOVDASH_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("GOVDASH_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid GOVDASH_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("GOVDASH_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("GOVDASH_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("GOVDASH_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if enabled := os.Getenv("GOVDASH_AUTH_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("invalid GOVDASH_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = v
	}
	if mode := os.Getenv("GOVDASH_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if hours := os.Getenv("GOVDASH_SLA_ALERT_HOURS"); hours != "" {
		v, err := strconv.Atoi(hours)
		if err != nil {
			return fmt.Errorf("invalid GOVDASH_SLA_ALERT_HOURS: %w", err)
		}
		cfg.Queries.SLAAlertHours = v
	}
	return nil
}

// Validate checks value ranges and normalises the transport mode and log level.
func (c *Config) Validate() error {
	c.Transport.Mode = strings.ToLower(strings.TrimSpace(c.Transport.Mode))
	if c.Transport.Mode != TransportHTTP && c.Transport.Mode != TransportStdio {
		return fmt.Errorf("invalid transport mode %q: want http or stdio", c.Transport.Mode)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Queries.SLAAlertHours <= 0 || c.Queries.SLAAlertHours > MaxSLAAlertHours {
		return fmt.Errorf("sla_alert_hours must be between 1 and %d, got %d", MaxSLAAlertHours, c.Queries.SLAAlertHours)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
