package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from an optional
// YAML file, environment variables, and flags (in increasing priority).
type Config struct {
	RunAddress       string
	DatabaseURI      string
	CustomerFeedURL  string
	FeedSyncInterval time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultFeedSyncInterval = time.Hour
	defaultShutdownTimeout  = 10 * time.Second
)

// fileConfig mirrors the YAML config file shape. Durations are strings
// in time.ParseDuration format.
type fileConfig struct {
	RunAddress       string `yaml:"run_address"`
	DatabaseURI      string `yaml:"database_uri"`
	CustomerFeedURL  string `yaml:"customer_feed_url"`
	FeedSyncInterval string `yaml:"feed_sync_interval"`
	ShutdownTimeout  string `yaml:"shutdown_timeout"`
}

// Load parses configuration from the config file, environment
// variables, and command-line flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       defaultRunAddress,
		FeedSyncInterval: defaultFeedSyncInterval,
		ShutdownTimeout:  defaultShutdownTimeout,
	}

	configPath := getString(lookup, "CONFIG_FILE", "")
	if fromArgs := configPathFromArgs(args); fromArgs != "" {
		configPath = fromArgs
	}
	if configPath != "" {
		if err := applyFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.CustomerFeedURL = getString(lookup, "CUSTOMER_FEED_URL", cfg.CustomerFeedURL)
	cfg.FeedSyncInterval = getDuration(lookup, "FEED_SYNC_INTERVAL", cfg.FeedSyncInterval)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	fs := flag.NewFlagSet("webshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		syncIntervalStr    = cfg.FeedSyncInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		configFlag         string
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CustomerFeedURL, "f", cfg.CustomerFeedURL, "Customer feed endpoint URL")
	fs.StringVar(&syncIntervalStr, "sync-interval", syncIntervalStr, "Interval between customer feed syncs")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&configFlag, "config", configPath, "Path to YAML config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.FeedSyncInterval, err = time.ParseDuration(syncIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sync interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.FeedSyncInterval <= 0 {
		cfg.FeedSyncInterval = defaultFeedSyncInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CustomerFeedURL == "" {
		return nil, fmt.Errorf("customer feed URL must be provided")
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.RunAddress != "" {
		cfg.RunAddress = fc.RunAddress
	}
	if fc.DatabaseURI != "" {
		cfg.DatabaseURI = fc.DatabaseURI
	}
	if fc.CustomerFeedURL != "" {
		cfg.CustomerFeedURL = fc.CustomerFeedURL
	}
	if fc.FeedSyncInterval != "" {
		d, err := time.ParseDuration(fc.FeedSyncInterval)
		if err != nil {
			return fmt.Errorf("invalid sync interval in config file: %w", err)
		}
		cfg.FeedSyncInterval = d
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown timeout in config file: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// configPathFromArgs pre-scans args for -config so the file can be
// applied before the remaining flags override it.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed == arg {
			continue
		}
		if trimmed == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if value, ok := strings.CutPrefix(trimmed, "config="); ok {
			return value
		}
	}
	return ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
