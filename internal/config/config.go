package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	OrderServiceURL string
	BillServiceURL  string
	DatabaseURI     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionSecret   string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	DetailCacheTTL  time.Duration
	ShutdownTimeout time.Duration
	DefaultPageSize int
	MaxImportBytes  int64
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = time.Minute
	defaultDetailCacheTTL  = 5 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
	defaultPageSize        = 20
	defaultMaxImportBytes  = 10 << 20
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		OrderServiceURL: getString(lookup, "ORDER_SERVICE_URL", ""),
		BillServiceURL:  getString(lookup, "BILL_SERVICE_URL", ""),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisAddr:       getString(lookup, "REDIS_ADDR", ""),
		RedisPassword:   getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:         getInt(lookup, "REDIS_DB", 0),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		RequestTimeout:  getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		RefreshInterval: getDuration(lookup, "REFRESH_INTERVAL", defaultRefreshInterval),
		DetailCacheTTL:  getDuration(lookup, "DETAIL_CACHE_TTL", defaultDetailCacheTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		DefaultPageSize: getInt(lookup, "DEFAULT_PAGE_SIZE", defaultPageSize),
		MaxImportBytes:  getInt64(lookup, "MAX_IMPORT_BYTES", defaultMaxImportBytes),
	}

	fs := flag.NewFlagSet("sellerdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		refreshIntervalStr = cfg.RefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.OrderServiceURL, "o", cfg.OrderServiceURL, "Order service base URL")
	fs.StringVar(&cfg.BillServiceURL, "b", cfg.BillServiceURL, "Bill service base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for dashboard preferences")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the order detail cache (empty disables caching)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret shared with the user service for session token verification")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Timeout for calls to external services")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between automatic order view refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.DefaultPageSize, "page-size", cfg.DefaultPageSize, "Default orders page size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	if cfg.DetailCacheTTL <= 0 {
		cfg.DetailCacheTTL = defaultDetailCacheTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}

	if cfg.MaxImportBytes <= 0 {
		cfg.MaxImportBytes = defaultMaxImportBytes
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.OrderServiceURL == "" {
		return nil, fmt.Errorf("order service URL must be provided")
	}

	if cfg.BillServiceURL == "" {
		return nil, fmt.Errorf("bill service URL must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
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
