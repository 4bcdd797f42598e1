package config

import "time"

// Application constants - hardcoded values for the CFO data service
const (
	// Application Info
	AppName    = "CFO Emigrant Data"
	AppVersion = "1.2.0"
	AppVendor  = "Commission on Filipinos Overseas"

	// Default config file, overridable via CFO_CONFIG
	DefaultConfigFile = "config.yaml"

	// File Paths (relative to working directory)
	DefaultDataDir    = "data"
	DefaultReportsDir = "data/reports"
	DefaultLogsDir    = "logs"

	// Server Defaults
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Operation Timeouts
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultLoadTimeout    = 5 * time.Minute
	DefaultExportTimeout  = 5 * time.Minute
	DefaultRequestTimeout = 30 * time.Second

	// Rate Limiting
	DefaultRateLimitRPS   = 100.0
	DefaultRateLimitBurst = 50

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	MaxLogFileSize   = 100 * 1024 * 1024 // 100MB
)
