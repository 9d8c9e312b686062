package config

import "time"

// Config is the root configuration shared by the collector and analyzer
// binaries.
type Config struct {
	Instance  InstanceConfig  `yaml:"instance"`
	Polygon   PolygonConfig   `yaml:"polygon"`
	Collector CollectorConfig `yaml:"collector"`
	Storage   StorageConfig   `yaml:"storage"`
	Athena    AthenaConfig    `yaml:"athena"`
	Server    ServerConfig    `yaml:"server"`
}

// InstanceConfig identifies this deployment.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// PolygonConfig holds market-data API settings.
type PolygonConfig struct {
	BaseURL    string        `yaml:"base_url"`
	APIKey     string        `yaml:"api_key"` // usually ${POLYGON_API_KEY}
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// CollectorConfig holds collection run settings.
type CollectorConfig struct {
	Tickers       []string      `yaml:"tickers"`
	ContractLimit int           `yaml:"contract_limit"`
	TickerPause   time.Duration `yaml:"ticker_pause"` // between tickers
	QuotePause    time.Duration `yaml:"quote_pause"`  // after each enrichment
	PriceTimeout  time.Duration `yaml:"price_timeout"`
	ListTimeout   time.Duration `yaml:"list_timeout"`
	QuoteTimeout  time.Duration `yaml:"quote_timeout"`
	Schedule      string        `yaml:"schedule"` // cron spec; empty = run once
}

// StorageConfig holds snapshot store settings.
type StorageConfig struct {
	Bucket    string `yaml:"bucket"`
	KeyPrefix string `yaml:"key_prefix"`
	Region    string `yaml:"region"`
}

// AthenaConfig holds analytics query settings.
type AthenaConfig struct {
	Database       string        `yaml:"database"`
	Table          string        `yaml:"table"`
	OutputLocation string        `yaml:"output_location"`
	RecordLimit    int           `yaml:"record_limit"`
	TopN           int           `yaml:"top_n"`
	MaxAttempts    int           `yaml:"max_attempts"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

// ServerConfig holds analyzer HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}
