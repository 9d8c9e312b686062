package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL       = "https://api.polygon.io"
	DefaultAPITimeout    = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultContractLimit = 1000
	DefaultTickerPause   = 2 * time.Second
	DefaultQuotePause    = 1 * time.Second
	DefaultPriceTimeout  = 10 * time.Second
	DefaultListTimeout   = 30 * time.Second
	DefaultQuoteTimeout  = 15 * time.Second
	DefaultBucket        = "faang-options"
	DefaultKeyPrefix     = "magnificent-seven-options"
	DefaultRegion        = "us-east-1"
	DefaultDatabase      = "options_analytics"
	DefaultTable         = "magnificent_seven_options"
	DefaultRecordLimit   = 7
	DefaultTopN          = 3
	DefaultMaxAttempts   = 3
	DefaultPollInterval  = 2 * time.Second
	DefaultServerPort    = 8080
)

// DefaultTickers is the fixed equity list collected per run.
var DefaultTickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META"}

func (c *Config) applyDefaults() {
	// Polygon defaults
	if c.Polygon.BaseURL == "" {
		c.Polygon.BaseURL = DefaultBaseURL
	}
	if c.Polygon.Timeout == 0 {
		c.Polygon.Timeout = DefaultAPITimeout
	}
	if c.Polygon.MaxRetries == 0 {
		c.Polygon.MaxRetries = DefaultMaxRetries
	}

	// Collector defaults
	if len(c.Collector.Tickers) == 0 {
		c.Collector.Tickers = DefaultTickers
	}
	if c.Collector.ContractLimit == 0 {
		c.Collector.ContractLimit = DefaultContractLimit
	}
	if c.Collector.TickerPause == 0 {
		c.Collector.TickerPause = DefaultTickerPause
	}
	if c.Collector.QuotePause == 0 {
		c.Collector.QuotePause = DefaultQuotePause
	}
	if c.Collector.PriceTimeout == 0 {
		c.Collector.PriceTimeout = DefaultPriceTimeout
	}
	if c.Collector.ListTimeout == 0 {
		c.Collector.ListTimeout = DefaultListTimeout
	}
	if c.Collector.QuoteTimeout == 0 {
		c.Collector.QuoteTimeout = DefaultQuoteTimeout
	}

	// Storage defaults
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = DefaultBucket
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = DefaultKeyPrefix
	}
	if c.Storage.Region == "" {
		c.Storage.Region = DefaultRegion
	}

	// Athena defaults
	if c.Athena.Database == "" {
		c.Athena.Database = DefaultDatabase
	}
	if c.Athena.Table == "" {
		c.Athena.Table = DefaultTable
	}
	if c.Athena.OutputLocation == "" {
		c.Athena.OutputLocation = "s3://" + c.Storage.Bucket + "/athena-results/"
	}
	if c.Athena.RecordLimit == 0 {
		c.Athena.RecordLimit = DefaultRecordLimit
	}
	if c.Athena.TopN == 0 {
		c.Athena.TopN = DefaultTopN
	}
	if c.Athena.MaxAttempts == 0 {
		c.Athena.MaxAttempts = DefaultMaxAttempts
	}
	if c.Athena.PollInterval == 0 {
		c.Athena.PollInterval = DefaultPollInterval
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
}
