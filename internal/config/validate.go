package config

import (
	"errors"
	"fmt"
)

// ValidateCollector checks the fields the collector binary requires.
func (c *Config) ValidateCollector() error {
	if err := c.validateShared(); err != nil {
		return err
	}

	if c.Polygon.APIKey == "" {
		return errors.New("polygon.api_key is required (set POLYGON_API_KEY)")
	}
	if len(c.Collector.Tickers) == 0 {
		return errors.New("collector.tickers must not be empty")
	}
	if c.Collector.ContractLimit < 1 {
		return errors.New("collector.contract_limit must be >= 1")
	}
	if c.Collector.TickerPause <= 0 {
		return errors.New("collector.ticker_pause must be positive")
	}
	if c.Storage.Bucket == "" {
		return errors.New("storage.bucket is required")
	}

	return nil
}

// ValidateAnalyzer checks the fields the analyzer binary requires.
func (c *Config) ValidateAnalyzer() error {
	if err := c.validateShared(); err != nil {
		return err
	}

	if c.Athena.Database == "" {
		return errors.New("athena.database is required")
	}
	if c.Athena.Table == "" {
		return errors.New("athena.table is required")
	}
	if c.Athena.OutputLocation == "" {
		return errors.New("athena.output_location is required")
	}
	if c.Athena.MaxAttempts < 1 {
		return errors.New("athena.max_attempts must be >= 1")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}

func (c *Config) validateShared() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}
	if c.Storage.Region == "" {
		return errors.New("storage.region is required")
	}
	return nil
}
