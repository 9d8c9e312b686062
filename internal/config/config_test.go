package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-collector
polygon:
  base_url: https://api.polygon.io
  api_key: test-key
collector:
  tickers: [AAPL, MSFT]
  ticker_pause: 500ms
storage:
  bucket: test-bucket
  key_prefix: test-options
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-collector" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-collector")
	}
	if cfg.Polygon.APIKey != "test-key" {
		t.Errorf("Polygon.APIKey = %q, want %q", cfg.Polygon.APIKey, "test-key")
	}
	if len(cfg.Collector.Tickers) != 2 {
		t.Errorf("Collector.Tickers = %v, want 2 entries", cfg.Collector.Tickers)
	}
	if cfg.Collector.TickerPause != 500*time.Millisecond {
		t.Errorf("Collector.TickerPause = %v, want 500ms", cfg.Collector.TickerPause)
	}
	if cfg.Storage.Bucket != "test-bucket" {
		t.Errorf("Storage.Bucket = %q, want %q", cfg.Storage.Bucket, "test-bucket")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_POLYGON_KEY", "secret123")

	yaml := `
instance:
  id: test-collector
polygon:
  api_key: ${TEST_POLYGON_KEY}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Polygon.APIKey != "secret123" {
		t.Errorf("Polygon.APIKey = %q, want %q", cfg.Polygon.APIKey, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-collector
polygon:
  api_key: test-key
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Polygon.BaseURL != DefaultBaseURL {
		t.Errorf("Polygon.BaseURL = %q, want default %q", cfg.Polygon.BaseURL, DefaultBaseURL)
	}
	if len(cfg.Collector.Tickers) != len(DefaultTickers) {
		t.Errorf("Collector.Tickers = %v, want the default seven", cfg.Collector.Tickers)
	}
	if cfg.Collector.TickerPause != DefaultTickerPause {
		t.Errorf("Collector.TickerPause = %v, want %v", cfg.Collector.TickerPause, DefaultTickerPause)
	}
	if cfg.Athena.Database != DefaultDatabase {
		t.Errorf("Athena.Database = %q, want %q", cfg.Athena.Database, DefaultDatabase)
	}
	if cfg.Athena.OutputLocation != "s3://faang-options/athena-results/" {
		t.Errorf("Athena.OutputLocation = %q, want derived from bucket", cfg.Athena.OutputLocation)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultServerPort)
	}
}

func TestValidateCollector_MissingAPIKey(t *testing.T) {
	cfg := &Config{}
	cfg.Instance.ID = "test"
	cfg.applyDefaults()
	cfg.Polygon.APIKey = ""

	if err := cfg.ValidateCollector(); err == nil {
		t.Error("ValidateCollector should fail without an API key")
	}
}

func TestValidateCollector_Valid(t *testing.T) {
	cfg := &Config{}
	cfg.Instance.ID = "test"
	cfg.Polygon.APIKey = "key"
	cfg.applyDefaults()

	if err := cfg.ValidateCollector(); err != nil {
		t.Errorf("ValidateCollector failed: %v", err)
	}
}

func TestValidateAnalyzer_MissingInstanceID(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if err := cfg.ValidateAnalyzer(); err == nil {
		t.Error("ValidateAnalyzer should fail without instance.id")
	}
}

func TestValidateAnalyzer_BadPort(t *testing.T) {
	cfg := &Config{}
	cfg.Instance.ID = "test"
	cfg.applyDefaults()
	cfg.Server.Port = 70000

	if err := cfg.ValidateAnalyzer(); err == nil {
		t.Error("ValidateAnalyzer should reject port 70000")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "instance: [unclosed")

	if _, err := Load(path); err == nil {
		t.Error("Load should fail for invalid YAML")
	}
}
