package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rickgao/options-data/internal/query"
)

// DataSource is the label reported on successful results.
const DataSource = "AWS Athena"

// FailureKind distinguishes why a run produced no ranking.
type FailureKind string

const (
	FailureNone    FailureKind = ""
	FailureNoData  FailureKind = "no_data"       // result set empty or header-only
	FailureQuery   FailureKind = "query_failure" // terminal FAILED/CANCELLED state
	FailureTimeout FailureKind = "timeout"       // poll budget exhausted
)

// Result is the analyzer's response contract.
type Result struct {
	Success          bool           `json:"success"`
	TopOptions       []RankedOption `json:"top_3_options,omitempty"`
	QueryExecutionID string         `json:"query_execution_id,omitempty"`
	DataSource       string         `json:"data_source,omitempty"`
	Message          string         `json:"message,omitempty"`
	Kind             FailureKind    `json:"-"`
	Error            string         `json:"error,omitempty"`
}

// Config holds analyzer settings.
type Config struct {
	Table        string        // Logical table over the snapshots
	RecordLimit  int           // Rows fetched per run
	TopN         int           // Ranked records returned
	MaxAttempts  int           // Status poll budget
	PollInterval time.Duration // Delay between polls
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Table:        "magnificent_seven_options",
		RecordLimit:  7,
		TopN:         3,
		MaxAttempts:  3,
		PollInterval: 2 * time.Second,
	}
}

// Analyzer runs the query-and-score pipeline.
type Analyzer struct {
	cfg    Config
	engine query.Engine
	logger *slog.Logger
}

// New creates an Analyzer on top of a query engine.
func New(cfg Config, engine query.Engine, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		cfg:    cfg,
		engine: engine,
		logger: logger,
	}
}

// sql builds the fixed analysis query: the most recent embedded records,
// newest first.
func (a *Analyzer) sql() string {
	return fmt.Sprintf(`SELECT
  option.underlying_ticker,
  option.current_price,
  option.strike,
  option.close as option_price,
  option.volume,
  option.contract_ticker,
  option.open,
  option.high,
  option.low,
  option.vwap,
  option.timestamp
FROM %s
CROSS JOIN UNNEST(records) AS t(option)
ORDER BY option.timestamp DESC
LIMIT %d`, a.cfg.Table, a.cfg.RecordLimit)
}

// Run executes one analysis pass. The returned error covers only engine call
// failures; domain-level failures (no data, failed query, poll timeout) come
// back as a non-success Result.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	executionID, err := a.engine.Submit(ctx, a.sql())
	if err != nil {
		return nil, fmt.Errorf("submit query: %w", err)
	}

	a.logger.Info("analysis query started", "execution_id", executionID)

	status, err := a.awaitQuery(ctx, executionID)
	if err != nil {
		return nil, err
	}

	switch status.State {
	case query.StateSucceeded:
		// fall through to fetch
	case query.StateFailed, query.StateCancelled:
		reason := status.Reason
		if reason == "" {
			reason = "query failed"
		}
		a.logger.Error("analysis query failed", "execution_id", executionID, "reason", reason)
		return &Result{
			Kind:  FailureQuery,
			Error: fmt.Sprintf("query failed: %s", reason),
		}, nil
	default:
		// Still running after the full attempt budget.
		a.logger.Error("analysis query timed out", "execution_id", executionID, "attempts", a.cfg.MaxAttempts)
		return &Result{
			Kind:  FailureTimeout,
			Error: "query timeout",
		}, nil
	}

	rows, err := a.engine.Results(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}

	if len(rows) <= 1 {
		// Only the header row (or nothing at all) came back. Distinct from a
		// decode failure.
		return &Result{
			Kind:  FailureNoData,
			Error: "no options data found",
		}, nil
	}

	options := Normalize(rows, a.logger)
	a.logger.Info("options normalized", "rows", len(rows)-1, "options", len(options))

	if len(options) == 0 {
		return &Result{
			Kind:  FailureNoData,
			Error: "no options data found",
		}, nil
	}

	top := TopN(options, a.cfg.TopN)

	return &Result{
		Success:          true,
		TopOptions:       top,
		QueryExecutionID: executionID,
		DataSource:       DataSource,
		Message:          fmt.Sprintf("Top %d most profitable options", len(top)),
	}, nil
}

// awaitQuery polls the execution until it reaches a terminal state or the
// attempt budget runs out. The last observed status is returned either way.
func (a *Analyzer) awaitQuery(ctx context.Context, executionID string) (query.Status, error) {
	var status query.Status

	for attempt := 0; attempt < a.cfg.MaxAttempts; attempt++ {
		var err error
		status, err = a.engine.Status(ctx, executionID)
		if err != nil {
			return query.Status{}, fmt.Errorf("poll query status: %w", err)
		}

		if status.State.Terminal() {
			return status, nil
		}

		a.logger.Debug("query still running",
			"execution_id", executionID,
			"attempt", attempt+1,
			"state", status.State,
		)

		select {
		case <-ctx.Done():
			return query.Status{}, ctx.Err()
		case <-time.After(a.cfg.PollInterval):
		}
	}

	return status, nil
}
