package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rickgao/options-data/internal/api"
	"github.com/rickgao/options-data/internal/model"
	"github.com/rickgao/options-data/internal/selector"
	"github.com/rickgao/options-data/internal/snapshot"
)

// MarketData is the provider surface the collector consumes.
type MarketData interface {
	GetPreviousClose(ctx context.Context, ticker string) (*api.AggsResponse, error)
	GetDailyAggregate(ctx context.Context, ticker string, day time.Time) (*api.AggsResponse, error)
	ListContracts(ctx context.Context, opts api.ListContractsOptions) (*api.ContractsResponse, error)
}

// TickerStatus classifies a ticker's contribution to a run.
type TickerStatus string

const (
	// StatusSelected means a fully priced record was appended.
	StatusSelected TickerStatus = "selected"
	// StatusDegraded means a record was appended but its quote is a
	// placeholder.
	StatusDegraded TickerStatus = "degraded"
	// StatusSkipped means the ticker contributed nothing.
	StatusSkipped TickerStatus = "skipped"
)

// Skip reasons recorded on TickerResult.
const (
	ReasonPriceUnavailable = "price_unavailable"
	ReasonListingFailed    = "listing_failed"
	ReasonNoContracts      = "no_contracts"
	ReasonNoQualifyingCall = "no_qualifying_call"
)

// TickerResult is the outcome for one ticker in a run.
type TickerResult struct {
	Ticker string
	Status TickerStatus
	Reason string // set only for StatusSkipped
}

// Summary describes a completed run.
type Summary struct {
	StartedAt    time.Time
	TotalOptions int
	SnapshotKey  string // empty when no snapshot was written
	Results      []TickerResult
}

// Config holds collector settings.
type Config struct {
	Tickers       []string
	ContractLimit int           // Max contracts per listing request
	KeyPrefix     string        // Snapshot key prefix
	PriceTimeout  time.Duration // Per price lookup
	ListTimeout   time.Duration // Per contract listing
	QuoteTimeout  time.Duration // Per quote lookup
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tickers:       []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META"},
		ContractLimit: 1000,
		KeyPrefix:     "magnificent-seven-options",
		PriceTimeout:  10 * time.Second,
		ListTimeout:   30 * time.Second,
		QuoteTimeout:  15 * time.Second,
	}
}

// Collector runs the collection pipeline.
type Collector struct {
	cfg       Config
	market    MarketData
	store     snapshot.Store
	enricher  *Enricher
	pace      Pacer // between tickers
	quotePace Pacer // after each enrichment
	logger    *slog.Logger

	now func() time.Time
}

// New creates a Collector. Pacers may be nil, in which case no pacing is
// applied (tests rely on this; production wiring always injects pacers).
func New(cfg Config, market MarketData, store snapshot.Store, pace, quotePace Pacer, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	if pace == nil {
		pace = NopPacer()
	}
	if quotePace == nil {
		quotePace = NopPacer()
	}
	return &Collector{
		cfg:       cfg,
		market:    market,
		store:     store,
		enricher:  NewEnricher(market, cfg.QuoteTimeout, logger),
		pace:      pace,
		quotePace: quotePace,
		logger:    logger,
		now:       time.Now,
	}
}

// Run processes the configured tickers in order and persists the resulting
// batch if it is non-empty. Per-ticker failures are absorbed into the
// summary; only a persistence failure aborts the run.
func (c *Collector) Run(ctx context.Context) (*Summary, error) {
	startedAt := c.now()
	batch := model.NewBatch(startedAt)
	summary := &Summary{StartedAt: startedAt}

	for _, ticker := range c.cfg.Tickers {
		// The pause applies even when the ticker ends up skipped.
		if err := c.pace.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacer wait: %w", err)
		}

		result := c.processTicker(ctx, ticker, batch)
		summary.Results = append(summary.Results, result)

		c.logger.Info("ticker processed",
			"ticker", ticker,
			"status", result.Status,
			"reason", result.Reason,
		)
	}

	summary.TotalOptions = len(batch.Records)

	if batch.Empty() {
		c.logger.Warn("no options collected, skipping snapshot")
		return summary, nil
	}

	key := snapshot.KeyFor(c.cfg.KeyPrefix, batch)
	if err := c.store.Put(ctx, key, batch); err != nil {
		return nil, fmt.Errorf("persist batch: %w", err)
	}
	summary.SnapshotKey = key

	c.logger.Info("collection run complete",
		"options", summary.TotalOptions,
		"key", key,
		"duration", c.now().Sub(startedAt),
	)
	return summary, nil
}

// processTicker produces at most one record for a ticker.
func (c *Collector) processTicker(ctx context.Context, ticker string, batch *model.Batch) TickerResult {
	price, ok := c.fetchPrice(ctx, ticker)
	if !ok {
		return TickerResult{Ticker: ticker, Status: StatusSkipped, Reason: ReasonPriceUnavailable}
	}

	listCtx, cancel := context.WithTimeout(ctx, c.cfg.ListTimeout)
	defer cancel()

	resp, err := c.market.ListContracts(listCtx, api.ListContractsOptions{
		UnderlyingTicker: ticker,
		ContractType:     "call",
		Limit:            c.cfg.ContractLimit,
	})
	if err != nil {
		c.logger.Warn("contract listing failed", "ticker", ticker, "err", err)
		return TickerResult{Ticker: ticker, Status: StatusSkipped, Reason: ReasonListingFailed}
	}
	if len(resp.Results) == 0 {
		c.logger.Warn("no contracts listed", "ticker", ticker)
		return TickerResult{Ticker: ticker, Status: StatusSkipped, Reason: ReasonNoContracts}
	}

	contracts := make([]model.OptionContract, len(resp.Results))
	for i, rc := range resp.Results {
		contracts[i] = rc.ToModel()
	}

	selected, ok := selector.Select(contracts, price)
	if !ok {
		return TickerResult{Ticker: ticker, Status: StatusSkipped, Reason: ReasonNoQualifyingCall}
	}

	quote := c.enricher.Enrich(ctx, selected.Ticker)

	// Pause after every enrichment call, degraded or not. Only a cancelled
	// context cuts the wait short, and the record still counts.
	_ = c.quotePace.Wait(ctx)

	batch.Append(model.OptionRecord{
		UnderlyingTicker: ticker,
		CurrentPrice:     price,
		Strike:           selected.StrikePrice,
		Expiration:       selected.ExpirationDate,
		ContractTicker:   selected.Ticker,
		Timestamp:        c.now().Format(time.RFC3339),
		QuoteSnapshot:    quote,
	})

	status := StatusSelected
	if quote.Status != "" {
		status = StatusDegraded
	}
	return TickerResult{Ticker: ticker, Status: status}
}

// fetchPrice resolves the underlying's current price: previous-session close
// first, today's daily aggregate as fallback.
func (c *Collector) fetchPrice(ctx context.Context, ticker string) (float64, bool) {
	priceCtx, cancel := context.WithTimeout(ctx, c.cfg.PriceTimeout)
	defer cancel()

	resp, err := c.market.GetPreviousClose(priceCtx, ticker)
	if err == nil {
		if price, ok := resp.FirstClose(); ok {
			return price, true
		}
	} else {
		c.logger.Warn("previous close lookup failed", "ticker", ticker, "err", err)
	}

	fbCtx, cancel := context.WithTimeout(ctx, c.cfg.PriceTimeout)
	defer cancel()

	resp, err = c.market.GetDailyAggregate(fbCtx, ticker, c.now())
	if err != nil {
		c.logger.Warn("fallback price lookup failed", "ticker", ticker, "err", err)
		return 0, false
	}
	if price, ok := resp.FirstClose(); ok {
		return price, true
	}

	c.logger.Warn("no price available", "ticker", ticker)
	return 0, false
}
