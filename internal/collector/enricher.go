package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/rickgao/options-data/internal/model"
)

// Enricher attaches previous-session pricing to a selected contract.
//
// Enrichment never fails the run: when the lookup errors or carries no
// results, the returned snapshot is a placeholder with a status marker and
// zeroed fields, degrading the record rather than dropping it.
type Enricher struct {
	market  MarketData
	timeout time.Duration
	logger  *slog.Logger
}

// NewEnricher creates an Enricher reading quotes from the given market data
// source.
func NewEnricher(market MarketData, timeout time.Duration, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		market:  market,
		timeout: timeout,
		logger:  logger,
	}
}

// Enrich fetches the contract's previous-session aggregate and converts it to
// a QuoteSnapshot.
func (e *Enricher) Enrich(ctx context.Context, contractTicker string) model.QuoteSnapshot {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.market.GetPreviousClose(ctx, contractTicker)
	if err != nil {
		e.logger.Warn("quote lookup failed",
			"contract", contractTicker,
			"err", err,
		)
		return model.QuoteSnapshot{Status: model.QuoteStatusError}
	}

	if len(resp.Results) == 0 {
		e.logger.Warn("no pricing data for contract", "contract", contractTicker)
		return model.QuoteSnapshot{Status: model.QuoteStatusNoPricingData}
	}

	return resp.Results[0].ToQuoteSnapshot()
}
