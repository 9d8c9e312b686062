package api

import (
	"github.com/rickgao/options-data/internal/model"
)

// ToModel converts an APIContract to model.OptionContract.
func (c *APIContract) ToModel() model.OptionContract {
	return model.OptionContract{
		Ticker:           c.Ticker,
		UnderlyingTicker: c.UnderlyingTicker,
		StrikePrice:      c.StrikePrice,
		ExpirationDate:   c.ExpirationDate,
		ContractType:     c.ContractType,
	}
}

// ToQuoteSnapshot converts an Aggregate bar to a model.QuoteSnapshot.
// Polygon reports option volume as a float; it is truncated to an integer
// contract count here.
func (a *Aggregate) ToQuoteSnapshot() model.QuoteSnapshot {
	return model.QuoteSnapshot{
		Open:   a.Open,
		High:   a.High,
		Low:    a.Low,
		Close:  a.Close,
		Volume: int64(a.Volume),
		VWAP:   a.VWAP,
	}
}

// FirstClose returns the close price of the first result, or false when the
// response carries no results.
func (r *AggsResponse) FirstClose() (float64, bool) {
	if len(r.Results) == 0 {
		return 0, false
	}
	return r.Results[0].Close, true
}
