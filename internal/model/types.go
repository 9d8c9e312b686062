package model

import "time"

// -----------------------------------------------------------------------------
// Provider Types
// -----------------------------------------------------------------------------

// OptionContract is a single listed option contract as reported by the
// provider's reference endpoint. Immutable once fetched.
type OptionContract struct {
	Ticker           string  // Contract symbol (e.g., "O:AAPL240119C00190000")
	UnderlyingTicker string  // Underlying equity symbol (e.g., "AAPL")
	StrikePrice      float64 // Strike in dollars, always positive
	ExpirationDate   string  // Calendar date, "2006-01-02"
	ContractType     string  // Always "call" in this system
}

// Quote status markers. Empty status means pricing data was present.
const (
	QuoteStatusNoPricingData = "no_pricing_data"
	QuoteStatusError         = "error"
)

// QuoteSnapshot holds previous-session pricing for one contract. Any numeric
// field may be absent upstream and defaults to zero; Status is set only when
// no pricing data could be obtained at all.
type QuoteSnapshot struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	VWAP   float64 `json:"vwap"`
	Status string  `json:"status,omitempty"`
}

// -----------------------------------------------------------------------------
// Persisted Types
// -----------------------------------------------------------------------------

// OptionRecord is one collected option: the selected contract for a ticker,
// the underlying price at fetch time, and the contract's last-session quote.
// Written once to the snapshot store, never updated.
type OptionRecord struct {
	UnderlyingTicker string  `json:"underlying_ticker"`
	CurrentPrice     float64 `json:"current_price"`
	Strike           float64 `json:"strike"`
	Expiration       string  `json:"expiration"`
	ContractTicker   string  `json:"contract_ticker"`
	Timestamp        string  `json:"timestamp"` // ISO 8601, set at fetch time

	QuoteSnapshot
}

// Batch is the output of one collection run. CreatedAt doubles as the batch's
// identity: the snapshot key is derived from it, truncated to the minute, so
// keys sort chronologically.
type Batch struct {
	CreatedAt time.Time      `json:"-"`
	Records   []OptionRecord `json:"records"`
}

// NewBatch creates an empty batch stamped with the given creation time.
func NewBatch(createdAt time.Time) *Batch {
	return &Batch{CreatedAt: createdAt}
}

// Append adds a record to the batch.
func (b *Batch) Append(rec OptionRecord) {
	b.Records = append(b.Records, rec)
}

// Empty reports whether the batch holds no records. Empty batches are never
// persisted.
func (b *Batch) Empty() bool {
	return len(b.Records) == 0
}
