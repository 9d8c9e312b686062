package api

// AggsResponse from GET /v2/aggs/ticker/{ticker}/prev and
// GET /v2/aggs/ticker/{ticker}/range/1/day/{from}/{to}
type AggsResponse struct {
	Ticker       string      `json:"ticker"`
	Status       string      `json:"status"`
	ResultsCount int         `json:"resultsCount"`
	Results      []Aggregate `json:"results"`
}

// Aggregate is a single OHLCV bar. Polygon reports volume as a float for
// option tickers, so V stays float64 here and is truncated downstream.
type Aggregate struct {
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
	VWAP      float64 `json:"vw"`
	Timestamp int64   `json:"t"` // ms since epoch
}

// ContractsResponse from GET /v3/reference/options/contracts
type ContractsResponse struct {
	Status  string        `json:"status"`
	Results []APIContract `json:"results"`
	NextURL string        `json:"next_url"`
}

// APIContract represents an options contract from the reference endpoint.
type APIContract struct {
	Ticker            string  `json:"ticker"`
	UnderlyingTicker  string  `json:"underlying_ticker"`
	ContractType      string  `json:"contract_type"`
	StrikePrice       float64 `json:"strike_price"`
	ExpirationDate    string  `json:"expiration_date"`
	ExerciseStyle     string  `json:"exercise_style"`
	SharesPerContract int     `json:"shares_per_contract"`
}

// ListContractsOptions configures a ListContracts request.
type ListContractsOptions struct {
	UnderlyingTicker string
	ContractType     string
	Limit            int
}
