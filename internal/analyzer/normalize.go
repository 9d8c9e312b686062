package analyzer

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rickgao/options-data/internal/query"
)

// RankedOption is one analyzed option record with its computed score.
type RankedOption struct {
	UnderlyingTicker string  `json:"underlying_ticker"`
	CurrentPrice     float64 `json:"current_price"`
	Strike           float64 `json:"strike"`
	OptionPrice      float64 `json:"option_price"` // previous-session close
	Volume           int64   `json:"volume"`
	ContractTicker   string  `json:"contract_ticker"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	VWAP             float64 `json:"vwap"`
	ProfitScore      float64 `json:"profit_score"`
}

// Score computes the profit heuristic for a record's fields.
func Score(strike, low, currentPrice float64) float64 {
	return (strike + low) - currentPrice
}

// Normalize turns raw result rows into deduplicated, scored options.
//
// The first row is the header and is skipped. Each remaining row's first
// column holds a JSON array of option objects; rows that fail to decode are
// dropped without failing the batch. All numeric coercion lives here: missing
// or malformed numeric fields become zero, identifier fields pass through
// as-is. Duplicate contract tickers keep the first occurrence.
func Normalize(rows []query.Row, logger *slog.Logger) []RankedOption {
	if logger == nil {
		logger = slog.Default()
	}

	var all []RankedOption
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 {
			continue
		}

		opts, ok := decodeRow(row[0])
		if !ok {
			logger.Warn("dropping undecodable result row", "row", i)
			continue
		}
		all = append(all, opts...)
	}

	return dedupe(all)
}

// decodeRow parses one row's embedded option array.
func decodeRow(raw string) ([]RankedOption, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var entries []map[string]any
	if err := dec.Decode(&entries); err != nil {
		return nil, false
	}

	out := make([]RankedOption, 0, len(entries))
	for _, e := range entries {
		opt := RankedOption{
			UnderlyingTicker: asString(e["underlying_ticker"]),
			CurrentPrice:     asFloat(e["current_price"]),
			Strike:           asFloat(e["strike"]),
			OptionPrice:      asFloat(e["close"]),
			Volume:           asInt(e["volume"]),
			ContractTicker:   asString(e["contract_ticker"]),
			Open:             asFloat(e["open"]),
			High:             asFloat(e["high"]),
			Low:              asFloat(e["low"]),
			VWAP:             asFloat(e["vwap"]),
		}
		opt.ProfitScore = Score(opt.Strike, opt.Low, opt.CurrentPrice)
		out = append(out, opt)
	}
	return out, true
}

// dedupe keeps the first record seen for each contract ticker, preserving
// traversal order.
func dedupe(options []RankedOption) []RankedOption {
	seen := make(map[string]bool, len(options))
	out := make([]RankedOption, 0, len(options))
	for _, opt := range options {
		if seen[opt.ContractTicker] {
			continue
		}
		seen[opt.ContractTicker] = true
		out = append(out, opt)
	}
	return out
}

// asFloat coerces a decoded JSON value to float64, zero on anything that
// does not parse.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	case float64:
		return n
	default:
		return 0
	}
}

// asInt coerces a decoded JSON value to int64, truncating fractional input.
func asInt(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
		return 0
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int64(f)
		}
		return 0
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// asString passes string values through and leaves everything else empty.
func asString(v any) string {
	s, _ := v.(string)
	return s
}
