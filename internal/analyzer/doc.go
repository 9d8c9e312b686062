// Package analyzer implements the query-and-score pipeline.
//
// A run submits a fixed query over the snapshot analytics table, polls the
// execution within a bounded attempt budget, then turns the raw result rows
// into ranked options: each row's first column holds a JSON-encoded array of
// option records, which are decoded, coerced to their numeric types, scored,
// and deduplicated by contract ticker before the top-3 lowest scores are
// returned.
//
// profit_score = (strike + low) - current_price. Lower is better: the
// heuristic favors low-cost contracts whose strike sits close under the
// underlying's price.
package analyzer
