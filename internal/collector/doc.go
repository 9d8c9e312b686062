// Package collector implements the collection pipeline.
//
// The collector walks a fixed ticker list strictly in order: fetch the
// underlying price, select one just-out-of-the-money call in the nearest
// expiration, enrich it with the contract's previous-session quote, and
// append the assembled record to the run's batch. Every per-ticker failure is
// absorbed: the ticker contributes nothing (or a degraded record) and the run
// continues. Non-empty batches are persisted as one snapshot; empty batches
// are not.
//
// Processing is deliberately sequential. The provider rate-limits requests,
// and injected pacers enforce the mandatory pauses between tickers and after
// each enrichment. Pauses apply on skip paths too.
package collector
