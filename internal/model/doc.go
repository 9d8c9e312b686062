// Package model defines shared data types used across the options data
// pipelines.
//
// OptionRecord is the persisted unit: the collector writes batches of records
// as JSON snapshots, and the analyzer reads the same shape back out of the
// analytics table built over those snapshots. JSON tags therefore match the
// snapshot schema exactly and must not change independently of it.
//
// Conventions:
//   - Prices: float64 dollars, as reported by the provider's aggregates
//   - Volume: int64 contracts
//   - Timestamps: ISO 8601 strings in persisted form, time.Time in memory
package model
