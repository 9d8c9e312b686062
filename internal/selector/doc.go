// Package selector implements the contract selection rule used by the
// collector.
//
// Given a ticker's full call contract listing and its current underlying
// price, the selector picks the single just-out-of-the-money contract in the
// nearest expiration:
//   - group contracts by expiration date, sort expirations ascending
//   - within the soonest expiration, sort by strike ascending
//   - return the first contract whose strike is strictly above the price
//
// Only the soonest expiration is considered. When every strike in that group
// sits at or below the current price, the selector returns no selection even
// if a later expiration would qualify.
package selector
