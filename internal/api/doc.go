// Package api provides a client for the Polygon.io REST API.
//
// The client covers the three read paths the collector needs:
//   - previous-session aggregate for an equity or option ticker
//   - same-day daily aggregate (price fallback)
//   - options contract reference listing
//
// All requests are authenticated with an API key query parameter and retried
// with jittered exponential backoff on retryable status codes.
package api
