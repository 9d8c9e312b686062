// Package snapshot persists collection batches as timestamped JSON objects.
//
// Each collector run produces at most one snapshot. The object key embeds the
// batch creation time truncated to the minute, so keys are distinct per run
// and sort chronologically:
//
//	<prefix>/2024-01-15-12-30.json
//
// The Store interface hides the backing service; the production
// implementation writes to S3.
package snapshot
