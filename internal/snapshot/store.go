package snapshot

import (
	"context"

	"github.com/rickgao/options-data/internal/model"
)

// Store persists one batch per collection run under a time-derived key.
type Store interface {
	Put(ctx context.Context, key string, batch *model.Batch) error
}

// KeyTimeFormat is the layout of the timestamp segment of a snapshot key,
// truncated to the minute.
const KeyTimeFormat = "2006-01-02-15-04"

// KeyFor builds the object key for a batch created at the given time.
func KeyFor(prefix string, batch *model.Batch) string {
	return prefix + "/" + batch.CreatedAt.Format(KeyTimeFormat) + ".json"
}
