package collector

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer gates the collector's request pacing. Wait blocks until the next
// request may proceed or the context is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// PacerFunc is a function adapter for Pacer.
type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// NewIntervalPacer returns a Pacer that allows one call per interval. The
// first call passes immediately; later calls are spaced at least interval
// apart.
func NewIntervalPacer(interval time.Duration) Pacer {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// NopPacer never waits. Useful in tests.
func NopPacer() Pacer {
	return PacerFunc(func(ctx context.Context) error { return nil })
}
