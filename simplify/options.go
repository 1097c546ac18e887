package simplify

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoCausalFlow is returned by CausalFlowOpt when the input diagram
// admits no causal flow to begin with.
var ErrNoCausalFlow = errors.New("simplify: graph has no causal flow")

// Options configures the simplification drivers.
//
//	Ctx    - cooperative cancellation; drivers poll it between atomic
//	         rewrites and return cleanly once it is done.
//	Logger - receives per-rule pass reports at Debug level. Nil means
//	         slog.Default().
type Options struct {
	Ctx    context.Context
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context and the
// default logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: slog.Default()}
}

// normalize fills nil fields in place.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// stopped reports whether cancellation was requested.
func (o *Options) stopped() bool {
	return o.Ctx.Err() != nil
}

// report logs one rule's pass summary the way the drivers account for
// their work: how many passes ran and how many matches each pass found.
func report(logger *slog.Logger, name string, matchCounts []int) {
	total := 0
	for _, n := range matchCounts {
		total += n
	}
	logger.Debug("simplification pass finished",
		"rule", name,
		"iterations", len(matchCounts),
		"matches", total,
	)
}
