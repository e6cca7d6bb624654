// Package bench runs the win-rate and performance benchmarks over a set of
// algorithm specs and writes their results as CSV.
package bench

import (
	"errors"
	"fmt"
)

var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options controls both benchmarks. Lower and Upper bound the number of
// random plies played before each trial starts.
type Options struct {
	Trials   int
	Lower    int
	Upper    int
	MaxDepth int // performance only
	Workers  int
}

func (o Options) validate() error {
	if o.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidOptions, o.Trials)
	}
	if o.Lower < 0 || o.Upper < 0 {
		return fmt.Errorf("%w: negative opening bound", ErrInvalidOptions)
	}
	return nil
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
