package usage

import "github.com/cockroachdb/errors"

var (
	// ErrBadInterval indicates a non-positive sampling interval.
	ErrBadInterval = errors.New("usage: interval must be positive")

	// ErrNoSites indicates the scheduler was started with an empty
	// tracked set.
	ErrNoSites = errors.New("usage: no sites to sample")
)
