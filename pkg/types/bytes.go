package types

import "github.com/dustin/go-humanize"

// Bytes is a uint64 wrapper representing a size in bytes.
type Bytes uint64

// String returns a human-readable figure with a binary unit (KiB, MiB, ...).
func (b Bytes) String() string {
	return humanize.IBytes(uint64(b))
}

// MiB returns the number of mebibytes, truncated to an integer.
func (b Bytes) MiB() uint64 { return uint64(b) / (1 << 20) }
