package usage

import (
	"strconv"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
)

// RawSample is one instant's reading of a site's accounting counters.
// CPUUsageUsec, ReadBytes and WriteBytes are cumulative counters; the
// remaining fields are gauges. A counter whose backing file is missing
// reads as zero, never as an error.
type RawSample struct {
	CPUUsageUsec  uint64
	ReadBytes     uint64
	WriteBytes    uint64
	MemoryCurrent uint64
	Procs         uint64
}

// CPULimit is the configured CPU allotment: QuotaUsec microseconds of CPU
// time consumable per PeriodUsec microseconds of wall time, or unlimited.
type CPULimit struct {
	QuotaUsec  uint64
	PeriodUsec uint64
	Unlimited  bool
}

// Ceiling is an absolute resource ceiling (bytes, process count) that may
// be unlimited. Unlimited ceilings render and marshal as "max", the same
// sentinel the accounting filesystem uses.
type Ceiling struct {
	Value     uint64
	Unlimited bool
}

func (c Ceiling) String() string {
	if c.Unlimited {
		return "max"
	}
	return strconv.FormatUint(c.Value, 10)
}

func (c Ceiling) MarshalJSON() ([]byte, error) {
	if c.Unlimited {
		return []byte(`"max"`), nil
	}
	return []byte(strconv.FormatUint(c.Value, 10)), nil
}

// Limits holds a site's configured ceilings. They are owned by an external
// control plane and may change between ticks, so the scheduler re-reads
// them on every tick instead of caching.
type Limits struct {
	CPU    CPULimit
	Memory Ceiling
	Procs  Ceiling
}

// SampleResult is one site's fully derived reading for one tick. It is
// handed to a renderer immediately and never persisted.
type SampleResult struct {
	Site  string `json:"site"`
	Owner string `json:"owner"`

	CPUPercent types.Decimal `json:"cpu_percent"`
	Cores      types.Decimal `json:"cores"`

	MemUsed    types.Bytes   `json:"mem_used_bytes"`
	MemMax     Ceiling       `json:"mem_max_bytes"`
	MemPercent types.Decimal `json:"mem_percent"`

	ReadMBps  types.Decimal `json:"io_read_mbps"`
	WriteMBps types.Decimal `json:"io_write_mbps"`
	TotalMBps types.Decimal `json:"io_total_mbps"`

	Procs    uint64  `json:"procs"`
	ProcsMax Ceiling `json:"procs_max"`
}

// Baseline is the previous tick's counter snapshot for one site, plus the
// wall-clock instant it was taken.
type Baseline struct {
	Sample RawSample
	At     time.Time
}

// Source reads one site's raw counters and current limits. Implementations
// must tolerate individual missing counters (zero / unlimited substitution)
// and only fail when the site has no backing subtree at all.
type Source interface {
	Read(site string) (RawSample, Limits, error)
}
