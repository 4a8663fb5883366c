package usage

import (
	"sync"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
)

// readSelfUsage reports the monitor's own accumulated CPU time and max
// resident set size. Tests stub it; the real reader lives in the per-OS
// rusage files.
var readSelfUsage = selfUsage

// PerfSummary is the final self-instrumentation report for a run.
type PerfSummary struct {
	Runs      int           `json:"runs"`
	WallTotal time.Duration `json:"wall_total_ns"`
	WallAvg   time.Duration `json:"wall_avg_ns"`
	PeakRSS   types.Bytes   `json:"peak_rss_bytes"`
	CPUUser   time.Duration `json:"cpu_user_ns"`
	CPUSystem time.Duration `json:"cpu_system_ns"`
}

// Perf measures the monitor's own cost across ticks: wall time per tick,
// peak resident memory, and the process's CPU time between Start and the
// first Summary call.
type Perf struct {
	mu        sync.Mutex
	runs      int
	wall      time.Duration
	peakRSS   uint64
	userStart time.Duration
	sysStart  time.Duration

	done    bool
	summary PerfSummary
}

func NewPerf() *Perf { return &Perf{} }

// Start records the CPU-time baseline. Call once before the first tick.
func (p *Perf) Start() {
	user, system, rss := readSelfUsage()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userStart, p.sysStart = user, system
	if rss > p.peakRSS {
		p.peakRSS = rss
	}
}

// RecordTick accumulates one tick's wall-clock duration.
func (p *Perf) RecordTick(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.runs++
	p.wall += d
}

// RecordMemorySample raises the resident-memory high-water mark. It never
// lowers it.
func (p *Perf) RecordMemorySample() {
	_, _, rss := readSelfUsage()
	p.mu.Lock()
	defer p.mu.Unlock()
	if rss > p.peakRSS {
		p.peakRSS = rss
	}
}

// Summary finalizes and returns the accumulated figures. The first call
// freezes the report; later calls return the same value, so the normal
// exit path and the cancellation path cannot double-count.
func (p *Perf) Summary() PerfSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return p.summary
	}
	user, system, rss := readSelfUsage()
	if rss > p.peakRSS {
		p.peakRSS = rss
	}
	s := PerfSummary{
		Runs:      p.runs,
		WallTotal: p.wall,
		PeakRSS:   types.Bytes(p.peakRSS),
		CPUUser:   user - p.userStart,
		CPUSystem: system - p.sysStart,
	}
	if s.CPUUser < 0 {
		s.CPUUser = 0
	}
	if s.CPUSystem < 0 {
		s.CPUSystem = 0
	}
	if p.runs > 0 {
		s.WallAvg = p.wall / time.Duration(p.runs)
	}
	p.done = true
	p.summary = s
	return s
}
