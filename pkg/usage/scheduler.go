package usage

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
)

// Scheduler drives the sampling loop. One-shot mode primes baselines, waits
// one full interval so the counter pairs differ meaningfully, then emits a
// single tick. Watch mode keeps ticking every interval until the context is
// cancelled; cancellation is observed between ticks, flushes the perf
// summary and is not an error.
type Scheduler struct {
	Source   Source
	Store    *BaselineStore
	Sites    []string
	Owner    func(site string) string // nil means every owner is "unknown"
	Interval time.Duration
	Watch    bool
	Cores    int
	MemTotal types.Bytes
	Perf     *Perf // nil disables self-instrumentation

	Emit     func([]SampleResult) error
	EmitPerf func(PerfSummary) error
	Logger   *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) bool
}

// Run executes the configured sampling loop and returns once it stops.
// Only configuration problems are errors; per-site failures are logged and
// skipped.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.Interval <= 0 {
		return ErrBadInterval
	}
	if len(s.Sites) == 0 {
		return ErrNoSites
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.sleep == nil {
		s.sleep = sleepCtx
	}
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	sites := slices.Clone(s.Sites)
	slices.Sort(sites)
	sites = slices.Compact(sites)

	if s.Perf != nil {
		s.Perf.Start()
	}

	s.prime(sites, log)
	for {
		if !s.sleep(ctx, s.Interval) {
			break
		}
		s.tick(sites, log)
		if !s.Watch {
			break
		}
	}

	if s.Perf != nil && s.EmitPerf != nil {
		if err := s.EmitPerf(s.Perf.Summary()); err != nil {
			log.Warn("perf summary emit failed", "err", err)
		}
	}
	return nil
}

// prime takes the initial baseline for every site without emitting
// anything; the first emitted tick then has a full window behind it.
func (s *Scheduler) prime(sites []string, log *slog.Logger) {
	for _, site := range sites {
		sample, _, err := s.Source.Read(site)
		if err != nil {
			log.Warn("skipping site", "site", site, "err", err)
			continue
		}
		s.Store.Put(site, sample, s.now())
	}
}

func (s *Scheduler) tick(sites []string, log *slog.Logger) {
	started := s.now()
	results := make([]SampleResult, 0, len(sites))
	for _, site := range sites {
		sample, limits, err := s.Source.Read(site)
		if err != nil {
			log.Warn("skipping site", "site", site, "err", err)
			// A vanished site that later reappears starts over with a
			// fresh baseline.
			s.Store.Drop(site)
			continue
		}
		now := s.now()
		owner := "unknown"
		if s.Owner != nil {
			owner = s.Owner(site)
		}
		prev, ok := s.Store.Get(site)
		results = append(results, Derive(site, owner, prev, ok, sample, limits, now, s.Cores, s.MemTotal))
		s.Store.Put(site, sample, now)
	}
	if s.Emit != nil {
		if err := s.Emit(results); err != nil {
			log.Warn("emit failed", "err", err)
		}
	}
	if s.Perf != nil {
		s.Perf.RecordTick(s.now().Sub(started))
		s.Perf.RecordMemorySample()
	}
}

// sleepCtx waits for d or until ctx is cancelled; false means cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
