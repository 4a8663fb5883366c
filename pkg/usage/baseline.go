package usage

import (
	"sync"
	"time"
)

// BaselineStore keeps the most recent RawSample per site so the next tick
// can compute counter deltas. One entry per tracked site, overwritten every
// tick. The mutex makes it safe to fan sampling out across sites; with the
// default sequential tick loop it is uncontended.
type BaselineStore struct {
	mu        sync.Mutex
	baselines map[string]Baseline
}

func NewBaselineStore() *BaselineStore {
	return &BaselineStore{baselines: make(map[string]Baseline)}
}

// Get returns the stored baseline for site. ok is false when the site has
// not been sampled yet; callers treat that as "no delta available".
func (s *BaselineStore) Get(site string) (Baseline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.baselines[site]
	return b, ok
}

// Put records sample as the new baseline for site, taken at the given
// instant.
func (s *BaselineStore) Put(site string, sample RawSample, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselines[site] = Baseline{Sample: sample, At: at}
}

// Drop discards the baseline for a site that is no longer tracked.
func (s *BaselineStore) Drop(site string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.baselines, site)
}

// Len reports the number of sites with a stored baseline.
func (s *BaselineStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.baselines)
}
