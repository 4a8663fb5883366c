// Package cgroup reads per-site resource accounting counters and limits
// from a cgroup v2 subtree, one directory per site.
//
// Every reader tolerates a missing or unreadable counter file by
// substituting zero (counters/gauges) or unlimited (ceilings): a site mid
// creation or teardown must not fail a whole sampling pass. Only a site
// with no backing directory at all is an error.
package cgroup

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/usage"
	"github.com/cockroachdb/errors"
)

const (
	// DefaultRoot is where the site cgroups live on a standard install.
	DefaultRoot = "/sys/fs/cgroup/websites"

	defaultReadTimeout = 2 * time.Second
)

// Option configures a Source.
type Option func(*Source)

// WithRoot points the source at a custom hierarchy root (useful for
// testing against a fixture tree).
func WithRoot(root string) Option {
	return func(s *Source) { s.root = root }
}

// WithReadTimeout bounds how long a single counter read may block.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Source reads raw counters for sites under one cgroup v2 root.
type Source struct {
	root    string
	timeout time.Duration
}

func NewSource(opts ...Option) *Source {
	s := &Source{root: DefaultRoot, timeout: defaultReadTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the hierarchy root this source reads from.
func (s *Source) Root() string { return s.root }

// Read captures one instant's counters and the current limits for a site.
// Individual missing files degrade to zero/unlimited; a missing site
// directory returns ErrNoSite.
func (s *Source) Read(site string) (usage.RawSample, usage.Limits, error) {
	dir := filepath.Join(s.root, site)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return usage.RawSample{}, usage.Limits{}, errors.Wrapf(ErrNoSite, "%s", dir)
	}

	var sample usage.RawSample
	limits := usage.Limits{
		CPU:    usage.CPULimit{Unlimited: true},
		Memory: usage.Ceiling{Unlimited: true},
		Procs:  usage.Ceiling{Unlimited: true},
	}

	if c, ok := s.readFile(dir, "cpu.stat"); ok {
		sample.CPUUsageUsec = parseCPUStatUsage(c)
	}
	if c, ok := s.readFile(dir, "io.stat"); ok {
		sample.ReadBytes, sample.WriteBytes = parseIOStat(c)
	}
	if c, ok := s.readFile(dir, "memory.current"); ok {
		sample.MemoryCurrent = parseUintLine(c)
	}
	if c, ok := s.readFile(dir, "pids.current"); ok {
		sample.Procs = parseUintLine(c)
	}

	if c, ok := s.readFile(dir, "cpu.max"); ok {
		limits.CPU = parseCPUMax(c)
	}
	if c, ok := s.readFile(dir, "memory.max"); ok {
		limits.Memory = parseCeiling(c)
	}
	if c, ok := s.readFile(dir, "pids.max"); ok {
		limits.Procs = parseCeiling(c)
	}

	return sample, limits, nil
}

// readFile reads one counter file with a bounded wait. A read stuck on a
// wedged kernel interface must not stall the whole tick, so the read runs
// in its own goroutine and is abandoned after the timeout.
func (s *Source) readFile(dir, name string) (string, bool) {
	type result struct {
		b   []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := os.ReadFile(filepath.Join(dir, name))
		ch <- result{b, err}
	}()

	t := time.NewTimer(s.timeout)
	defer t.Stop()
	select {
	case r := <-ch:
		if r.err != nil {
			return "", false
		}
		return strings.TrimSpace(string(r.b)), true
	case <-t.C:
		return "", false
	}
}
