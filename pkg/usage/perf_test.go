package usage

import (
	"testing"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRusage(t *testing.T) (setUser, setSys *time.Duration, setRSS *uint64) {
	t.Helper()
	var user, system time.Duration
	var rss uint64
	orig := readSelfUsage
	readSelfUsage = func() (time.Duration, time.Duration, uint64) {
		return user, system, rss
	}
	t.Cleanup(func() { readSelfUsage = orig })
	return &user, &system, &rss
}

func TestPerf_Accumulation(t *testing.T) {
	user, system, rss := stubRusage(t)

	p := NewPerf()
	*user, *system, *rss = 10*time.Millisecond, 5*time.Millisecond, 1000
	p.Start()

	p.RecordTick(100 * time.Millisecond)
	p.RecordTick(300 * time.Millisecond)

	*user, *system, *rss = 110*time.Millisecond, 25*time.Millisecond, 1500
	s := p.Summary()

	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 400*time.Millisecond, s.WallTotal)
	assert.Equal(t, 200*time.Millisecond, s.WallAvg)
	assert.Equal(t, types.Bytes(1500), s.PeakRSS)
	assert.Equal(t, 100*time.Millisecond, s.CPUUser)
	assert.Equal(t, 20*time.Millisecond, s.CPUSystem)
}

func TestPerf_PeakRSSIsMonotonic(t *testing.T) {
	_, _, rss := stubRusage(t)

	p := NewPerf()
	*rss = 2000
	p.RecordMemorySample()
	*rss = 500
	p.RecordMemorySample() // must not lower the high-water mark
	*rss = 3000
	p.RecordMemorySample()

	s := p.Summary()
	assert.Equal(t, types.Bytes(3000), s.PeakRSS)
}

func TestPerf_SummaryIsFrozenAfterFirstCall(t *testing.T) {
	user, _, rss := stubRusage(t)

	p := NewPerf()
	p.Start()
	p.RecordTick(50 * time.Millisecond)

	*user, *rss = 40*time.Millisecond, 700
	first := p.Summary()
	require.Equal(t, 1, first.Runs)

	// later activity must not change the emitted report
	*user, *rss = 90*time.Millisecond, 9999
	p.RecordTick(time.Second)
	assert.Equal(t, first, p.Summary())
}

func TestPerf_ZeroTicks(t *testing.T) {
	stubRusage(t)

	p := NewPerf()
	p.Start()
	s := p.Summary()
	assert.Equal(t, 0, s.Runs)
	assert.Equal(t, time.Duration(0), s.WallAvg)
}
