package usage

import (
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
)

// All CPU time in this package is normalized to microseconds: cpu.stat's
// usage_usec counter and cpu.max's quota/period pair already share that
// unit. Over an elapsed wall window E usec a site may consume
//
//	quota * E / period   usec of CPU time when limited, or
//	cores * E            usec when unlimited,
//
// and the CPU percentage is delta*100/budget. Percentages are carried as
// scaled integers in hundredths of a percent, core equivalents in tenths
// of a core, I/O rates in hundredths of a MiB/s.

// counterDelta returns curr-prev, clamped to zero when the counter
// regressed (site restart or accounting reset).
func counterDelta(curr, prev uint64) uint64 {
	if curr >= prev {
		return curr - prev
	}
	return 0
}

// percentCenti returns num/den as a percentage in hundredths of a percent.
// A zero denominator yields exactly zero rather than a fault.
func percentCenti(num, den uint64) types.Decimal {
	if den == 0 {
		return types.Centi(0)
	}
	return types.Centi(int64(num * 10000 / den))
}

// cpuBudgetUsec is the CPU time the site was allowed to consume over the
// elapsed window, in microseconds.
func cpuBudgetUsec(lim CPULimit, elapsed time.Duration, cores int) uint64 {
	elapsedUsec := uint64(elapsed.Microseconds())
	if lim.Unlimited || lim.QuotaUsec == 0 || lim.PeriodUsec == 0 {
		if cores <= 0 {
			return 0
		}
		return uint64(cores) * elapsedUsec
	}
	return lim.QuotaUsec * elapsedUsec / lim.PeriodUsec
}

func cpuPercent(prev, curr uint64, lim CPULimit, elapsed time.Duration, cores int) types.Decimal {
	return percentCenti(counterDelta(curr, prev), cpuBudgetUsec(lim, elapsed, cores))
}

// coreEquivalent is the allocated-core figure in tenths of a core:
// quota/period when limited, the full host core count otherwise.
func coreEquivalent(lim CPULimit, cores int) types.Decimal {
	if lim.Unlimited || lim.PeriodUsec == 0 {
		if cores < 0 {
			cores = 0
		}
		return types.Deci(int64(cores) * 10)
	}
	return types.Deci(int64(lim.QuotaUsec * 10 / lim.PeriodUsec))
}

// ioRateCenti converts a byte delta over the elapsed window into hundredths
// of a MiB per second. 390625/4096 is 100*1e6/2^20 reduced, which keeps the
// intermediate product inside uint64 for any realistic per-window delta.
func ioRateCenti(deltaBytes uint64, elapsed time.Duration) types.Decimal {
	elapsedUsec := uint64(elapsed.Microseconds())
	if elapsedUsec == 0 {
		return types.Centi(0)
	}
	return types.Centi(int64(deltaBytes * 390625 / (4096 * elapsedUsec)))
}

// memPercent is current usage against the effective ceiling; an unlimited
// ceiling means the host's total memory.
func memPercent(current uint64, ceiling Ceiling, memTotal types.Bytes) types.Decimal {
	den := ceiling.Value
	if ceiling.Unlimited {
		den = uint64(memTotal)
	}
	return percentCenti(current, den)
}

// Derive turns one site's current sample, its limits and the previous
// baseline (if any) into a fully populated SampleResult. With no baseline,
// or a non-positive window, every rate field is exactly zero; gauges are
// still reported.
func Derive(site, owner string, prev Baseline, havePrev bool, sample RawSample,
	limits Limits, now time.Time, cores int, memTotal types.Bytes) SampleResult {

	res := SampleResult{
		Site:       site,
		Owner:      owner,
		CPUPercent: types.Centi(0),
		Cores:      coreEquivalent(limits.CPU, cores),
		MemUsed:    types.Bytes(sample.MemoryCurrent),
		MemMax:     limits.Memory,
		MemPercent: memPercent(sample.MemoryCurrent, limits.Memory, memTotal),
		ReadMBps:   types.Centi(0),
		WriteMBps:  types.Centi(0),
		TotalMBps:  types.Centi(0),
		Procs:      sample.Procs,
		ProcsMax:   limits.Procs,
	}

	if !havePrev {
		return res
	}
	elapsed := now.Sub(prev.At)
	if elapsed <= 0 {
		return res
	}

	res.CPUPercent = cpuPercent(prev.Sample.CPUUsageUsec, sample.CPUUsageUsec, limits.CPU, elapsed, cores)

	rd := counterDelta(sample.ReadBytes, prev.Sample.ReadBytes)
	wr := counterDelta(sample.WriteBytes, prev.Sample.WriteBytes)
	res.ReadMBps = ioRateCenti(rd, elapsed)
	res.WriteMBps = ioRateCenti(wr, elapsed)
	res.TotalMBps = ioRateCenti(rd+wr, elapsed)

	return res
}
