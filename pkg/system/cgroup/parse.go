package cgroup

import (
	"strconv"
	"strings"

	"github.com/WebGeeSolutions/website-usage/pkg/usage"
)

const unlimited = "max"

// parseCPUStatUsage extracts usage_usec from cpu.stat content.
func parseCPUStatUsage(content string) uint64 {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "usage_usec ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		return v
	}
	return 0
}

// parseCPUMax parses cpu.max, which is "quota period" or "max period".
// Malformed content reads as unlimited.
func parseCPUMax(content string) usage.CPULimit {
	fields := strings.Fields(content)
	if len(fields) != 2 || fields[0] == unlimited {
		return usage.CPULimit{Unlimited: true}
	}
	quota, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || quota == 0 {
		return usage.CPULimit{Unlimited: true}
	}
	period, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil || period == 0 {
		return usage.CPULimit{Unlimited: true}
	}
	return usage.CPULimit{QuotaUsec: quota, PeriodUsec: period}
}

// parseCeiling parses a single-value limit file (memory.max, pids.max):
// either "max" or a number.
func parseCeiling(content string) usage.Ceiling {
	if content == unlimited {
		return usage.Ceiling{Unlimited: true}
	}
	v, err := strconv.ParseUint(content, 10, 64)
	if err != nil {
		return usage.Ceiling{Unlimited: true}
	}
	return usage.Ceiling{Value: v}
}

// parseUintLine parses a single-number file (memory.current, pids.current).
func parseUintLine(content string) uint64 {
	v, err := strconv.ParseUint(content, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIOStat sums rbytes and wbytes across all device lines of io.stat.
// Lines look like "8:0 rbytes=1024 wbytes=2048 rios=3 wios=4 ...".
func parseIOStat(content string) (readBytes, writeBytes uint64) {
	for _, line := range strings.Split(content, "\n") {
		for _, kv := range strings.Fields(line) {
			eq := strings.IndexByte(kv, '=')
			if eq < 0 {
				continue
			}
			v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
			if err != nil {
				continue
			}
			switch kv[:eq] {
			case "rbytes":
				readBytes += v
			case "wbytes":
				writeBytes += v
			}
		}
	}
	return readBytes, writeBytes
}
