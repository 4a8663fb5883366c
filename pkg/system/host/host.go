// Package host probes the machine facts the rate calculator and renderers
// need: hostname, core count and total memory. Probing is best-effort; a
// field that cannot be determined is zero.
package host

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
)

type Info struct {
	Hostname string
	Cores    int
	MemTotal types.Bytes
}

// Probe collects host facts. MemTotal is zero on systems without
// /proc/meminfo; callers already treat a zero ceiling as "percentage
// unavailable".
func Probe() Info {
	name, _ := os.Hostname()
	return Info{
		Hostname: name,
		Cores:    runtime.NumCPU(),
		MemTotal: memTotal("/proc/meminfo"),
	}
}

// memTotal parses the MemTotal line, which is reported in kB.
func memTotal(path string) types.Bytes {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return types.Bytes(kb * 1024)
	}
	return 0
}
