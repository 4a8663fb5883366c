//go:build linux

package usage

import (
	"time"

	"golang.org/x/sys/unix"
)

func selfUsage() (user, system time.Duration, maxRSS uint64) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, 0
	}
	user = time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
	system = time.Duration(ru.Stime.Sec)*time.Second + time.Duration(ru.Stime.Usec)*time.Microsecond
	// Linux reports ru_maxrss in kilobytes.
	maxRSS = uint64(ru.Maxrss) * 1024
	return user, system, maxRSS
}
