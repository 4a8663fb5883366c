//go:build !linux

package usage

import "time"

func selfUsage() (user, system time.Duration, maxRSS uint64) {
	return 0, 0, 0
}
