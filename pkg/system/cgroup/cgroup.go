//go:build linux

package cgroup

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Supported reports whether a cgroup2 (unified hierarchy) filesystem is
// mounted, by parsing /proc/self/mountinfo. The line format has a " - "
// separator before the fstype; that is the only field we care about.
func Supported() error {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return errors.Wrap(err, "open mountinfo")
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		// mountinfo has: <fields> - <fstype> <source> <superopts>
		sep := " - "
		i := strings.LastIndex(line, sep)
		if i < 0 {
			continue
		}
		fields := strings.Fields(line[i+len(sep):])
		if len(fields) >= 1 && fields[0] == "cgroup2" {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "scan mountinfo")
	}
	return errors.New("no cgroup2 mount found")
}
