//go:build linux

package sites

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"
)

// Owner resolves the display label for a site from the owning uid of its
// home directory under dir. Any failure yields UnknownOwner; ownership is
// display metadata and must never fail a sampling pass.
func Owner(dir, site string) string {
	fi, err := os.Stat(filepath.Join(dir, site))
	if err != nil {
		return UnknownOwner
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return UnknownOwner
	}
	u, err := user.LookupId(strconv.FormatUint(uint64(st.Uid), 10))
	if err != nil {
		return UnknownOwner
	}
	return u.Username
}
