// Package sites enumerates the monitored sites and resolves their owners.
package sites

import (
	"os"
	"slices"

	"github.com/cockroachdb/errors"
)

// UnknownOwner is the label used when a site's owner cannot be resolved.
const UnknownOwner = "unknown"

// Discover lists the site directories under root, sorted and deduplicated.
// Non-directories are skipped. An unreadable root is an error; the caller
// treats an empty result as a fatal configuration problem.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "discover sites under %s", root)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
