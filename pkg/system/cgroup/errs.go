package cgroup

import "github.com/cockroachdb/errors"

// ErrNoSite indicates the site has no accounting subtree under the
// configured root.
var ErrNoSite = errors.New("cgroup: no site subtree")
