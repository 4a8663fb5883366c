//go:build !linux

package sites

// Owner is a stub on non-Linux platforms; ownership comes from uid
// metadata the portable API does not expose.
func Owner(dir, site string) string {
	return UnknownOwner
}
