package sites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	t.Run("sorted_directories_only", func(t *testing.T) {
		root := t.TempDir()
		for _, d := range []string{"zeta.example", "alpha.example", "mid.example"} {
			require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
		}
		// stray files are not sites
		require.NoError(t, os.WriteFile(filepath.Join(root, "cgroup.procs"), nil, 0o644))

		got, err := Discover(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.example", "mid.example", "zeta.example"}, got)
	})

	t.Run("empty_root", func(t *testing.T) {
		got, err := Discover(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unreadable_root_is_error", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestOwner_UnknownOnFailure(t *testing.T) {
	assert.Equal(t, UnknownOwner, Owner(t.TempDir(), "no-such-site"))
}
