package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemTotal(t *testing.T) {
	t.Run("parses_kb_line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "meminfo")
		content := "MemTotal:       16384000 kB\nMemFree:         1234567 kB\nMemAvailable:    7654321 kB\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		assert.Equal(t, types.Bytes(16384000*1024), memTotal(path))
	})
	t.Run("missing_file_is_zero", func(t *testing.T) {
		assert.Equal(t, types.Bytes(0), memTotal(filepath.Join(t.TempDir(), "nope")))
	})
	t.Run("malformed_line_is_zero", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "meminfo")
		require.NoError(t, os.WriteFile(path, []byte("MemTotal: lots kB\n"), 0o644))
		assert.Equal(t, types.Bytes(0), memTotal(path))
	})
}

func TestProbe(t *testing.T) {
	info := Probe()
	assert.Positive(t, info.Cores)
}
