package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineStore(t *testing.T) {
	store := NewBaselineStore()
	now := time.Now()

	t.Run("unknown_site_is_absent", func(t *testing.T) {
		_, ok := store.Get("shop")
		assert.False(t, ok)
	})

	t.Run("put_then_get", func(t *testing.T) {
		store.Put("shop", RawSample{CPUUsageUsec: 123}, now)
		b, ok := store.Get("shop")
		require.True(t, ok)
		assert.Equal(t, uint64(123), b.Sample.CPUUsageUsec)
		assert.Equal(t, now, b.At)
	})

	t.Run("put_overwrites", func(t *testing.T) {
		later := now.Add(time.Second)
		store.Put("shop", RawSample{CPUUsageUsec: 456}, later)
		b, ok := store.Get("shop")
		require.True(t, ok)
		assert.Equal(t, uint64(456), b.Sample.CPUUsageUsec)
		assert.Equal(t, later, b.At)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("drop_discards", func(t *testing.T) {
		store.Drop("shop")
		_, ok := store.Get("shop")
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("drop_unknown_is_noop", func(t *testing.T) {
		store.Drop("never-seen")
		assert.Equal(t, 0, store.Len())
	})
}
