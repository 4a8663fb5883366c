package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes_String(t *testing.T) {
	cases := []struct {
		in   Bytes
		want string
	}{
		{Bytes(0), "0 B"},
		{Bytes(512), "512 B"},
		{Bytes(1536), "1.5 KiB"},
		{Bytes(256 << 20), "256 MiB"},
		{Bytes(1 << 30), "1.0 GiB"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestBytes_MiB(t *testing.T) {
	assert.Equal(t, uint64(0), Bytes(1<<20-1).MiB())
	assert.Equal(t, uint64(1), Bytes(1<<20).MiB())
	assert.Equal(t, uint64(256), Bytes(256<<20).MiB())
}
