package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/types"
	"github.com/WebGeeSolutions/website-usage/pkg/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Results(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)
	j.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, j.Results([]usage.SampleResult{sampleRow()}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	rows, ok := doc["sites"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)

	assert.Equal(t, "shop.example", row["site"])
	assert.Equal(t, "alice", row["owner"])
	// fixed-point fields come out as JSON numbers, not strings
	assert.InDelta(t, 25.0, row["cpu_percent"], 1e-9)
	assert.InDelta(t, 0.5, row["cores"], 1e-9)
	assert.InDelta(t, float64(1<<30), row["mem_max_bytes"], 1e-9)
	assert.InDelta(t, 12, row["procs"], 1e-9)
}

func TestJSON_UnlimitedCeilingIsSentinelString(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)

	row := sampleRow()
	row.MemMax = usage.Ceiling{Unlimited: true}
	require.NoError(t, j.Results([]usage.SampleResult{row}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	got := doc["sites"].([]any)[0].(map[string]any)
	assert.Equal(t, "max", got["mem_max_bytes"])
}

func TestJSON_Perf(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)

	require.NoError(t, j.Perf(usage.PerfSummary{Runs: 7, PeakRSS: types.Bytes(1024)}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	perf, ok := doc["perf"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 7, perf["runs"], 1e-9)
	assert.InDelta(t, 1024, perf["peak_rss_bytes"], 1e-9)
}
