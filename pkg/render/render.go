// Package render turns sample results into operator-facing output, either
// a fixed-width table or JSON documents. Field derivation belongs to
// pkg/usage; this package only formats.
package render

import "github.com/WebGeeSolutions/website-usage/pkg/usage"

// Renderer consumes the per-tick results and, when self-instrumentation is
// enabled, the final performance summary.
type Renderer interface {
	Results([]usage.SampleResult) error
	Perf(usage.PerfSummary) error
}
