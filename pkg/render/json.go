package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/usage"
)

// JSON streams one document per tick, plus a closing document for the perf
// summary when enabled.
type JSON struct {
	enc *json.Encoder
	now func() time.Time
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w), now: time.Now}
}

type tickDoc struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Sites       []usage.SampleResult `json:"sites"`
}

type perfDoc struct {
	Perf usage.PerfSummary `json:"perf"`
}

func (j *JSON) Results(rows []usage.SampleResult) error {
	return j.enc.Encode(tickDoc{GeneratedAt: j.now(), Sites: rows})
}

func (j *JSON) Perf(s usage.PerfSummary) error {
	return j.enc.Encode(perfDoc{Perf: s})
}
