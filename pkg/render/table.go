package render

import (
	"fmt"
	"io"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/system/host"
	"github.com/WebGeeSolutions/website-usage/pkg/usage"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const defaultWarnPercent = 90

var warnColor = color.New(color.FgRed, color.Bold)

// TableOption configures a Table renderer.
type TableOption func(*Table)

// WithClearScreen makes each tick start by clearing the terminal, for
// watch mode on a TTY.
func WithClearScreen() TableOption {
	return func(t *Table) { t.clear = true }
}

// WithWarnPercent sets the percentage at which cells are highlighted.
func WithWarnPercent(pct int) TableOption {
	return func(t *Table) {
		if pct > 0 {
			t.warnCenti = int64(pct) * 100
		}
	}
}

// Table renders results as a fixed-width table with a one-line host
// header. Percentages at or above the warning threshold are highlighted;
// the color library disables itself automatically on non-terminals.
type Table struct {
	w         io.Writer
	host      host.Info
	warnCenti int64
	clear     bool

	now func() time.Time
}

func NewTable(w io.Writer, hostInfo host.Info, opts ...TableOption) *Table {
	t := &Table{
		w:         w,
		host:      hostInfo,
		warnCenti: defaultWarnPercent * 100,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Results(rows []usage.SampleResult) error {
	if t.clear {
		fmt.Fprint(t.w, "\033[H\033[2J")
	}
	fmt.Fprintf(t.w, "%s  |  %d cores, %s  |  %s\n\n",
		t.host.Hostname, t.host.Cores, t.host.MemTotal, t.now().Format("2006-01-02 15:04:05"))

	tw := tablewriter.NewWriter(t.w)
	tw.SetHeader([]string{
		"SITE", "OWNER", "CPU%", "CORES",
		"MEM USED", "MEM MAX", "MEM%",
		"READ MB/S", "WRITE MB/S", "IO MB/S", "PROCS",
	})
	tw.SetAutoFormatHeaders(false)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetColumnSeparator("")
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range rows {
		tw.Append([]string{
			r.Site,
			r.Owner,
			t.percentCell(r.CPUPercent.Units(), r.CPUPercent.String()),
			r.Cores.String(),
			humanize.IBytes(uint64(r.MemUsed)),
			ceilingBytes(r.MemMax),
			t.percentCell(r.MemPercent.Units(), r.MemPercent.String()),
			r.ReadMBps.String(),
			r.WriteMBps.String(),
			r.TotalMBps.String(),
			fmt.Sprintf("%d/%s", r.Procs, r.ProcsMax),
		})
	}
	tw.Render()
	fmt.Fprintln(t.w)
	return nil
}

func (t *Table) Perf(s usage.PerfSummary) error {
	fmt.Fprintf(t.w, "monitor overhead (over %d ticks):\n", s.Runs)
	fmt.Fprintf(t.w, "- wall (total):  %s\n", s.WallTotal)
	fmt.Fprintf(t.w, "- wall (avg):    %s\n", s.WallAvg)
	fmt.Fprintf(t.w, "- peak rss:      %s\n", humanize.IBytes(uint64(s.PeakRSS)))
	fmt.Fprintf(t.w, "- cpu (user):    %s\n", s.CPUUser)
	fmt.Fprintf(t.w, "- cpu (system):  %s\n", s.CPUSystem)
	return nil
}

func (t *Table) percentCell(centi int64, formatted string) string {
	if centi >= t.warnCenti {
		return warnColor.Sprint(formatted)
	}
	return formatted
}

// ceilingBytes formats a byte ceiling, keeping the "max" sentinel for
// unlimited.
func ceilingBytes(c usage.Ceiling) string {
	if c.Unlimited {
		return "max"
	}
	return humanize.IBytes(c.Value)
}
