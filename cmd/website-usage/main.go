//go:build linux

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/WebGeeSolutions/website-usage/pkg/config"
	"github.com/WebGeeSolutions/website-usage/pkg/render"
	"github.com/WebGeeSolutions/website-usage/pkg/sites"
	"github.com/WebGeeSolutions/website-usage/pkg/system/cgroup"
	"github.com/WebGeeSolutions/website-usage/pkg/system/host"
	"github.com/WebGeeSolutions/website-usage/pkg/usage"
)

type opts struct {
	configPath string
	cgroupRoot string
	sitesDir   string
	interval   int
	watch      bool
	jsonOut    bool
	perf       bool
	warnPct    int
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "website-usage [SITE]...",
		Short: "Per-site resource usage from the cgroup v2 hierarchy",
		Long: `website-usage samples each site's cgroup v2 accounting counters, turns
them into rates and percentages against the configured limits, and prints
one row per site as a table or JSON. With --watch it repeats every interval
until interrupted; Ctrl-C is an orderly stop, not an error.

Examples:
  website-usage                          one reading for every site
  website-usage -w -i 2 shop.example     watch one site every 2 seconds
  website-usage --json --perf > out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), o, args, cmd.Flags().Changed)
		},
	}

	root.Flags().StringVarP(&o.configPath, "config", "c", "", "path to YAML config file")
	root.Flags().StringVar(&o.cgroupRoot, "cgroup-root", cgroup.DefaultRoot, "cgroup v2 subtree holding the site groups")
	root.Flags().StringVar(&o.sitesDir, "sites-dir", "/var/www", "directory of site homes, used for owner lookup")
	root.Flags().IntVarP(&o.interval, "interval", "i", 1, "sampling window in seconds")
	root.Flags().BoolVarP(&o.watch, "watch", "w", false, "repeat every interval until interrupted")
	root.Flags().BoolVar(&o.jsonOut, "json", false, "emit JSON instead of a table")
	root.Flags().BoolVar(&o.perf, "perf", false, "report the monitor's own overhead on exit")
	root.Flags().IntVar(&o.warnPct, "warn-percent", 90, "highlight percentages at or above this value")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts, args []string, changed func(string) bool) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	// Flags beat the file, the file beats the defaults.
	if changed("cgroup-root") {
		cfg.CgroupRoot = o.cgroupRoot
	}
	if changed("sites-dir") {
		cfg.SitesDir = o.sitesDir
	}
	if changed("interval") {
		cfg.Interval = o.interval
	}
	if changed("watch") {
		cfg.Watch = o.watch
	}
	if changed("json") {
		cfg.JSON = o.jsonOut
	}
	if changed("perf") {
		cfg.Perf = o.perf
	}
	if changed("warn-percent") {
		cfg.WarnPercent = o.warnPct
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cgroup.Supported(); err != nil {
		return errors.Wrap(err, "cgroup v2 unavailable")
	}

	tracked := args
	if len(tracked) == 0 {
		var err error
		if tracked, err = sites.Discover(cfg.CgroupRoot); err != nil {
			return err
		}
	}
	if len(tracked) == 0 {
		return errors.Newf("no sites found under %s", cfg.CgroupRoot)
	}

	hi := host.Probe()

	var r render.Renderer
	if cfg.JSON {
		r = render.NewJSON(os.Stdout)
	} else {
		topts := []render.TableOption{render.WithWarnPercent(cfg.WarnPercent)}
		if cfg.Watch && term.IsTerminal(int(os.Stdout.Fd())) {
			topts = append(topts, render.WithClearScreen())
		}
		r = render.NewTable(os.Stdout, hi, topts...)
	}

	var perf *usage.Perf
	if cfg.Perf {
		perf = usage.NewPerf()
	}

	sched := &usage.Scheduler{
		Source: cgroup.NewSource(
			cgroup.WithRoot(cfg.CgroupRoot),
			cgroup.WithReadTimeout(cfg.ReadTimeout),
		),
		Store:    usage.NewBaselineStore(),
		Sites:    tracked,
		Owner:    func(site string) string { return sites.Owner(cfg.SitesDir, site) },
		Interval: time.Duration(cfg.Interval) * time.Second,
		Watch:    cfg.Watch,
		Cores:    hi.Cores,
		MemTotal: hi.MemTotal,
		Perf:     perf,
		Emit:     r.Results,
		EmitPerf: r.Perf,
	}
	return sched.Run(ctx)
}
