// Package config holds the run configuration: built-in defaults,
// optionally overridden by a YAML file, optionally overridden by flags.
package config

import (
	"bytes"
	"os"
	"time"

	"github.com/WebGeeSolutions/website-usage/pkg/system/cgroup"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// CgroupRoot is the cgroup v2 subtree holding one directory per site.
	CgroupRoot string `yaml:"cgroup_root"`
	// SitesDir holds the site home directories used for owner lookup.
	SitesDir string `yaml:"sites_dir"`
	// Interval is the sampling window in whole seconds.
	Interval int `yaml:"interval"`
	// Watch repeats sampling until interrupted.
	Watch bool `yaml:"watch"`
	// JSON selects machine-readable output.
	JSON bool `yaml:"json"`
	// Perf enables self-instrumentation of the monitor's own cost.
	Perf bool `yaml:"perf"`
	// WarnPercent is the table highlight threshold.
	WarnPercent int `yaml:"warn_percent"`
	// ReadTimeout bounds a single counter-file read.
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

func Default() Config {
	return Config{
		CgroupRoot:  cgroup.DefaultRoot,
		SitesDir:    "/var/www",
		Interval:    1,
		WarnPercent: 90,
		ReadTimeout: 2 * time.Second,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected so a
// typoed option fails loudly instead of being ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations the scheduler cannot run with.
func (c Config) Validate() error {
	if c.Interval < 1 {
		return errors.Newf("interval must be a positive number of seconds, got %d", c.Interval)
	}
	if c.WarnPercent < 1 || c.WarnPercent > 100 {
		return errors.Newf("warn_percent must be in [1,100], got %d", c.WarnPercent)
	}
	if c.CgroupRoot == "" {
		return errors.New("cgroup_root must not be empty")
	}
	return nil
}
