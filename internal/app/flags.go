package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
)

// Overrides collects repeatable key=value flags into a config map.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return errors.Errorf("override %q is not in key=value form", value)
	}
	o[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

// Config represents the command-line parameters shared by the GUI and
// headless runners.
type Config struct {
	ConfigFile string
	Overrides  Overrides
	Seed       int64

	WindowW int
	WindowH int
	TPS     int
	HUD     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Overrides: Overrides{},
		WindowW:   800,
		WindowH:   800,
		TPS:       60,
	}
}

// BindSim attaches the simulation flags shared by every runner.
func (c *Config) BindSim(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with simulation settings")
	fs.Var(c.Overrides, "set", "simulation setting in key=value form (repeatable)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random layouts (0 uses the configured seed)")
}

// Bind attaches the simulation and window flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindSim(fs)
	fs.IntVar(&c.WindowW, "width", c.WindowW, "initial window width in pixels")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window update rate in ticks per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}
