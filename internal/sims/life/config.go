package life

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"lineage-life/internal/core"
	"lineage-life/internal/patterns"
)

// Seeding layouts understood by Reset.
const (
	LayoutTiled   = "tiled"
	LayoutScatter = "scatter"
	LayoutSoup    = "soup"
)

// ErrUnknownLayout is returned when Config.Layout names no known layout.
var ErrUnknownLayout = errors.New("unknown layout")

// Config controls grid dimensions and how the first generation is seeded.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`

	// Workers > 1 splits each generation into row bands evaluated concurrently.
	Workers int `json:"workers"`

	Layout   string   `json:"layout"`
	Patterns []string `json:"patterns"`
	Spacing  int      `json:"spacing"`
	Scatter  int      `json:"scatter"`
	Density  float64  `json:"density"`

	Interval time.Duration `json:"interval"`
}

// DefaultConfig returns the standard configuration: a 100x100 torus tiled with
// ten classic presets, advancing every 100ms.
func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  100,
		Seed:    42,
		Workers: 1,
		Layout:  LayoutTiled,
		Patterns: []string{
			"block", "beehive", "loaf", "boat", "tub",
			"blinker", "toad", "beacon", "glider", "lwss",
		},
		Spacing:  8,
		Scatter:  24,
		Density:  0.25,
		Interval: 100 * time.Millisecond,
	}
}

// Validate checks the fields that cannot be silently corrected.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidSize, "got %dx%d", c.Width, c.Height)
	}
	switch c.Layout {
	case LayoutTiled, LayoutScatter, LayoutSoup:
	default:
		return errors.Wrapf(ErrUnknownLayout, "%q", c.Layout)
	}
	if _, err := c.resolvePatterns(); err != nil {
		return errors.Wrap(err, "patterns")
	}
	return nil
}

func (c Config) resolvePatterns() ([]patterns.Pattern, error) {
	return patterns.ParseList(strings.Join(c.Patterns, ","))
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c with the parseable entries of cfg. Invalid
// values are ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["layout"]; ok && v != "" {
		c.Layout = strings.ToLower(v)
	}
	if v, ok := cfg["patterns"]; ok && v != "" {
		c.Patterns = strings.Split(v, ",")
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["scatter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Scatter = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	return c
}

// LoadConfig reads a JSON file over the defaults. The interval field is given
// in nanoseconds, matching time.Duration's JSON encoding.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", filename)
	}

	return config, nil
}

// Load builds a Config from an optional JSON file plus key=value overrides
// and validates the result.
func Load(filename string, overrides map[string]string) (Config, error) {
	c := DefaultConfig()
	if filename != "" {
		var err error
		if c, err = LoadConfig(filename); err != nil {
			return c, err
		}
	}
	c = ApplyMap(c, overrides)
	if err := c.Validate(); err != nil {
		return c, errors.Wrap(err, "[Load] invalid config")
	}
	return c, nil
}
