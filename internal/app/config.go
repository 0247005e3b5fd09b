package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim            string  `yaml:"sim"`
	Input          string  `yaml:"input"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Density        float64 `yaml:"density"`
	Scale          int     `yaml:"scale"`
	TPS            int     `yaml:"tps"`
	StepsPerSecond int     `yaml:"steps_per_second"`
	Seed           int64   `yaml:"seed"`

	// ConfigPath names an optional YAML file read by Resolve.
	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "seating",
		Width:          96,
		Height:         96,
		Density:        0.7,
		Scale:          6,
		TPS:            60,
		StepsPerSecond: 4,
		Seed:           42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "layout file to load instead of a random layout")
	fs.IntVar(&c.Width, "w", c.Width, "random layout width")
	fs.IntVar(&c.Height, "h", c.Height, "random layout height")
	fs.Float64Var(&c.Density, "density", c.Density, "share of random positions that hold a seat")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPerSecond, "sps", c.StepsPerSecond, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random layouts")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with viewer settings")
}

// LoadFile overlays the settings found in the YAML file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Resolve applies the config file named by -config, if any, and then
// re-applies every flag set explicitly on fs so the command line wins.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return c.Validate()
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return c.Validate()
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim == "":
		return errors.New("config: sim must be set")
	case c.Scale <= 0:
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	case c.StepsPerSecond <= 0:
		return fmt.Errorf("config: steps per second must be positive, got %d", c.StepsPerSecond)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("config: density must be within [0, 1], got %g", c.Density)
	}
	return nil
}

// SimOptions returns the key/value map handed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
	if c.Input != "" {
		opts["path"] = c.Input
	}
	return opts
}
