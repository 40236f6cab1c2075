package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"conway/pkg/sims/life"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the viewers.
type Config struct {
	File   string
	Sim    string
	Size   int
	Buffer int
	Seed   int64
	FPS    int
	Scale  int
	Paused bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:    "life",
		Size:   def.Size,
		Buffer: def.BufferSize,
		Seed:   def.Seed,
		FPS:    def.FrameRate,
		Scale:  8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "TOML file with default settings")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "side length of the board")
	fs.IntVar(&c.Buffer, "buffer", c.Buffer, "generations kept for stepping back")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random starting board")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second while running")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file its values replace the defaults, and flags given on the command line
// still win over the file.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := cfg.LoadFile(cfg.File); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, err
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type fileConfig struct {
	Sim struct {
		Name   string `toml:"name"`
		Size   int    `toml:"size"`
		Buffer int    `toml:"buffer"`
		Seed   *int64 `toml:"seed"`
		FPS    int    `toml:"fps"`
	} `toml:"sim"`
	Window struct {
		Scale  int   `toml:"scale"`
		Paused *bool `toml:"paused"`
	} `toml:"window"`
}

// LoadFile overlays the settings present in a TOML file. A missing file is
// not an error; unknown keys are.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.Sim.Name != "" {
		c.Sim = fc.Sim.Name
	}
	if fc.Sim.Size != 0 {
		c.Size = fc.Sim.Size
	}
	if fc.Sim.Buffer != 0 {
		c.Buffer = fc.Sim.Buffer
	}
	if fc.Sim.Seed != nil {
		c.Seed = *fc.Sim.Seed
	}
	if fc.Sim.FPS != 0 {
		c.FPS = fc.Sim.FPS
	}
	if fc.Window.Scale != 0 {
		c.Scale = fc.Window.Scale
	}
	if fc.Window.Paused != nil {
		c.Paused = *fc.Window.Paused
	}
	return nil
}

// Validate rejects settings no viewer can run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim == "":
		return fmt.Errorf("sim name is empty: %w", ErrInvalidConfig)
	case c.Size <= 0:
		return fmt.Errorf("size %d must be positive: %w", c.Size, ErrInvalidConfig)
	case c.Buffer <= 0:
		return fmt.Errorf("buffer %d must be positive: %w", c.Buffer, ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d must be positive: %w", c.FPS, ErrInvalidConfig)
	case c.Scale <= 0:
		return fmt.Errorf("scale %d must be positive: %w", c.Scale, ErrInvalidConfig)
	}
	return nil
}

// SimOptions renders the settings in the form core.Factory expects.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":   strconv.Itoa(c.Size),
		"buffer": strconv.Itoa(c.Buffer),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"fps":    strconv.Itoa(c.FPS),
	}
}
