package life

import "strconv"

// Config holds the board and history settings for the life sim.
type Config struct {
	Size       int
	BufferSize int
	Seed       int64
	FrameRate  int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 64, BufferSize: 100, Seed: 42, FrameRate: 10}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["buffer"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BufferSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FrameRate = parsed
		}
	}
	return c
}
