package life

import "strconv"

// Config controls the Life engine and its initial seed.
type Config struct {
	CellSize    int
	MaxFPS      int
	Density     float64
	Seed        int64
	History     int
	TrailLength int
	Pattern     string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:    16,
		MaxFPS:      12,
		Density:     0.2,
		Seed:        42,
		History:     64,
		TrailLength: 60,
		Pattern:     "default",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxFPS = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.History = parsed
		}
	}
	if v, ok := cfg["trail"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TrailLength = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}
