package app

import (
	"flag"

	"trail-life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Cell    int
	FPS     int
	TPS     int
	Seed    int64
	Density float64
	Trail   int
	History int
	Width   int
	Height  int
	Paused  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Pattern: d.Pattern,
		Cell:    d.CellSize,
		FPS:     d.MaxFPS,
		TPS:     60,
		Seed:    d.Seed,
		Density: d.Density,
		Trail:   d.TrailLength,
		History: d.History,
		Width:   960,
		Height:  640,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern (default, block, blinker, glider, random)")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "maximum generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells in the random pattern")
	fs.IntVar(&c.Trail, "trail", c.Trail, "generations a dead cell keeps fading (0 disables trails)")
	fs.IntVar(&c.History, "history", c.History, "generations kept for stepping back")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// LifeConfig converts the flags into an engine configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{
		CellSize:    c.Cell,
		MaxFPS:      c.FPS,
		Density:     c.Density,
		Seed:        c.Seed,
		History:     c.History,
		TrailLength: c.Trail,
		Pattern:     c.Pattern,
	}
}
