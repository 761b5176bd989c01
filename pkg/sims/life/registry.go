package life

import (
	"sort"

	"trail-life/pkg/core"
)

// Factory builds a seed pattern for an arena of the given size.
type Factory func(arena core.Size, cfg Config) Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixed(p Pattern) Factory {
	return func(core.Size, Config) Pattern { return p }
}

func init() {
	Register("default", fixed(MustParsePattern(
		"...................................................",
		"...................................................",
		"...................................................",
		"...................................................",
		"...................................................",
		"...................................................",
		"...................................................",
		"...................................................",
		"o.o.............................................o.o",
		"..o.............................................o..",
		"....o.........................................o....",
		"....o.o.....................................o.o....",
		"....o.oo...................................oo.o....",
		"......o.....................................o......",
	)))
	Register("block", fixed(MustParsePattern(
		"oo",
		"oo",
	)))
	Register("blinker", fixed(MustParsePattern(
		"ooo",
	)))
	Register("glider", fixed(MustParsePattern(
		".o.",
		"..o",
		"ooo",
	)))
	Register("random", func(arena core.Size, cfg Config) Pattern {
		return RandomPattern(arena.W, arena.H, cfg.Density, core.NewRNG(cfg.Seed))
	})
}
