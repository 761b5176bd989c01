package palette

import "github.com/lucasb-eyer/go-colorful"

// DefaultBackground is the canvas color behind the grid.
const DefaultBackground = "#e8f5e9"

// DefaultAlive fades a cell from bright red to near black as it ages.
var DefaultAlive = []string{
	"#e65f5c",
	"#bd4e52",
	"#7d3242",
	"#451a34",
	"#0f0326",
}

// DefaultTrail holds one color per generation since death.
var DefaultTrail = trailSteps(
	step{"#9f9aa8", 4},
	step{"#c1bdc6", 8},
	step{"#e0dee3", 16},
	step{"#f3f0f7", 32},
)

type step struct {
	hex   string
	count int
}

func trailSteps(steps ...step) []string {
	var out []string
	for _, s := range steps {
		for i := 0; i < s.count; i++ {
			out = append(out, s.hex)
		}
	}
	return out
}

// Default returns the stock mapper. When trailLen differs from the stock trail
// length, the trail ramp is regenerated as a gradient between its end colors.
func Default(trailLen int) *Mapper {
	bg, _ := colorful.Hex(DefaultBackground)
	alive, err := ParseRamp(DefaultAlive...)
	if err != nil {
		panic(err)
	}
	trail, err := ParseRamp(DefaultTrail...)
	if err != nil {
		panic(err)
	}
	if trailLen >= 0 && trailLen != len(trail) {
		trail = Gradient(trail[0], trail[len(trail)-1], min(trailLen, 255-len(alive)))
	}
	m, err := NewMapper(bg, alive, trail)
	if err != nil {
		panic(err)
	}
	return m
}
