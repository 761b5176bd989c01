// Package palette maps cell ages to colors through an alive ramp and a trail
// ramp. Ages beyond either ramp stay on its last color.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyRamp is returned when a mapper is built without alive colors.
	ErrEmptyRamp = errors.New("palette: alive ramp is empty")
	// ErrRampTooLong is returned when the ramps do not fit a byte-indexed palette.
	ErrRampTooLong = errors.New("palette: ramps exceed 255 colors")
)

// Background is the palette slot reserved for empty cells.
const Background uint8 = 0

// Ramp is an ordered list of colors indexed by age.
type Ramp []colorful.Color

// ParseRamp decodes a list of "#rrggbb" strings.
func ParseRamp(hexes ...string) (Ramp, error) {
	r := make(Ramp, 0, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: color %d: %w", i, err)
		}
		r = append(r, c)
	}
	return r, nil
}

// Gradient returns n colors blended in Lab space from one color to another.
func Gradient(from, to colorful.Color, n int) Ramp {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return Ramp{from}
	}
	r := make(Ramp, n)
	for i := range r {
		r[i] = from.BlendLab(to, float64(i)/float64(n-1)).Clamped()
	}
	return r
}

// Mapper resolves ages to colors and to byte-sized palette slots. Slot 0 is
// the background, slots 1..len(alive) the alive ramp, then the trail ramp.
type Mapper struct {
	background colorful.Color
	alive      Ramp
	trail      Ramp
	rgba       []color.RGBA
}

// NewMapper builds a mapper from the given ramps. The trail ramp may be empty,
// in which case dead cells are never drawn.
func NewMapper(background colorful.Color, alive, trail Ramp) (*Mapper, error) {
	if len(alive) == 0 {
		return nil, ErrEmptyRamp
	}
	if len(alive)+len(trail) > 255 {
		return nil, ErrRampTooLong
	}
	m := &Mapper{
		background: background,
		alive:      append(Ramp(nil), alive...),
		trail:      append(Ramp(nil), trail...),
	}
	m.rgba = make([]color.RGBA, 0, 1+len(alive)+len(trail))
	m.rgba = append(m.rgba, toRGBA(background))
	for _, c := range m.alive {
		m.rgba = append(m.rgba, toRGBA(c))
	}
	for _, c := range m.trail {
		m.rgba = append(m.rgba, toRGBA(c))
	}
	return m, nil
}

// AliveLen returns the number of alive colors.
func (m *Mapper) AliveLen() int { return len(m.alive) }

// TrailLen returns the number of trail colors, which is also the number of
// generations a dead cell keeps fading.
func (m *Mapper) TrailLen() int { return len(m.trail) }

// Index returns the palette slot for age. Age 0 and trail ages on an empty
// trail ramp resolve to Background.
func (m *Mapper) Index(age int) uint8 {
	switch {
	case age > 0:
		return uint8(1 + min(age-1, len(m.alive)-1))
	case age < 0 && len(m.trail) > 0:
		return uint8(1 + len(m.alive) + min(-age-1, len(m.trail)-1))
	default:
		return Background
	}
}

// ColorFor returns the color used to draw a cell of the given age.
func (m *Mapper) ColorFor(age int) color.RGBA {
	return m.rgba[m.Index(age)]
}

// Palette exposes the slot-indexed colors.
func (m *Mapper) Palette() []color.RGBA { return m.rgba }

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
