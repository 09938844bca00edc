package sketch

import (
	"fmt"
	"math/rand/v2"
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// RGBA8 returns the color with every component scaled to [0, 255].
func (c RGBA) RGBA8() (r, g, b, a uint8) {
	conv := func(f float64) uint8 {
		return uint8(min(max(f, 0), 1)*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

// Hex returns the color as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Attributes are the visual attributes shared by every segment of one run.
type Attributes struct {
	Color     RGBA
	PointSize float64
	Speed     float64
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// AttributeRanges are the intervals random attributes are drawn from.
type AttributeRanges struct {
	Red, Green, Blue, Alpha Range
	PointSize               Range
	Speed                   Range
}

// DefaultAttributeRanges draws sizes from [2, 8], speeds from [0.1, 0.6] and
// colors that are never more than half transparent.
var DefaultAttributeRanges = AttributeRanges{
	Red:       Range{0, 1},
	Green:     Range{0, 1},
	Blue:      Range{0, 1},
	Alpha:     Range{0.5, 1},
	PointSize: Range{2, 8},
	Speed:     Range{0.1, 0.6},
}

// AttributeSource produces the attributes of a new run.
type AttributeSource interface {
	Next() Attributes
}

// RandomAttributes draws every attribute independently and uniformly from
// its range.
type RandomAttributes struct {
	Ranges AttributeRanges
	rng    *rand.Rand
}

// NewRandomAttributes returns a source drawing from [DefaultAttributeRanges].
// A nil rng uses a randomly seeded generator.
func NewRandomAttributes(rng *rand.Rand) *RandomAttributes {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomAttributes{Ranges: DefaultAttributeRanges, rng: rng}
}

// NewSeededAttributes returns a deterministic source for seed.
func NewSeededAttributes(seed uint64) *RandomAttributes {
	return NewRandomAttributes(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (ra *RandomAttributes) Next() Attributes {
	r := ra.Ranges
	return Attributes{
		Color: RGBA{
			R: r.Red.draw(ra.rng),
			G: r.Green.draw(ra.rng),
			B: r.Blue.draw(ra.rng),
			A: r.Alpha.draw(ra.rng),
		},
		PointSize: r.PointSize.draw(ra.rng),
		Speed:     r.Speed.draw(ra.rng),
	}
}

// FixedAttributes always returns the same attributes.
type FixedAttributes Attributes

func (fa FixedAttributes) Next() Attributes { return Attributes(fa) }
