package main

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Rand is the subset of *rand.Rand used for randomizing the grid.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type Palette struct {
	MinLuminance float64
	MaxLuminance float64
	Chroma       float64
	Darken       float64 // background luminance drop relative to the foreground
}

func DefaultPalette() Palette {
	return Palette{
		MinLuminance: 0.65,
		MaxLuminance: 0.9,
		Chroma:       0.35,
		Darken:       0.5,
	}
}

func toColor(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}
}

func (p Palette) Foreground(rng Rand) Color {
	h := rng.Float64() * 360
	l := p.MinLuminance + rng.Float64()*(p.MaxLuminance-p.MinLuminance)
	return toColor(colorful.Hcl(h, p.Chroma, l))
}

// Background darkens fg in Hcl space, keeping its hue.
func (p Palette) Background(fg Color) Color {
	c, _ := colorful.MakeColor(fg)
	h, ch, l := c.Hcl()
	return toColor(colorful.Hcl(h, ch*0.6, l-p.Darken))
}

func (p Palette) Pair(rng Rand) (fg, bg Color) {
	fg = p.Foreground(rng)
	bg = p.Background(fg)
	return
}
