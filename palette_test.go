package main

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func luminance(c Color) float64 {
	cc, _ := colorful.MakeColor(c)
	_, _, l := cc.Hcl()
	return l
}

func TestPaletteIsDeterministic(t *testing.T) {
	p := DefaultPalette()
	r1, r2 := NewRand(5), NewRand(5)
	for range 100 {
		fg1, bg1 := p.Pair(r1)
		fg2, bg2 := p.Pair(r2)
		if fg1 != fg2 || bg1 != bg2 {
			t.Fatalf("same seed gave %v/%v and %v/%v", fg1, bg1, fg2, bg2)
		}
	}
}

func TestPaletteBackgroundIsDarker(t *testing.T) {
	p := DefaultPalette()
	rng := NewRand(11)
	for range 200 {
		fg, bg := p.Pair(rng)
		if lf, lb := luminance(fg), luminance(bg); lb >= lf {
			t.Errorf("background %v (L=%.2f) not darker than foreground %v (L=%.2f)", bg, lb, fg, lf)
		}
		if fg.A != 0xff || bg.A != 0xff {
			t.Errorf("colors must be opaque: %v %v", fg, bg)
		}
	}
}

func TestPaletteForegroundIsBright(t *testing.T) {
	p := DefaultPalette()
	rng := NewRand(3)
	for range 200 {
		fg := p.Foreground(rng)
		if l := luminance(fg); l < 0.35 {
			t.Errorf("foreground %v too dark (L=%.2f)", fg, l)
		}
	}
}
