package main

import (
	"strings"
	"testing"
)

func TestGridSizeFor(t *testing.T) {
	tests := []struct {
		window, tile, want Size
	}{
		{Size{X: 800, Y: 600}, Size{X: 18, Y: 28}, Size{X: 44, Y: 21}},
		{Size{X: 36, Y: 28}, Size{X: 18, Y: 28}, Size{X: 2, Y: 1}},
		{Size{X: 10, Y: 10}, Size{X: 18, Y: 28}, Size{}},
		{Size{X: 10, Y: 10}, Size{}, Size{}},
	}
	for _, tt := range tests {
		if got := GridSizeFor(tt.window, tt.tile); got != tt.want {
			t.Errorf("GridSizeFor(%v, %v) = %v, want %v", tt.window, tt.tile, got, tt.want)
		}
	}
}

func TestNewGridClampsNegativeSizes(t *testing.T) {
	g := NewGrid(-1, 3)
	if g.Cols != 0 || len(g.Cells) != 0 {
		t.Errorf("NewGrid(-1, 3) = %dx%d with %d cells", g.Cols, g.Rows, len(g.Cells))
	}
}

func TestGridRandomizeIsDeterministic(t *testing.T) {
	picker := NewGlyphPicker(256)
	a := NewGrid(44, 21)
	b := NewGrid(44, 21)
	a.Randomize(NewRand(42), picker, DefaultPalette())
	b.Randomize(NewRand(42), picker, DefaultPalette())
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a.Cells[i], b.Cells[i])
		}
	}
	c := NewGrid(44, 21)
	c.Randomize(NewRand(43), picker, DefaultPalette())
	same := 0
	for i := range a.Cells {
		if a.Cells[i] == c.Cells[i] {
			same++
		}
	}
	if same == len(a.Cells) {
		t.Error("different seeds produced identical grids")
	}
}

func TestGridRandomizeFillsEveryCell(t *testing.T) {
	g := NewGrid(10, 10)
	g.Randomize(NewRand(1), NewGlyphPicker(256), DefaultPalette())
	for i, cell := range g.Cells {
		if cell.Glyph < 32 {
			t.Errorf("cell %d has unusable glyph %d", i, cell.Glyph)
		}
		if cell.Fg.A != 0xff || cell.Bg.A != 0xff {
			t.Errorf("cell %d colors are not opaque: %v %v", i, cell.Fg, cell.Bg)
		}
	}
}

func TestGridText(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, Cell{Glyph: 'A'})
	g.Set(1, 0, Cell{Glyph: 0xb0})
	g.Set(2, 0, Cell{Glyph: 5})
	g.Set(0, 1, Cell{Glyph: 300})
	g.Set(1, 1, Cell{Glyph: '@'})
	g.Set(2, 1, Cell{Glyph: 127})
	want := "A░ \n @⌂\n"
	if got := g.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if lines := strings.Count(g.Text(), "\n"); lines != g.Rows {
		t.Errorf("Text() has %d lines, want %d", lines, g.Rows)
	}
}
