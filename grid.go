package main

import (
	"strings"
	"unicode"
)

type Cell struct {
	Glyph int
	Fg    Color
	Bg    Color
}

type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
}

// GridSizeFor returns how many whole tiles fit into a window.
func GridSizeFor(window, tile Size) Size {
	if tile.X <= 0 || tile.Y <= 0 {
		return Size{}
	}
	return Size{X: window.X / tile.X, Y: window.Y / tile.Y}
}

func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

func (g *Grid) Set(x, y int, c Cell) {
	g.Cells[y*g.Cols+x] = c
}

func (g *Grid) Randomize(rng Rand, picker *GlyphPicker, palette Palette) {
	for i := range g.Cells {
		fg, bg := palette.Pair(rng)
		g.Cells[i] = Cell{
			Glyph: picker.Pick(rng),
			Fg:    fg,
			Bg:    bg,
		}
	}
}

// Text renders the glyphs of the grid as CP437 text, one line per row.
func (g *Grid) Text() string {
	var sb strings.Builder
	for y := range g.Rows {
		for x := range g.Cols {
			r := glyphRune(g.At(x, y).Glyph)
			if r == 0 || unicode.IsControl(r) {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
