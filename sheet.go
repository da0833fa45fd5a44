package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/mitchellh/go-homedir"
)

const (
	defaultSheetCols   = 16
	defaultSheetRows   = 16
	defaultGlyphWidth  = 18
	defaultGlyphHeight = 28
)

// SpriteSheet is a grid of equally sized glyph cells.
// Glyph i lives at column i%cols, row i/cols.
type SpriteSheet struct {
	img        *Surface
	cols, rows int
	glyphSize  Size
}

func NewSpriteSheet(img image.Image, cols, rows int) (*SpriteSheet, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sheet grid must be positive, got %dx%d", cols, rows)
	}
	size := img.Bounds().Size()
	if size.X < cols || size.Y < rows {
		return nil, fmt.Errorf("sheet image %v too small for a %dx%d grid", size, cols, rows)
	}
	if size.X%cols != 0 || size.Y%rows != 0 {
		logger.Warn("sheet size is not a multiple of the grid", "size", size, "cols", cols, "rows", rows)
	}
	return &SpriteSheet{
		img:       ToSurface(img),
		cols:      cols,
		rows:      rows,
		glyphSize: Size{X: size.X / cols, Y: size.Y / rows},
	}, nil
}

func LoadSpriteSheet(path string, cols, rows int) (*SpriteSheet, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", expanded, err)
	}
	return NewSpriteSheet(img, cols, rows)
}

func (ss *SpriteSheet) Image() *Surface {
	return ss.img
}

func (ss *SpriteSheet) GlyphSize() Size {
	return ss.glyphSize
}

func (ss *SpriteSheet) GlyphCount() int {
	return ss.cols * ss.rows
}

func (ss *SpriteSheet) GlyphRect(index int) Rect {
	if index < 0 || index >= ss.GlyphCount() {
		return Rect{}
	}
	col := index % ss.cols
	row := index / ss.cols
	origin := Point{X: col * ss.glyphSize.X, Y: row * ss.glyphSize.Y}
	return Rect{Min: origin, Max: origin.Add(ss.glyphSize)}
}

// Keyed returns a copy of the sheet image with the color key applied.
func (ss *SpriteSheet) Keyed(key Color) *Surface {
	keyed := CloneSurface(ss.img)
	n := ApplyColorKey(keyed, key)
	logger.Debug("applied color key", "key", key, "pixels", n)
	return keyed
}

// GlyphPicker chooses random glyph indices from a fixed set.
type GlyphPicker struct {
	glyphs []int
}

// Brogue sheets leave 0-31 unused and 140-160 blank (128-139 hold custom glyphs).
var brogueGlyphRanges = [][2]int{{32, 140}, {161, 256}}

func NewGlyphPicker(glyphCount int) *GlyphPicker {
	var glyphs []int
	for _, r := range brogueGlyphRanges {
		for i := r[0]; i < r[1] && i < glyphCount; i++ {
			glyphs = append(glyphs, i)
		}
	}
	if len(glyphs) == 0 {
		// small sheets use every cell
		for i := range glyphCount {
			glyphs = append(glyphs, i)
		}
	}
	return &GlyphPicker{glyphs: glyphs}
}

func (gp *GlyphPicker) Len() int {
	return len(gp.glyphs)
}

func (gp *GlyphPicker) Pick(rng Rand) int {
	if len(gp.glyphs) == 0 {
		return 0
	}
	return gp.glyphs[rng.Intn(len(gp.glyphs))]
}
