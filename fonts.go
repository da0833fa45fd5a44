package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

type FontSizeInPoints = float64

const defaultFontSize FontSizeInPoints = 16

type Font struct {
	font  *opentype.Font
	faces map[FontSizeInPoints]font.Face
}

func (f *Font) GetFace(size FontSizeInPoints) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	faceOpts := &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	}
	face, err := opentype.NewFace(f.font, faceOpts)
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

// GetFaceImage rasterizes the 256 CP437 code points of face into an alpha
// atlas laid out like a Brogue sprite sheet.
func (f *Font) GetFaceImage(face font.Face, sizeInTiles Size) (*image.Alpha, error) {
	cols, rows := sizeInTiles.X, sizeInTiles.Y
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sizeInTiles must be positive, got %v", sizeInTiles)
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	tileHeight := metrics.Height.Ceil()
	if tileHeight == 0 {
		tileHeight = ascent + descent
	}
	nGlyphs := cols * rows
	maxWidth := 0
	for i := range nGlyphs {
		r := glyphRune(i)
		if adv, ok := face.GlyphAdvance(r); ok {
			if w := adv.Ceil(); w > maxWidth {
				maxWidth = w
			}
		}
	}
	if maxWidth <= 0 {
		adv, ok := face.GlyphAdvance('m')
		if !ok {
			return nil, fmt.Errorf("font face does not provide a glyph for rune 'm'")
		}
		maxWidth = adv.Ceil()
	}

	atlas := image.NewAlpha(image.Rect(0, 0, maxWidth*cols, tileHeight*rows))
	for i := range nGlyphs {
		r := glyphRune(i)
		if r == 0 {
			continue
		}
		col := i % cols
		row := i / cols
		dot := fixed.Point26_6{
			X: fixed.I(col * maxWidth),
			Y: fixed.I(row*tileHeight + ascent),
		}
		dstRect, mask, maskPt, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			continue
		}
		draw.Draw(atlas, dstRect, mask, maskPt, draw.Src)
	}
	return atlas, nil
}

// glyphRune maps a sheet index to the code point drawn there, or 0 for
// control characters and indices beyond a byte.
func glyphRune(index int) rune {
	if index < 32 || index > 255 {
		return 0
	}
	if index == 0x7f {
		// CP437 shows a house where ASCII has DEL
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(byte(index))
}

func LoadFontFromBytes(bytes []byte) (*Font, error) {
	f, err := opentype.Parse(bytes)
	if err != nil {
		return nil, err
	}
	return &Font{
		font:  f,
		faces: make(map[FontSizeInPoints]font.Face),
	}, nil
}

// GenerateSpriteSheet builds a white-on-black sheet from Go Mono for use when
// no sprite sheet image is available.
func GenerateSpriteSheet(size FontSizeInPoints, cols, rows int) (*SpriteSheet, error) {
	f, err := LoadFontFromBytes(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face, err := f.GetFace(size)
	if err != nil {
		return nil, err
	}
	atlas, err := f.GetFaceImage(face, Size{X: cols, Y: rows})
	if err != nil {
		return nil, err
	}
	sheet := NewSurface(atlas.Bounds().Size())
	for i, a := range atlas.Pix {
		sheet.Pix[i*4+0] = a
		sheet.Pix[i*4+1] = a
		sheet.Pix[i*4+2] = a
		sheet.Pix[i*4+3] = 0xff
	}
	return NewSpriteSheet(sheet, cols, rows)
}
