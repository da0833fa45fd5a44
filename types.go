package main

import (
	"image"
	"image/color"
)

type Point = image.Point
type Size = image.Point
type Rect = image.Rectangle

type Color = color.NRGBA

var (
	ColorBlack       = Color{0x00, 0x00, 0x00, 0xff}
	ColorWhite       = Color{0xff, 0xff, 0xff, 0xff}
	ColorBackdrop    = Color{0x20, 0x20, 0x28, 0xff}
	ColorTransparent = Color{}
)

func colorToFloats(c Color) (r, g, b, a float32) {
	r = float32(c.R) / 255.0
	g = float32(c.G) / 255.0
	b = float32(c.B) / 255.0
	a = float32(c.A) / 255.0
	return
}
