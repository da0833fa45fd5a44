package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

type Surface = image.NRGBA

type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendAdd
	BlendMod
)

var blendModeNames = []string{"none", "blend", "add", "mod"}

func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendModeNames) {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendModeNames[m]
}

func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), nil
		}
	}
	return BlendNone, fmt.Errorf("unknown blend mode: %q", s)
}

// glyph blend modes cycled by the composite stage
var glyphBlendModes = []BlendMode{BlendBlend, BlendAdd, BlendMod}

func (m BlendMode) NextGlyphMode() BlendMode {
	for i, gm := range glyphBlendModes {
		if gm == m {
			return glyphBlendModes[(i+1)%len(glyphBlendModes)]
		}
	}
	return glyphBlendModes[0]
}

func NewSurface(size Size) *Surface {
	return image.NewNRGBA(image.Rectangle{Max: size})
}

// ToSurface converts any image into a surface with its origin at (0,0).
func ToSurface(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Size())
	draw.Draw(s, s.Bounds(), img, b.Min, draw.Src)
	return s
}

func CloneSurface(s *Surface) *Surface {
	c := &Surface{
		Pix:    make([]uint8, len(s.Pix)),
		Stride: s.Stride,
		Rect:   s.Rect,
	}
	copy(c.Pix, s.Pix)
	return c
}

func Fill(dst *Surface, r Rect, c Color) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
			i += 4
		}
	}
}

// ApplyColorKey makes every pixel whose RGB equals key transparent black.
func ApplyColorKey(s *Surface, key Color) int {
	keyed := 0
	for i := 0; i+3 < len(s.Pix); i += 4 {
		if s.Pix[i+0] == key.R && s.Pix[i+1] == key.G && s.Pix[i+2] == key.B {
			s.Pix[i+0] = 0
			s.Pix[i+1] = 0
			s.Pix[i+2] = 0
			s.Pix[i+3] = 0
			keyed++
		}
	}
	return keyed
}

func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

func add8(a, b uint8) uint8 {
	s := uint32(a) + uint32(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func blendPixel(d []uint8, sr, sg, sb, sa uint8, mode BlendMode) {
	switch mode {
	case BlendNone:
		d[0], d[1], d[2], d[3] = sr, sg, sb, sa
	case BlendBlend:
		inv := 255 - sa
		d[0] = add8(mul8(sr, sa), mul8(d[0], inv))
		d[1] = add8(mul8(sg, sa), mul8(d[1], inv))
		d[2] = add8(mul8(sb, sa), mul8(d[2], inv))
		d[3] = add8(sa, mul8(d[3], inv))
	case BlendAdd:
		d[0] = add8(mul8(sr, sa), d[0])
		d[1] = add8(mul8(sg, sa), d[1])
		d[2] = add8(mul8(sb, sa), d[2])
	case BlendMod:
		d[0] = mul8(sr, d[0])
		d[1] = mul8(sg, d[1])
		d[2] = mul8(sb, d[2])
	}
}

// Blit composites the part of src starting at sp onto the rectangle r of dst.
// The source colour is multiplied by mod before blending. Fully transparent
// source pixels are skipped by every mode except BlendNone.
func Blit(dst *Surface, r Rect, src *Surface, sp Point, mode BlendMode, mod Color) {
	// clip r against both images, shifting sp along with it
	clipped := r.Intersect(dst.Bounds())
	sp = sp.Add(clipped.Min.Sub(r.Min))
	r = clipped
	srcRect := Rect{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	r.Min = r.Min.Add(srcRect.Min.Sub(sp))
	r.Max = r.Min.Add(srcRect.Size())
	sp = srcRect.Min
	if r.Empty() {
		return
	}
	for y := 0; y < r.Dy(); y++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		for x := 0; x < r.Dx(); x++ {
			s := src.Pix[si : si+4 : si+4]
			sa := mul8(s[3], mod.A)
			if sa == 0 && mode != BlendNone {
				di += 4
				si += 4
				continue
			}
			blendPixel(dst.Pix[di:di+4:di+4],
				mul8(s[0], mod.R), mul8(s[1], mod.G), mul8(s[2], mod.B), sa,
				mode)
			di += 4
			si += 4
		}
	}
}

// ScaleSurface resizes s with nearest-neighbour sampling so glyph edges stay crisp.
func ScaleSurface(s *Surface, size Size) *Surface {
	if s.Bounds().Size() == size {
		return CloneSurface(s)
	}
	dst := NewSurface(size)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s, s.Bounds(), draw.Src, nil)
	return dst
}
