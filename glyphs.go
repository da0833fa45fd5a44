package main

// RawSprite cuts glyph index out of sheet onto a transparent surface of
// glyph size. sheet is expected to be color keyed already.
func RawSprite(sheet *SpriteSheet, keyed *Surface, index int) *Surface {
	raw := NewSurface(sheet.GlyphSize())
	src := sheet.GlyphRect(index)
	if src.Empty() {
		return raw
	}
	Blit(raw, raw.Bounds(), keyed, src.Min, BlendNone, ColorWhite)
	return raw
}

// ColorSprite tints the visible pixels of raw with fg.
func ColorSprite(raw *Surface, fg Color) *Surface {
	colored := CloneSurface(raw)
	solid := NewSurface(raw.Bounds().Size())
	Fill(solid, solid.Bounds(), Color{R: fg.R, G: fg.G, B: fg.B, A: 0xff})
	// mod leaves destination alpha alone, so the glyph shape survives
	Blit(colored, colored.Bounds(), solid, Point{}, BlendMod, ColorWhite)
	return colored
}

// CreateTile puts glyph on an opaque bg tile using mode.
func CreateTile(glyph *Surface, bg Color, mode BlendMode) *Surface {
	tile := NewSurface(glyph.Bounds().Size())
	Fill(tile, tile.Bounds(), bg)
	Blit(tile, tile.Bounds(), glyph, Point{}, mode, ColorWhite)
	return tile
}

// SwapColor replaces every pixel equal to from with to and reports how many
// pixels changed.
func SwapColor(s *Surface, from, to Color) int {
	n := 0
	for i := 0; i+3 < len(s.Pix); i += 4 {
		p := s.Pix[i : i+4 : i+4]
		if p[0] == from.R && p[1] == from.G && p[2] == from.B && p[3] == from.A {
			p[0], p[1], p[2], p[3] = to.R, to.G, to.B, to.A
			n++
		}
	}
	return n
}

// Compositor renders a grid on the CPU, one composited tile per cell.
type Compositor struct {
	sheet    *SpriteSheet
	keyed    *Surface
	tileSize Size
	raw      map[int]*Surface
}

func NewCompositor(sheet *SpriteSheet, key Color, tileSize Size) *Compositor {
	return &Compositor{
		sheet:    sheet,
		keyed:    sheet.Keyed(key),
		tileSize: tileSize,
		raw:      make(map[int]*Surface),
	}
}

func (c *Compositor) rawSprite(index int) *Surface {
	if raw, ok := c.raw[index]; ok {
		return raw
	}
	raw := RawSprite(c.sheet, c.keyed, index)
	if raw.Bounds().Size() != c.tileSize {
		raw = ScaleSurface(raw, c.tileSize)
	}
	c.raw[index] = raw
	return raw
}

func (c *Compositor) Tile(cell Cell, mode BlendMode) *Surface {
	return CreateTile(ColorSprite(c.rawSprite(cell.Glyph), cell.Fg), cell.Bg, mode)
}

// Compose draws every cell of g into frame, which must be at least
// g.Cols*tileSize wide and g.Rows*tileSize high.
func (c *Compositor) Compose(frame *Surface, g *Grid, mode BlendMode) {
	Fill(frame, frame.Bounds(), ColorBlack)
	for y := range g.Rows {
		for x := range g.Cols {
			tile := c.Tile(g.At(x, y), mode)
			origin := Point{X: x * c.tileSize.X, Y: y * c.tileSize.Y}
			Blit(frame, Rect{Min: origin, Max: origin.Add(c.tileSize)}, tile, Point{}, BlendNone, ColorWhite)
		}
	}
}
