package core

import "math"

// Surface accepts primitive draw calls in world units.
// Save and Restore scope the opacity and rotation set in between, the way a
// 2D canvas context does.
type Surface interface {
	Clear(bg Color)
	FillRect(r RectF, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	DrawImage(img *Image, dst RectF)
	Save()
	Restore()
	SetAlpha(alpha float64)
	Rotate(pivot Vec2, angle float64)
}

// Glyphs used by the cell rasterizer.
const (
	GlyphBlock       = '█'
	GlyphThinRect    = '¦'
	GlyphDisc        = '●'
	GlyphDot         = '•'
	GlyphDimDot      = '·'
	GlyphSpeck       = '.'
	dimAlphaCutoff   = 0.4
	faintAlphaCutoff = 0.5
)

type canvasState struct {
	alpha float64
	angle float64
}

// Canvas rasterizes Surface calls onto a Screen. One cell covers
// cellW x cellH world units. Terminal cells cannot be rotated, so the sign of
// the accumulated rotation selects an image's tilt glyphs instead.
type Canvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
	state  canvasState
	stack  []canvasState
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas drawing onto s.
// Non-positive cell sizes fall back to one world unit per cell.
func NewCanvas(s *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{
		screen: s,
		cellW:  cellW,
		cellH:  cellH,
		state:  canvasState{alpha: 1},
	}
}

// Size returns the drawable area in world units.
func (c *Canvas) Size() Vec2 {
	return Vec2{
		X: float64(c.screen.Width()) * c.cellW,
		Y: float64(c.screen.Height()) * c.cellH,
	}
}

// Clear blanks the whole screen. Terminal cells keep their own background,
// so bg is not painted.
func (c *Canvas) Clear(bg Color) {
	c.screen.Clear()
}

// Save pushes the current opacity and rotation.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state pushed by the matching Save.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.state = canvasState{alpha: 1}
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SetAlpha sets the opacity for subsequent draws, clamped to [0, 1].
func (c *Canvas) SetAlpha(alpha float64) {
	c.state.alpha = max(0, min(1, alpha))
}

// Rotate accumulates a rotation around pivot.
func (c *Canvas) Rotate(pivot Vec2, angle float64) {
	c.state.angle += angle
}

// ink resolves the color to draw with under the current opacity.
func (c *Canvas) ink(col Color) (Color, bool) {
	switch {
	case c.state.alpha <= 0:
		return col, false
	case c.state.alpha < dimAlphaCutoff:
		return ColorGray, true
	default:
		return col, true
	}
}

// span converts the world interval [lo, hi] to an inclusive cell range.
func span(lo, hi, cell float64) (int, int) {
	first := int(math.Floor(lo / cell))
	last := int(math.Ceil(hi/cell)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// FillRect fills every cell the box covers.
func (c *Canvas) FillRect(r RectF, col Color) {
	col, ok := c.ink(col)
	if !ok {
		return
	}

	c0, c1 := span(r.X, r.Right(), c.cellW)
	r0, r1 := span(r.Y, r.Bottom(), c.cellH)

	glyph := rune(GlyphBlock)
	if c0 == c1 && r0 == r1 && r.W < c.cellW && r.H < c.cellH {
		glyph = GlyphThinRect
	}

	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			c.screen.SetCell(x, y, glyph, col)
		}
	}
}

// FillCircle draws a disc. Discs smaller than a cell become one glyph.
func (c *Canvas) FillCircle(center Vec2, radius float64, col Color) {
	col, ok := c.ink(col)
	if !ok {
		return
	}

	cx := int(math.Floor(center.X / c.cellW))
	cy := int(math.Floor(center.Y / c.cellH))

	if radius*2 < math.Min(c.cellW, c.cellH) {
		var glyph rune
		switch {
		case radius < 1:
			glyph = GlyphSpeck
		case c.state.alpha < faintAlphaCutoff:
			glyph = GlyphDimDot
		default:
			glyph = GlyphDot
		}
		c.screen.SetCell(cx, cy, glyph, col)
		return
	}

	c0, c1 := span(center.X-radius, center.X+radius, c.cellW)
	r0, r1 := span(center.Y-radius, center.Y+radius, c.cellH)
	filled := false
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			mid := Vec2{X: (float64(x) + 0.5) * c.cellW, Y: (float64(y) + 0.5) * c.cellH}
			if math.Hypot(mid.X-center.X, mid.Y-center.Y) <= radius {
				c.screen.SetCell(x, y, GlyphDisc, col)
				filled = true
			}
		}
	}
	if !filled {
		c.screen.SetCell(cx, cy, GlyphDisc, col)
	}
}

// DrawImage stretches the image glyphs over the cells covered by dst.
// Spaces in the image are transparent.
func (c *Canvas) DrawImage(img *Image, dst RectF) {
	if img == nil {
		return
	}
	rows := img.rowsFor(c.state.angle)
	if len(rows) == 0 {
		return
	}
	col, ok := c.ink(img.Color)
	if !ok {
		return
	}

	c0, c1 := span(dst.X, dst.Right(), c.cellW)
	r0, r1 := span(dst.Y, dst.Bottom(), c.cellH)
	ncols := c1 - c0 + 1
	nrows := r1 - r0 + 1

	for y := 0; y < nrows; y++ {
		src := []rune(rows[y*len(rows)/nrows])
		if len(src) == 0 {
			continue
		}
		for x := 0; x < ncols; x++ {
			ch := src[x*len(src)/ncols]
			if ch == ' ' {
				continue
			}
			c.screen.SetCell(c0+x, r0+y, ch, col)
		}
	}
}
