package core

// Image is a decoded sprite: a grid of glyphs plus the pixel dimensions of
// the artwork it stands for. Entity sizes are derived from Width and Height
// times a per-entity scale; the glyph rows are stretched over whatever cell
// area the entity ends up covering.
type Image struct {
	Name      string
	Width     float64 // Source width in pixels
	Height    float64 // Source height in pixels
	Color     Color
	Rows      []string
	TiltLeft  []string // Optional rows used while rotated counter-clockwise
	TiltRight []string // Optional rows used while rotated clockwise
}

// rowsFor picks the glyph rows matching a rotation angle.
func (img *Image) rowsFor(angle float64) []string {
	switch {
	case angle < 0 && len(img.TiltLeft) > 0:
		return img.TiltLeft
	case angle > 0 && len(img.TiltRight) > 0:
		return img.TiltRight
	default:
		return img.Rows
	}
}
