package systems

import "flappyneat/components"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// BirdRect returns the bird's collision rectangle.
func BirdRect(b *components.Bird, w, h float64) Rect {
	return Rect{X: b.X, Y: b.Y, W: w, H: h}
}

// segmentLen is the off-screen extent of a pipe segment. Segments reach well
// past the visible area so the gap is the only way through.
const segmentLen = 1 << 14

// Rects returns the two collision rectangles of a pipe: the segment above
// the gap and the segment below it.
func (p *Pipe) Rects(width float64) (top, bottom Rect) {
	top = Rect{X: p.X, Y: p.GapTop - segmentLen, W: width, H: segmentLen}
	bottom = Rect{X: p.X, Y: p.GapBot, W: width, H: segmentLen}
	return top, bottom
}

// HitsPipe reports whether the bird rectangle overlaps either pipe segment.
func HitsPipe(bird Rect, p *Pipe, width float64) bool {
	top, bottom := p.Rects(width)
	return bird.Intersects(top) || bird.Intersects(bottom)
}

// OutOfBounds reports whether the bird has left the playable vertical band:
// above the top of the screen or at/below the ground.
func OutOfBounds(b *components.Bird, h, groundY float64) bool {
	return b.Y < 0 || b.Y+h >= groundY
}
