package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Box is an axis-aligned bounding box anchored at its top-left corner in a
// y-up world:
//
//	(X,Y)-------*
//	  |         |
//	  *-----(X+Width, Y-Height)
//
// Boxes are values; OffsetBy returns a translated copy.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Left, Right, Top and Bottom return the edges of b.
func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y - b.Height }

// Center returns the midpoint of b.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y - b.Height/2
}

// Intersects reports whether the centers of b and other are within the
// half-sum of their extents on both axes. Touching edges count as
// intersecting.
func (b Box) Intersects(other Box) bool {
	cx, cy := b.Center()
	ox, oy := other.Center()
	return math.Abs(cx-ox) <= (b.Width+other.Width)/2 &&
		math.Abs(cy-oy) <= (b.Height+other.Height)/2
}

// OffsetBy returns b translated by (dx, dy).
func (b Box) OffsetBy(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// Expand grows b by m on every side.
func (b Box) Expand(m float64) Box {
	return Box{X: b.X - m, Y: b.Y + m, Width: b.Width + 2*m, Height: b.Height + 2*m}
}

// BB converts b to a chipmunk bounding box. Both use y-up coordinates.
func (b Box) BB() cp.BB {
	return cp.BB{L: b.Left(), B: b.Bottom(), R: b.Right(), T: b.Top()}
}

// CenteredBox returns a box of the given size centered on (x, y).
func CenteredBox(x, y, width, height float64) Box {
	return Box{X: x - width/2, Y: y + height/2, Width: width, Height: height}
}
