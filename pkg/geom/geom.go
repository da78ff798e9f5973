// Package geom provides the 2D primitives used to place diagram elements.
//
// All coordinates are in diagram units with the y-axis pointing up (the
// composer's world space). Rendering surfaces are responsible for mapping
// world coordinates to their own device space.
package geom

// Point is a fixed (x, y) coordinate in diagram units.
type Point struct {
	X, Y float64
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Rect is an axis-aligned rectangle defined by its center and full extents.
type Rect struct {
	Center Point
	W, H   float64
}

// RectAt constructs a rectangle centered at (x, y) with width w and height h.
func RectAt(x, y, w, h float64) Rect {
	return Rect{Center: Point{x, y}, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.W/2 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.W/2 }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Center.Y - r.H/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Center.Y + r.H/2 }

// LeftMid returns the midpoint of the left edge.
func (r Rect) LeftMid() Point { return Point{r.Left(), r.Center.Y} }

// RightMid returns the midpoint of the right edge.
func (r Rect) RightMid() Point { return Point{r.Right(), r.Center.Y} }

// BottomMid returns the midpoint of the bottom edge.
func (r Rect) BottomMid() Point { return Point{r.Center.X, r.Bottom()} }

// TopMid returns the midpoint of the top edge.
func (r Rect) TopMid() Point { return Point{r.Center.X, r.Top()} }

// Contains reports whether p lies on or inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Grow returns the rectangle expanded by d on every side. Negative d shrinks.
func (r Rect) Grow(d float64) Rect {
	return Rect{Center: r.Center, W: r.W + 2*d, H: r.H + 2*d}
}
