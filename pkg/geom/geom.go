// Package geom provides the integer grid geometry shared by the schematic
// core: points, axis-aligned rectangles and the eight-way rotation table.
package geom

import (
	"fmt"
	"math"
)

// Point is a location on the schematic grid. It is comparable and is used
// directly as the key of the topology index.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by two corners. Most operations
// expect a canonical rectangle (Left <= Right, Top <= Bottom).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// R builds a rectangle from two corners without canonicalizing it.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Canon returns r with its corners swapped as needed so that
// Left <= Right and Top <= Bottom.
func (r Rect) Canon() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return between(p.X, r.Left, r.Right) && between(p.Y, r.Top, r.Bottom)
}

// ContainsF is Contains for unsnapped coordinates.
func (r Rect) ContainsF(x, y float64) bool {
	return float64(r.Left) <= x && x <= float64(r.Right) &&
		float64(r.Top) <= y && y <= float64(r.Bottom)
}

// Intersects reports whether two canonical rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return !(o.Left > r.Right || o.Right < r.Left ||
		o.Top > r.Bottom || o.Bottom < r.Top)
}

// Expand grows r by d on every side.
func (r Rect) Expand(d int) Rect {
	return Rect{Left: r.Left - d, Top: r.Top - d, Right: r.Right + d, Bottom: r.Bottom + d}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of r.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

func between(v, lo, hi int) bool {
	return lo <= v && v <= hi
}

// Snap rounds v to the nearest multiple of grid.
func Snap(v float64, grid int) int {
	if grid <= 0 {
		return int(math.Round(v))
	}
	return int(math.Round(v/float64(grid))) * grid
}

// SnapPoint snaps both coordinates of (x, y) to the grid.
func SnapPoint(x, y float64, grid int) Point {
	return Point{X: Snap(x, grid), Y: Snap(y, grid)}
}
