package geom

import "math"

// Rotation is one of the eight orientations of a component.
//
// Values 0-3 turn the canonical orientation in 90 degree steps; 4-7 are the
// mirror images of 0-3. The mapping is a fixed table, so adding 8 is the
// identity.
type Rotation int

// Orientations, named after the direction the canonical pin-0 to pin-1 axis
// points once transformed.
const (
	North Rotation = iota
	East
	South
	West
	MirrorNorth
	MirrorEast
	MirrorSouth
	MirrorWest
)

// NumRotations is the order of the rotation group.
const NumRotations = 8

// Valid reports whether r is in 0..7.
func (r Rotation) Valid() bool {
	return r >= 0 && r < NumRotations
}

// Add returns r advanced by n steps, wrapped into 0..7.
func (r Rotation) Add(n int) Rotation {
	v := (int(r) + n) % NumRotations
	if v < 0 {
		v += NumRotations
	}
	return Rotation(v)
}

// X returns the transformed x coordinate of the local offset (x, y).
func (r Rotation) X(x, y int) int {
	switch r {
	case 0, 6:
		return x
	case 1, 5:
		return -y
	case 2, 4:
		return -x
	default:
		return y
	}
}

// Y returns the transformed y coordinate of the local offset (x, y).
func (r Rotation) Y(x, y int) int {
	switch r {
	case 1, 7:
		return x
	case 2, 6:
		return -y
	case 3, 5:
		return -x
	default:
		return y
	}
}

// Apply transforms a local offset.
func (r Rotation) Apply(p Point) Point {
	return Point{X: r.X(p.X, p.Y), Y: r.Y(p.X, p.Y)}
}

// ApplyF transforms a fractional local offset, used by drawing code.
func (r Rotation) ApplyF(x, y float64) (float64, float64) {
	switch r {
	case 0:
		return x, y
	case 1:
		return -y, x
	case 2:
		return -x, -y
	case 3:
		return y, -x
	case 4:
		return -x, y
	case 5:
		return -y, -x
	case 6:
		return x, -y
	default:
		return y, x
	}
}

// Angle is the extra rotation, in radians, applied to arcs drawn by a
// component in this orientation.
func (r Rotation) Angle() float64 {
	return float64(int(r)%4) * math.Pi / 2
}
