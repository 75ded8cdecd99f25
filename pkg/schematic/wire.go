package schematic

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// NearDistance is how close, in grid units, a point must be to a wire to
// count as touching it.
const NearDistance = 2

// Wire is a straight segment from its origin to origin+delta. Its two pins
// are electrically the same node. Wires never rotate.
type Wire struct {
	Base
	delta  geom.Point
	length float64
}

// NewWire returns a detached wire from start to end. A zero-length wire is
// rejected with ErrDegenerateWire.
func NewWire(start, end geom.Point) (*Wire, error) {
	if start == end {
		return nil, fmt.Errorf("%w at %s", ErrDegenerateWire, start)
	}
	d := end.Sub(start)
	w := &Wire{delta: d, length: math.Hypot(float64(d.X), float64(d.Y))}
	w.init(w, KindWire, start.X, start.Y, geom.North, geom.R(0, 0, d.X, d.Y).Canon().Expand(NearDistance))
	w.addConnection(0, 0)
	w.addConnection(d.X, d.Y)
	w.updateGeometry()
	return w, nil
}

// Start returns the absolute origin of the wire.
func (w *Wire) Start() geom.Point { return w.pos }

// End returns the absolute far end of the wire.
func (w *Wire) End() geom.Point { return w.pos.Add(w.delta) }

// Delta returns End minus Start.
func (w *Wire) Delta() geom.Point { return w.delta }

// Length returns the Euclidean length of the wire.
func (w *Wire) Length() float64 { return w.length }

// Rotate is a no-op: a wire's geometry is fully given by its endpoints.
func (w *Wire) Rotate(int) {}

// MoveEnd always re-checks wires, since a moved wire end can land on
// another wire even when the origin did not move.
func (w *Wire) MoveEnd() {
	if w.diagram != nil {
		w.diagram.CheckWires(w)
	}
}

func (w *Wire) Clone(x, y int) Component {
	c, _ := NewWire(geom.Pt(x, y), geom.Pt(x, y).Add(w.delta))
	return c
}

func (w *Wire) Draw(c Canvas) {
	w.line(c, 0, 0, float64(w.delta.X), float64(w.delta.Y))
}

func (w *Wire) String() string {
	return fmt.Sprintf("<Wire (%s) (%s)>", w.Start(), w.End())
}

// distance returns the perpendicular distance from (x, y) to the wire line.
func (w *Wire) distance(x, y float64) float64 {
	ox, oy := float64(w.pos.X), float64(w.pos.Y)
	dx, dy := float64(w.delta.X), float64(w.delta.Y)
	return math.Abs((x-ox)*dy-(y-oy)*dx) / w.length
}

// Near reports whether (x, y) lies within NearDistance of the segment.
func (w *Wire) Near(x, y float64) bool {
	return w.bbox.ContainsF(x, y) && w.distance(x, y) <= NearDistance
}

func (w *Wire) hitTest(x, y float64) bool { return w.Near(x, y) }

// rectTest only selects a wire when the rectangle holds one of its ends.
func (w *Wire) rectTest(r geom.Rect) bool {
	return r.Contains(w.Start()) || r.Contains(w.End())
}

// linked conducts a label from either end of the wire to the other.
func (w *Wire) linked(*ConnectionPoint) []*ConnectionPoint { return w.conns }

// labelConnections does nothing: nodes are started by real components.
func (w *Wire) labelConnections(*labeler) {}

// bisect returns the first pin of other that lies on the interior of the
// wire, or nil.
func (w *Wire) bisect(other Component) *ConnectionPoint {
	for _, cp := range other.Connections() {
		p := cp.location
		if !w.bbox.Contains(p) {
			continue
		}
		if w.distance(float64(p.X), float64(p.Y)) < 1 &&
			!w.conns[0].Coincident(p) && !w.conns[1].Coincident(p) {
			return cp
		}
	}
	return nil
}
