package schematic

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// ConnectionPoint is a pin of a component. Its location is the owning
// component's position plus its rotated offset; two points are coincident
// (electrically joined) exactly when their locations are equal.
type ConnectionPoint struct {
	parent   Component
	offset   geom.Point
	location geom.Point
	label    string
}

func newConnectionPoint(parent Component, x, y int) *ConnectionPoint {
	return &ConnectionPoint{parent: parent, offset: geom.Pt(x, y)}
}

// Parent returns the component owning the point.
func (cp *ConnectionPoint) Parent() Component { return cp.parent }

// Offset returns the pin position in component-local coordinates.
func (cp *ConnectionPoint) Offset() geom.Point { return cp.offset }

// Location returns the absolute pin position, the topology index key.
func (cp *ConnectionPoint) Location() geom.Point { return cp.location }

// Label returns the node label, or "" when unset.
func (cp *ConnectionPoint) Label() string { return cp.label }

// Coincident reports whether the point sits at p.
func (cp *ConnectionPoint) Coincident(p geom.Point) bool { return cp.location == p }

// ClearLabel resets the label to unset.
func (cp *ConnectionPoint) ClearLabel() { cp.label = "" }

// AssignLabel labels cp and everything electrically joined to it. It does
// nothing if cp already carries a label.
func (cp *ConnectionPoint) AssignLabel(label string) {
	var idx *Index
	if d := cp.parent.base().diagram; d != nil {
		idx = d.index
	}
	(&labeler{index: idx}).assign(cp, label)
}

// recomputeLocation derives the absolute location from the parent geometry
// and moves the point to its new key in the index.
func (cp *ConnectionPoint) recomputeLocation() {
	b := cp.parent.base()
	prev := cp.location
	cp.location = b.rot.Apply(cp.offset).Add(b.pos)
	if b.diagram != nil && prev != cp.location {
		b.diagram.index.Relocate(cp, prev)
	}
}

func (cp *ConnectionPoint) String() string {
	return fmt.Sprintf("<ConnectionPoint (%s) %s>", cp.offset, cp.parent)
}
