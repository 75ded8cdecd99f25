package schematic

import (
	"maps"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// Component is one element of a diagram: a wire or a part. The set of
// variants is closed; the unexported hooks below decide how each variant
// takes part in labeling and wire splitting.
type Component interface {
	Kind() Kind
	Position() geom.Point
	Rotation() geom.Rotation
	// LocalBounds is the bounding box in component-local coordinates.
	LocalBounds() geom.Rect
	// BBox is the absolute, canonical bounding box.
	BBox() geom.Rect
	Connections() []*ConnectionPoint
	Diagram() *Diagram

	Properties() map[string]string
	PropertyKeys() []string
	Property(key string) string
	SetProperty(key, value string)

	Selected() bool
	SetSelected(bool)
	WasSelected() bool
	// Hit selects the component if (x, y) falls on it; shift toggles
	// instead. It reports whether the point was a hit.
	Hit(x, y float64, shift bool) bool
	// SelectRect selects the component if it lies (partly) in r.
	SelectRect(r geom.Rect)

	Move(dx, dy int)
	MoveBegin()
	MoveEnd()
	MoveAbort()
	Rotate(steps int)

	// Clone returns a detached copy of the component at (x, y).
	Clone(x, y int) Component
	// Draw renders the symbol onto c in absolute schematic coordinates.
	Draw(c Canvas)
	String() string

	base() *Base
	hitTest(x, y float64) bool
	rectTest(r geom.Rect) bool
	linked(cp *ConnectionPoint) []*ConnectionPoint
	addDefaultLabels(l *labeler)
	labelConnections(l *labeler)
	bisect(other Component) *ConnectionPoint
}

// Base carries the state and default behaviour shared by every variant.
type Base struct {
	self     Component
	diagram  *Diagram
	kind     Kind
	pos      geom.Point
	rot      geom.Rotation
	props    map[string]string
	keys     []string
	bounds   geom.Rect
	bbox     geom.Rect
	conns    []*ConnectionPoint
	selected bool
	wasSel   bool
	moveFrom geom.Point
}

func (b *Base) init(self Component, kind Kind, x, y int, rot geom.Rotation, bounds geom.Rect) {
	b.self = self
	b.kind = kind
	b.pos = geom.Pt(x, y)
	b.rot = rot.Add(0)
	b.bounds = bounds
	b.props = make(map[string]string)
}

func (b *Base) addConnection(x, y int) {
	b.conns = append(b.conns, newConnectionPoint(b.self, x, y))
}

// updateGeometry recomputes the bounding box and the location of every pin.
// All position and rotation changes go through here so the index stays
// consistent.
func (b *Base) updateGeometry() {
	p0 := b.rot.Apply(geom.Pt(b.bounds.Left, b.bounds.Top)).Add(b.pos)
	p1 := b.rot.Apply(geom.Pt(b.bounds.Right, b.bounds.Bottom)).Add(b.pos)
	b.bbox = geom.R(p0.X, p0.Y, p1.X, p1.Y).Canon()
	for _, cp := range b.conns {
		cp.recomputeLocation()
	}
}

func (b *Base) attach(d *Diagram) {
	b.diagram = d
	for _, cp := range b.conns {
		d.index.Insert(cp)
	}
}

func (b *Base) detach() {
	if b.diagram == nil {
		return
	}
	for _, cp := range b.conns {
		b.diagram.index.Remove(cp, cp.location)
	}
	b.diagram = nil
}

func (b *Base) base() *Base                     { return b }
func (b *Base) Kind() Kind                      { return b.kind }
func (b *Base) Position() geom.Point            { return b.pos }
func (b *Base) Rotation() geom.Rotation         { return b.rot }
func (b *Base) LocalBounds() geom.Rect          { return b.bounds }
func (b *Base) BBox() geom.Rect                 { return b.bbox }
func (b *Base) Connections() []*ConnectionPoint { return b.conns }
func (b *Base) Diagram() *Diagram               { return b.diagram }

// Properties returns a copy of the property map.
func (b *Base) Properties() map[string]string { return maps.Clone(b.props) }

// PropertyKeys returns the property names in declaration order.
func (b *Base) PropertyKeys() []string {
	return append([]string(nil), b.keys...)
}

func (b *Base) Property(key string) string { return b.props[key] }

// SetProperty stores value verbatim; properties are opaque to the core.
func (b *Base) SetProperty(key, value string) {
	if _, ok := b.props[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.props[key] = value
}

func (b *Base) Selected() bool       { return b.selected }
func (b *Base) SetSelected(sel bool) { b.selected = sel }

// WasSelected reports the selection state before the last Hit or
// SelectRect.
func (b *Base) WasSelected() bool { return b.wasSel }

func (b *Base) Hit(x, y float64, shift bool) bool {
	b.wasSel = b.selected
	if !b.self.hitTest(x, y) {
		return false
	}
	if shift {
		b.selected = !b.selected
	} else {
		b.selected = true
	}
	return true
}

func (b *Base) SelectRect(r geom.Rect) {
	b.wasSel = b.selected
	if b.self.rectTest(r.Canon()) {
		b.selected = true
	}
}

func (b *Base) hitTest(x, y float64) bool { return b.bbox.ContainsF(x, y) }
func (b *Base) rectTest(r geom.Rect) bool { return b.bbox.Intersects(r) }

func (b *Base) Move(dx, dy int) {
	b.pos = b.pos.Add(geom.Pt(dx, dy))
	b.updateGeometry()
}

func (b *Base) MoveBegin() { b.moveFrom = b.pos }

// MoveEnd completes a move. If the component actually moved, its pins may
// now bisect existing wires, which are split.
func (b *Base) MoveEnd() {
	if b.pos != b.moveFrom && b.diagram != nil {
		b.diagram.CheckWires(b.self)
	}
}

// MoveAbort returns the component to where it was at MoveBegin without
// touching any wire.
func (b *Base) MoveAbort() {
	if b.pos == b.moveFrom {
		return
	}
	b.pos = b.moveFrom
	b.updateGeometry()
}

func (b *Base) Rotate(steps int) {
	b.rot = b.rot.Add(steps)
	b.updateGeometry()
}

func (b *Base) linked(*ConnectionPoint) []*ConnectionPoint { return nil }
func (b *Base) addDefaultLabels(*labeler)                  {}
func (b *Base) bisect(Component) *ConnectionPoint          { return nil }

// labelConnections starts a fresh node at every pin not yet reached by
// another component's label.
func (b *Base) labelConnections(l *labeler) {
	for _, cp := range b.conns {
		if cp.label == "" {
			l.assign(cp, l.fresh())
		}
	}
}

func (b *Base) resetProps() {
	b.props = make(map[string]string)
	b.keys = nil
}

// copyProps copies every property except name, which identifies a single
// instance.
func (b *Base) copyProps(dst *Base) {
	for _, k := range b.keys {
		v := b.props[k]
		if k == "name" {
			v = ""
		}
		dst.SetProperty(k, v)
	}
}
