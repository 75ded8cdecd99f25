// Package schematic is the editing core of a circuit diagram: components and
// their connection points, the topology index of coincident points, wire
// splitting when a pin lands on a wire, and electrical node labeling.
//
// A Diagram is not safe for concurrent use; each editing gesture runs to
// completion on one goroutine.
package schematic

import (
	"slices"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// DefaultGrid is the snapping grid, in schematic units.
const DefaultGrid = 8

// Diagram is an ordered list of components with the index of their
// connection points and the view state.
type Diagram struct {
	components []Component
	index      *Index
	View       View
	Grid       int
}

// New returns an empty diagram with the default view.
func New() *Diagram {
	return &Diagram{
		index: NewIndex(),
		View:  DefaultView(),
		Grid:  DefaultGrid,
	}
}

// Components returns the components in diagram order.
func (d *Diagram) Components() []Component {
	return slices.Clone(d.components)
}

// Len returns the number of components.
func (d *Diagram) Len() int { return len(d.components) }

// Index returns the topology index.
func (d *Diagram) Index() *Index { return d.index }

// Add appends c and registers its connection points, without splitting
// wires. A component belongs to at most one diagram; it is taken out of
// any previous one first.
func (d *Diagram) Add(c Component) {
	b := c.base()
	if b.diagram == d {
		return
	}
	if b.diagram != nil {
		b.diagram.Remove(c)
	}
	d.components = append(d.components, c)
	b.attach(d)
}

// Place adds c and splits any wire one of its pins lands on.
func (d *Diagram) Place(c Component) {
	d.Add(c)
	d.CheckWires(c)
}

// Remove deletes c and deregisters its connection points. It reports
// whether c was part of the diagram.
func (d *Diagram) Remove(c Component) bool {
	i := slices.Index(d.components, c)
	if i < 0 {
		return false
	}
	d.components = slices.Delete(d.components, i, i+1)
	c.base().detach()
	return true
}

// Clear removes every component.
func (d *Diagram) Clear() {
	for _, c := range d.components {
		c.base().detach()
	}
	d.components = nil
}

// AddWire places a wire from start to end, splitting wires at either end
// and any wire the new one's ends land on.
func (d *Diagram) AddWire(start, end geom.Point) (*Wire, error) {
	w, err := NewWire(start, end)
	if err != nil {
		return nil, err
	}
	d.Place(w)
	return w, nil
}

// CheckWires splits every wire that a pin of c bisects. Each split replaces
// the wire with two wires meeting at the pin; the new wires are checked in
// turn so T junctions they form are split too. It stops once no wire is
// bisected by c.
func (d *Diagram) CheckWires(c Component) {
	for c.base().diagram == d {
		w, cp := d.bisected(c)
		if w == nil {
			return
		}
		start, end, at := w.Start(), w.End(), cp.Location()
		Logger().Debug("split wire", "wire", w.String(), "at", at.String(), "by", c.String())
		d.Remove(w)
		// neither half can be degenerate: at is never an end of w
		d.AddWire(start, at)
		d.AddWire(at, end)
	}
}

func (d *Diagram) bisected(c Component) (*Wire, *ConnectionPoint) {
	for _, other := range d.components {
		if other == c {
			continue
		}
		if cp := other.bisect(c); cp != nil {
			return other.(*Wire), cp
		}
	}
	return nil, nil
}

// Selected returns the selected components in diagram order.
func (d *Diagram) Selected() []Component {
	var sel []Component
	for _, c := range d.components {
		if c.Selected() {
			sel = append(sel, c)
		}
	}
	return sel
}

// UnselectAll clears the selection, except for keep when it is non-nil.
func (d *Diagram) UnselectAll(keep Component) {
	for _, c := range d.components {
		if c != keep {
			c.SetSelected(false)
		}
	}
}

// ComponentAt returns the last component whose bounding box contains
// (x, y), or nil.
func (d *Diagram) ComponentAt(x, y float64) Component {
	for i := len(d.components) - 1; i >= 0; i-- {
		if d.components[i].BBox().ContainsF(x, y) {
			return d.components[i]
		}
	}
	return nil
}

// Bounds returns the union of all bounding boxes. ok is false for an empty
// diagram.
func (d *Diagram) Bounds() (r geom.Rect, ok bool) {
	for i, c := range d.components {
		if i == 0 {
			r = c.BBox()
		} else {
			r = r.Union(c.BBox())
		}
	}
	return r, len(d.components) > 0
}

// Counts returns the number of components of each kind.
func (d *Diagram) Counts() map[Kind]int {
	n := make(map[Kind]int)
	for _, c := range d.components {
		n[c.Kind()]++
	}
	return n
}
