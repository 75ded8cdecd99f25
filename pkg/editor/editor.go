// Package editor turns pointer and keyboard gestures into edits of a
// schematic diagram: selection, dragging, wire drawing, rotation,
// cut/copy/paste and parts-bin placement.
//
// Coordinates passed to the editor are in schematic units; the caller
// converts from screen pixels with the diagram's View. Every gesture either
// commits (PointerUp) or is rolled back (Abort).
package editor

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Editor holds the gesture state for one diagram.
type Editor struct {
	d *schematic.Diagram

	cursor   geom.Point
	wire     *[2]geom.Point
	rect     *[4]float64
	dragging bool
	dragFrom geom.Point
	placed   schematic.Component

	clipboard []schematic.Component
}

// New returns an editor for d.
func New(d *schematic.Diagram) *Editor {
	return &Editor{d: d}
}

// Diagram returns the edited diagram.
func (e *Editor) Diagram() *schematic.Diagram { return e.d }

// Cursor returns the grid-snapped pointer position.
func (e *Editor) Cursor() geom.Point { return e.cursor }

// SetCursor snaps (x, y) to the grid and makes it the cursor.
func (e *Editor) SetCursor(x, y float64) {
	e.cursor = geom.SnapPoint(x, y, e.d.Grid)
}

// Dragging reports whether selected components are following the pointer.
func (e *Editor) Dragging() bool { return e.dragging }

// WireInProgress returns the wire being drawn, if any.
func (e *Editor) WireInProgress() (start, end geom.Point, ok bool) {
	if e.wire == nil {
		return geom.Point{}, geom.Point{}, false
	}
	return e.wire[0], e.wire[1], true
}

// SelectionRect returns the corners of the selection rectangle being
// dragged out, if any.
func (e *Editor) SelectionRect() (x0, y0, x1, y1 float64, ok bool) {
	if e.rect == nil {
		return 0, 0, 0, 0, false
	}
	return e.rect[0], e.rect[1], e.rect[2], e.rect[3], true
}

// Busy reports whether a gesture is in progress.
func (e *Editor) Busy() bool {
	return e.wire != nil || e.rect != nil || e.dragging
}

// PointerDown starts a gesture at (x, y).
//
// Without shift, pressing on a connection point starts a wire. Otherwise the
// topmost component under the pointer is selected (shift toggles) and the
// selection starts dragging; pressing on empty space starts a selection
// rectangle.
func (e *Editor) PointerDown(x, y float64, shift bool) {
	e.SetCursor(x, y)

	if !shift && e.d.Index().Count(e.cursor) > 0 {
		e.d.UnselectAll(nil)
		e.wire = &[2]geom.Point{e.cursor, e.cursor}
		return
	}

	var hit schematic.Component
	comps := e.d.Components()
	for i := len(comps) - 1; i >= 0; i-- {
		if comps[i].Hit(x, y, shift) {
			if comps[i].Selected() {
				hit = comps[i]
			}
			break
		}
	}

	// pressing on a component that was already selected keeps the rest of
	// the selection so it can be dragged as a group
	reselect := hit != nil && hit.WasSelected()
	if !shift && !reselect {
		e.d.UnselectAll(hit)
	}
	if hit != nil {
		e.dragBegin()
	} else if !shift {
		e.rect = &[4]float64{x, y, x, y}
	}
}

// PointerMove tracks the pointer during a gesture.
func (e *Editor) PointerMove(x, y float64) {
	e.SetCursor(x, y)
	switch {
	case e.wire != nil:
		e.wire[1] = e.cursor
	case e.dragging:
		delta := e.cursor.Sub(e.dragFrom)
		if delta == (geom.Point{}) {
			return
		}
		e.dragFrom = e.cursor
		for _, c := range e.d.Selected() {
			c.Move(delta.X, delta.Y)
		}
	case e.rect != nil:
		e.rect[2], e.rect[3] = x, y
	}
}

// PointerUp commits the gesture in progress.
func (e *Editor) PointerUp(x, y float64, shift bool) {
	e.PointerMove(x, y)

	if e.wire != nil {
		w := *e.wire
		e.wire = nil
		if w[0] != w[1] {
			if _, err := e.d.AddWire(w[0], w[1]); err != nil {
				schematic.Logger().Debug("wire dropped", "err", err)
			}
		}
	}

	if e.dragging {
		e.dragEnd()
	}

	if e.rect != nil {
		r := *e.rect
		e.rect = nil
		// a zero-size rectangle was a click, already handled on press
		if r[0] != r[2] || r[1] != r[3] {
			e.SelectArea(r[0], r[1], r[2], r[3], shift)
		}
	}
}

// SelectArea selects every component touching the rectangle with corners
// (x0, y0) and (x1, y1). Without extend the previous selection is dropped.
func (e *Editor) SelectArea(x0, y0, x1, y1 float64, extend bool) {
	if !extend {
		e.d.UnselectAll(nil)
	}
	sel := geom.R(round(x0), round(y0), round(x1), round(y1)).Canon()
	for _, c := range e.d.Components() {
		c.SelectRect(sel)
	}
}

// Leave is called when the pointer leaves the canvas; it abandons the
// gesture in progress.
func (e *Editor) Leave() {
	e.Abort()
}

// Abort abandons the gesture in progress without side effects: a drag is
// rolled back to where it started, a part just taken from the parts bin is
// removed again, and a wire or selection rectangle is discarded.
func (e *Editor) Abort() {
	if e.dragging {
		for _, c := range e.d.Selected() {
			c.MoveAbort()
		}
		e.dragging = false
	}
	if e.placed != nil {
		e.d.Remove(e.placed)
		e.placed = nil
	}
	e.wire = nil
	e.rect = nil
}

func (e *Editor) dragBegin() {
	for _, c := range e.d.Selected() {
		c.MoveBegin()
	}
	e.dragFrom = e.cursor
	e.dragging = true
}

func (e *Editor) dragEnd() {
	for _, c := range e.d.Selected() {
		c.MoveEnd()
	}
	if e.placed != nil {
		// a new part is committed even if it was dropped where it appeared
		e.d.CheckWires(e.placed)
		e.placed = nil
	}
	e.dragging = false
}

// PlacePart drops a new part of the given kind at the cursor, selects it
// alone and starts dragging it. The next PointerUp commits it; Abort
// removes it.
func (e *Editor) PlacePart(kind schematic.Kind) (schematic.Component, error) {
	if e.Busy() {
		e.Abort()
	}
	c, err := schematic.NewPart(kind, e.cursor.X, e.cursor.Y, geom.North)
	if err != nil {
		return nil, fmt.Errorf("place part: %w", err)
	}
	e.d.UnselectAll(nil)
	e.d.Add(c)
	c.SetSelected(true)
	e.placed = c
	e.dragBegin()
	return c, nil
}

// Delete removes every selected component and returns how many were
// removed.
func (e *Editor) Delete() int {
	sel := e.d.Selected()
	for _, c := range sel {
		e.d.Remove(c)
	}
	return len(sel)
}

// Rotate turns every selected component a quarter turn about its origin.
func (e *Editor) Rotate() {
	for _, c := range e.d.Selected() {
		c.Rotate(1)
	}
}

// Cut moves the selection to the clipboard.
func (e *Editor) Cut() int {
	sel := e.d.Selected()
	e.clipboard = e.clipboard[:0]
	for _, c := range sel {
		e.d.Remove(c)
		e.clipboard = append(e.clipboard, c)
	}
	return len(sel)
}

// Copy puts clones of the selection on the clipboard.
func (e *Editor) Copy() int {
	sel := e.d.Selected()
	e.clipboard = e.clipboard[:0]
	for _, c := range sel {
		p := c.Position()
		e.clipboard = append(e.clipboard, c.Clone(p.X, p.Y))
	}
	return len(sel)
}

// Clipboard returns the number of components on the clipboard.
func (e *Editor) Clipboard() int { return len(e.clipboard) }

// Paste places clones of the clipboard so that the top-left-most origin
// among them lands on the cursor. The pasted components become the
// selection.
func (e *Editor) Paste() []schematic.Component {
	if len(e.clipboard) == 0 {
		return nil
	}
	left, top := math.MaxInt, math.MaxInt
	for _, c := range e.clipboard {
		p := c.Position()
		left, top = min(left, p.X), min(top, p.Y)
	}

	e.d.UnselectAll(nil)
	pasted := make([]schematic.Component, 0, len(e.clipboard))
	for _, c := range e.clipboard {
		p := c.Position()
		n := c.Clone(e.cursor.X+p.X-left, e.cursor.Y+p.Y-top)
		e.d.Place(n)
		n.SetSelected(true)
		pasted = append(pasted, n)
	}
	return pasted
}

// EditAt returns the topmost component whose bounding box contains
// (x, y), for the property editor.
func (e *Editor) EditAt(x, y float64) schematic.Component {
	e.SetCursor(x, y)
	return e.d.ComponentAt(x, y)
}

// SetProperty sets key on every selected component that has it, or on
// every selected part when add is true. It returns the number changed.
func (e *Editor) SetProperty(key, value string, add bool) int {
	n := 0
	for _, c := range e.d.Selected() {
		if c.Kind() == schematic.KindWire {
			continue
		}
		if _, ok := c.Properties()[key]; ok || add {
			c.SetProperty(key, value)
			n++
		}
	}
	return n
}

func round(v float64) int {
	return int(math.Round(v))
}
