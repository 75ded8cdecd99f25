// Package render paints a diagram onto a pixel surface: the grid, the
// components, one dot per occupied connection location and the overlays
// of an editing gesture in progress.
package render

import (
	"image/color"
	"math"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Surface is a drawing target in screen pixels. Angles are in radians from
// +x, sweeping clockwise on screen from start to end. Text is placed so the
// point (ax, ay) of its extent, as fractions of width and height, sits at
// (x, y).
type Surface interface {
	Clear(c color.NRGBA)
	Line(x1, y1, x2, y2, width float64, c color.NRGBA)
	Circle(x, y, r, width float64, filled bool, c color.NRGBA)
	Arc(x, y, r, start, end, width float64, c color.NRGBA)
	Text(s string, x, y, size, ax, ay float64, c color.NRGBA)
}

// JunctionRadius is the radius, in schematic units, of a connection dot.
const JunctionRadius = 2

// Grid lines are skipped when they would be closer than this many pixels.
const minGridPixels = 4

// Overlay describes the transient parts of an editing gesture.
type Overlay struct {
	Wire      bool
	WireStart geom.Point
	WireEnd   geom.Point

	// Selection rectangle corners in schematic coordinates.
	Rect           bool
	RectX0, RectY0 float64
	RectX1, RectY1 float64

	Cursor   bool
	CursorAt geom.Point
}

// EditorOverlay captures the gesture state of e. The cross cursor is only
// included when cursor is set, typically while the pointer is over the
// canvas.
func EditorOverlay(e *editor.Editor, cursor bool) Overlay {
	var ov Overlay
	ov.WireStart, ov.WireEnd, ov.Wire = e.WireInProgress()
	ov.RectX0, ov.RectY0, ov.RectX1, ov.RectY1, ov.Rect = e.SelectionRect()
	ov.Cursor = cursor
	ov.CursorAt = e.Cursor()
	return ov
}

// Options controls a single Draw call.
type Options struct {
	Width  int
	Height int
	Colors *Colors
	NoGrid bool
	Overlay
}

// Draw paints d through its View onto s.
func Draw(s Surface, d *schematic.Diagram, opts Options) {
	colors := opts.Colors
	if colors == nil {
		colors = GetColors(ThemeLight)
	}
	cv := &canvas{s: s, v: d.View, colors: colors}

	s.Clear(colors.Background)
	if !opts.NoGrid {
		drawGrid(s, d.View, d.Grid, opts.Width, opts.Height, colors.Grid)
	}

	// unselected components first so the selection stays on top
	comps := d.Components()
	for i := len(comps) - 1; i >= 0; i-- {
		if !comps[i].Selected() {
			comps[i].Draw(cv)
		}
	}
	for i := len(comps) - 1; i >= 0; i-- {
		if comps[i].Selected() {
			comps[i].Draw(cv)
		}
	}

	idx := d.Index()
	for _, loc := range idx.Locations() {
		drawJunction(s, d.View, loc, idx.At(loc), colors)
	}

	drawOverlay(s, d, opts.Overlay, colors)
}

func drawGrid(s Surface, v schematic.View, grid, width, height int, col color.NRGBA) {
	if grid <= 0 || float64(grid)*v.Scale < minGridPixels {
		return
	}
	r := v.Visible(width, height)
	first := func(lo int) int {
		return int(math.Floor(float64(lo)/float64(grid))) * grid
	}
	w := 0.1 * v.Scale
	for x := first(r.Left); x <= r.Right; x += grid {
		sx, _ := v.ToScreen(float64(x), 0)
		s.Line(sx, 0, sx, float64(height), w, col)
	}
	for y := first(r.Top); y <= r.Bottom; y += grid {
		_, sy := v.ToScreen(0, float64(y))
		s.Line(0, sy, float64(width), sy, w, col)
	}
}

// drawJunction marks a location: an open dot for a lone point, nothing for
// a plain two-way connection and a filled dot where three or more meet. The
// dot is highlighted while the first point's owner is selected.
func drawJunction(s Surface, v schematic.View, loc geom.Point, cps []*schematic.ConnectionPoint, colors *Colors) {
	n := len(cps)
	if n == 0 || n == 2 {
		return
	}
	col := colors.Junction
	if cps[0].Parent().Selected() {
		col = colors.Selected
	}
	x, y := v.ToScreen(float64(loc.X), float64(loc.Y))
	s.Circle(x, y, JunctionRadius*v.Scale, v.Scale, n > 2, col)
}

func drawOverlay(s Surface, d *schematic.Diagram, ov Overlay, colors *Colors) {
	v := d.View
	if ov.Wire {
		x1, y1 := v.ToScreen(float64(ov.WireStart.X), float64(ov.WireStart.Y))
		x2, y2 := v.ToScreen(float64(ov.WireEnd.X), float64(ov.WireEnd.Y))
		s.Line(x1, y1, x2, y2, v.Scale, colors.WireInProgress)
	}

	if ov.Rect {
		x0, y0 := v.ToScreen(ov.RectX0, ov.RectY0)
		x1, y1 := v.ToScreen(ov.RectX1, ov.RectY1)
		c := colors.SelectionRect
		s.Line(x0, y0, x0, y1, 1, c)
		s.Line(x0, y1, x1, y1, 1, c)
		s.Line(x1, y1, x1, y0, 1, c)
		s.Line(x1, y0, x0, y0, 1, c)
	}

	if ov.Cursor {
		g := float64(max(d.Grid, 1))
		x, y := float64(ov.CursorAt.X), float64(ov.CursorAt.Y)
		ax, ay := v.ToScreen(x-g, y)
		bx, by := v.ToScreen(x+g, y)
		s.Line(ax, ay, bx, by, v.Scale, colors.Cursor)
		ax, ay = v.ToScreen(x, y-g)
		bx, by = v.ToScreen(x, y+g)
		s.Line(ax, ay, bx, by, v.Scale, colors.Cursor)
	}
}

// canvas adapts a Surface to the schematic coordinate system of a View.
type canvas struct {
	s      Surface
	v      schematic.View
	colors *Colors
}

var _ schematic.Canvas = (*canvas)(nil)

func (c *canvas) color(selected bool) color.NRGBA {
	if selected {
		return c.colors.Selected
	}
	return c.colors.Component
}

func (c *canvas) Line(x1, y1, x2, y2 float64, selected bool) {
	ax, ay := c.v.ToScreen(x1, y1)
	bx, by := c.v.ToScreen(x2, y2)
	c.s.Line(ax, ay, bx, by, c.v.Scale, c.color(selected))
}

func (c *canvas) Circle(x, y, r float64, filled, selected bool) {
	sx, sy := c.v.ToScreen(x, y)
	c.s.Circle(sx, sy, r*c.v.Scale, c.v.Scale, filled, c.color(selected))
}

func (c *canvas) Arc(x, y, r, start, end float64, selected bool) {
	sx, sy := c.v.ToScreen(x, y)
	c.s.Arc(sx, sy, r*c.v.Scale, start, end, c.v.Scale, c.color(selected))
}

func (c *canvas) Text(s string, x, y float64, align schematic.Align, size float64, selected bool) {
	sx, sy := c.v.ToScreen(x, y)
	c.s.Text(s, sx, sy, size*c.v.Scale, align.Horizontal(), align.Vertical(), c.color(selected))
}
