// Package gioui implements render.Surface on top of Gio operations so the
// editor window can paint a diagram inside a layout.
package gioui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
)

// arcStep is the largest angle covered by one segment of an arc.
const arcStep = math.Pi / 16

// Surface records drawing commands into the ops of a layout context.
type Surface struct {
	gtx layout.Context
	th  *material.Theme
}

var _ render.Surface = (*Surface)(nil)

// NewTheme returns a material theme using the Go fonts.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

// NewSurface wraps gtx. A nil theme gets NewTheme.
func NewSurface(gtx layout.Context, th *material.Theme) *Surface {
	if th == nil {
		th = NewTheme()
	}
	return &Surface{gtx: gtx, th: th}
}

func pt(x, y float64) f32.Point {
	return f32.Pt(float32(x), float32(y))
}

func (s *Surface) Clear(c color.NRGBA) {
	paint.Fill(s.gtx.Ops, c)
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	var path clip.Path
	path.Begin(s.gtx.Ops)
	path.MoveTo(pt(x1, y1))
	path.LineTo(pt(x2, y2))
	paint.FillShape(s.gtx.Ops, c, clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op())
}

func (s *Surface) Circle(x, y, r, width float64, filled bool, c color.NRGBA) {
	e := clip.Ellipse{
		Min: image.Pt(int(math.Round(x-r)), int(math.Round(y-r))),
		Max: image.Pt(int(math.Round(x+r)), int(math.Round(y+r))),
	}
	if filled {
		paint.FillShape(s.gtx.Ops, c, e.Op(s.gtx.Ops))
		return
	}
	paint.FillShape(s.gtx.Ops, c, clip.Stroke{
		Path:  e.Path(s.gtx.Ops),
		Width: float32(width),
	}.Op())
}

func (s *Surface) Arc(x, y, r, start, end, width float64, c color.NRGBA) {
	pts := arcPoints(x, y, r, start, end)
	var path clip.Path
	path.Begin(s.gtx.Ops)
	path.MoveTo(pts[0])
	for _, p := range pts[1:] {
		path.LineTo(p)
	}
	paint.FillShape(s.gtx.Ops, c, clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op())
}

// arcPoints approximates the arc from start to end, increasing the angle
// as needed so the sweep is never negative.
func arcPoints(x, y, r, start, end float64) []f32.Point {
	for end < start {
		end += 2 * math.Pi
	}
	n := max(1, int(math.Ceil((end-start)/arcStep - 1e-9)))
	pts := make([]f32.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, pt(x+r*math.Cos(a), y+r*math.Sin(a)))
	}
	return pts
}

func (s *Surface) Text(str string, x, y, size, ax, ay float64, c color.NRGBA) {
	if str == "" || size <= 0 {
		return
	}

	// lay out at one pixel per sp so size is in screen pixels
	gtx := s.gtx
	gtx.Metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}
	gtx.Constraints = layout.Constraints{Max: image.Pt(1<<16, 1<<16)}

	lbl := material.Label(s.th, unit.Sp(size), str)
	lbl.Color = c
	lbl.Alignment = text.Start
	lbl.MaxLines = 1

	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	off := image.Pt(
		int(math.Round(x-ax*float64(dims.Size.X))),
		int(math.Round(y-ay*float64(dims.Size.Y))),
	)
	defer op.Offset(off).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
