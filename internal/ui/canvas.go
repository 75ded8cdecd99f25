package ui

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
	giosurface "github.com/OpenTraceLab/OpenTraceSchematic/pkg/render/gioui"
)

type canvasState struct {
	size       image.Point
	hover      bool
	panning    bool
	panFrom    f32.Point
	fitPending bool
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.canvas.size = size
	if a.canvas.fitPending {
		a.fit()
	}
	a.handlePointer(gtx)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &a.canvas)
	pointer.CursorCrosshair.Add(gtx.Ops)

	s := giosurface.NewSurface(gtx, a.gvTheme.Theme)
	render.Draw(s, a.diagram, render.Options{
		Width:   size.X,
		Height:  size.Y,
		Colors:  a.colors,
		Overlay: render.EditorOverlay(a.editor, a.canvas.hover),
	})
	return layout.Dimensions{Size: size}
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.canvas,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Enter | pointer.Leave | pointer.Scroll | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		x, y := a.diagram.View.ToSchematic(float64(pe.Position.X), float64(pe.Position.Y))
		shift := pe.Modifiers.Contain(key.ModShift)

		switch pe.Kind {
		case pointer.Press:
			// clicking the canvas takes focus away from the property fields
			gtx.Execute(key.FocusCmd{})
			switch {
			case pe.Buttons.Contain(pointer.ButtonPrimary):
				// a freshly placed part is already being dragged and
				// drops on release
				if !a.editor.Dragging() {
					a.editor.PointerDown(x, y, shift)
				}
			case pe.Buttons.Contain(pointer.ButtonSecondary):
				a.props.edit(a.editor.EditAt(x, y))
			case pe.Buttons.Contain(pointer.ButtonTertiary):
				a.canvas.panning = true
				a.canvas.panFrom = pe.Position
			}

		case pointer.Drag:
			if a.canvas.panning {
				d := pe.Position.Sub(a.canvas.panFrom)
				a.diagram.View.Pan(float64(d.X), float64(d.Y))
				a.canvas.panFrom = pe.Position
				continue
			}
			a.editor.PointerMove(x, y)

		case pointer.Release:
			if a.canvas.panning {
				a.canvas.panning = false
				continue
			}
			busy := a.editor.Busy()
			a.editor.PointerUp(x, y, shift)
			if busy {
				a.markDirty()
			}

		case pointer.Move:
			a.canvas.hover = true
			a.editor.PointerMove(x, y)

		case pointer.Enter:
			a.canvas.hover = true

		case pointer.Leave:
			a.canvas.hover = false
			a.editor.Leave()

		case pointer.Cancel:
			a.canvas.panning = false
			a.editor.Abort()

		case pointer.Scroll:
			zoomFactor := 1.0 - float64(pe.Scroll.Y)*0.1
			if zoomFactor > 0 {
				a.diagram.View.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
			}
		}
	}
}
