package ui

import (
	"fmt"

	"gioui.org/io/key"
	"gioui.org/layout"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netlist"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

type action int

const (
	actNone action = iota
	actDelete
	actRotate
	actCut
	actCopy
	actPaste
	actAbort
	actLabel
	actCheck
	actFit
	actTheme
	actOpen
	actSave
	actSaveAs
)

var shortcuts = []struct {
	filter key.Filter
	act    action
}{
	{key.Filter{Name: key.NameDeleteBackward}, actDelete},
	{key.Filter{Name: key.NameDeleteForward}, actDelete},
	{key.Filter{Name: "R"}, actRotate},
	{key.Filter{Name: "X", Required: key.ModShortcut}, actCut},
	{key.Filter{Name: "C", Required: key.ModShortcut}, actCopy},
	{key.Filter{Name: "V", Required: key.ModShortcut}, actPaste},
	{key.Filter{Name: key.NameEscape}, actAbort},
	{key.Filter{Name: "L"}, actLabel},
	{key.Filter{Name: "K", Required: key.ModShortcut}, actCheck},
	{key.Filter{Name: "F"}, actFit},
	{key.Filter{Name: "T", Required: key.ModShortcut}, actTheme},
	{key.Filter{Name: "O", Required: key.ModShortcut}, actOpen},
	{key.Filter{Name: "S", Required: key.ModShortcut}, actSave},
	{key.Filter{Name: "S", Required: key.ModShortcut | key.ModShift}, actSaveAs},
}

func (a *App) handleKeys(gtx layout.Context) {
	typing := a.props.focused(gtx)
	for _, sc := range shortcuts {
		for {
			ev, ok := gtx.Event(sc.filter)
			if !ok {
				break
			}
			ke, ok := ev.(key.Event)
			if !ok || ke.State != key.Press {
				continue
			}
			// plain keys belong to the property editor while it has focus
			if typing && sc.filter.Required == 0 {
				continue
			}
			a.do(sc.act)
		}
	}
}

// do runs a toolbar or keyboard action.
func (a *App) do(act action) {
	if changed, msg := apply(a.editor, act); msg != "" {
		if changed {
			a.markDirty()
		}
		a.setStatus(msg)
		return
	}

	switch act {
	case actCheck:
		a.check()
	case actFit:
		a.fit()
	case actTheme:
		a.toggleTheme()
	case actOpen:
		a.open()
	case actSave:
		a.save(false)
	case actSaveAs:
		a.save(true)
	}
}

// apply runs the actions that only touch the editor. It reports whether
// the diagram changed and a status message; an empty message means act is
// not an editing action.
func apply(e *editor.Editor, act action) (bool, string) {
	switch act {
	case actDelete:
		n := e.Delete()
		return n > 0, fmt.Sprintf("Deleted %d", n)
	case actRotate:
		n := len(e.Diagram().Selected())
		e.Rotate()
		return n > 0, fmt.Sprintf("Rotated %d", n)
	case actCut:
		n := e.Cut()
		return n > 0, fmt.Sprintf("Cut %d", n)
	case actCopy:
		return false, fmt.Sprintf("Copied %d", e.Copy())
	case actPaste:
		n := len(e.Paste())
		return n > 0, fmt.Sprintf("Pasted %d", n)
	case actAbort:
		e.Abort()
		e.Diagram().UnselectAll(nil)
		return false, "Ready"
	case actLabel:
		n := e.Diagram().LabelConnectionPoints()
		return false, fmt.Sprintf("%d nodes", n)
	}
	return false, ""
}

func (a *App) check() {
	a.setStatus(checkLabels(a.diagram))
}

// checkLabels relabels d and cross-checks the result against connectivity.
func checkLabels(d *schematic.Diagram) string {
	d.LabelConnectionPoints()
	if err := netlist.Verify(d); err != nil {
		return err.Error()
	}
	nl := netlist.Build(d)
	return fmt.Sprintf("Labels OK: %d parts, %d nets", len(nl.Parts), nl.NetCount())
}

func (a *App) fit() {
	a.canvas.fitPending = false
	r, ok := a.diagram.Bounds()
	if !ok || a.canvas.size.X == 0 {
		return
	}
	a.diagram.View.Fit(r, a.canvas.size.X, a.canvas.size.Y)
}

func (a *App) placePart(k schematic.Kind) {
	if _, err := a.editor.PlacePart(k); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.markDirty()
	a.setStatus("Place " + k.Description())
}
