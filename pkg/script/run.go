package script

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// ErrBadArgument is wrapped by ExecError when a command's arguments are
// out of range.
var ErrBadArgument = errors.New("bad argument")

// ExecError reports the script command that failed.
type ExecError struct {
	Pos lexer.Position
	Cmd string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Pos, e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Run replays every command of s against ed, stopping at the first
// failure. Pointer coordinates are in schematic units.
func (s *Script) Run(ed *editor.Editor) error {
	for _, c := range s.Commands {
		if err := c.run(ed); err != nil {
			return &ExecError{Pos: c.Pos, Cmd: c.Name(), Err: err}
		}
		schematic.Logger().Debug("script command", "pos", c.Pos.String(), "cmd", c.Name())
	}
	return nil
}

// Name returns the command keyword.
func (c *Command) Name() string {
	switch {
	case c.View != nil:
		return "view"
	case c.Place != nil:
		return "place"
	case c.Wire != nil:
		return "wire"
	case c.Drag != nil:
		return "drag"
	case c.Press != nil:
		return "press"
	case c.Move != nil:
		return "move"
	case c.Release != nil:
		return "release"
	case c.Click != nil:
		return "click"
	case c.Select != nil:
		return "select"
	case c.Rotate:
		return "rotate"
	case c.Delete:
		return "delete"
	case c.Cut:
		return "cut"
	case c.Copy:
		return "copy"
	case c.Paste != nil:
		return "paste"
	case c.Abort:
		return "abort"
	case c.Label:
		return "label"
	case c.Set != nil:
		return "set"
	}
	return "?"
}

func (c *Command) run(ed *editor.Editor) error {
	d := ed.Diagram()
	switch {
	case c.View != nil:
		if c.View.Scale <= 0 {
			return fmt.Errorf("%w: scale %v is not positive", ErrBadArgument, c.View.Scale)
		}
		d.View = schematic.View{OriginX: c.View.X, OriginY: c.View.Y, Scale: c.View.Scale}

	case c.Place != nil:
		return c.Place.run(ed)

	case c.Wire != nil:
		w := c.Wire
		start := geom.SnapPoint(w.X1, w.Y1, d.Grid)
		end := geom.SnapPoint(w.X2, w.Y2, d.Grid)
		if _, err := d.AddWire(start, end); err != nil {
			return err
		}

	case c.Drag != nil:
		ed.PointerDown(c.Drag.X1, c.Drag.Y1, false)
		ed.PointerMove(c.Drag.X2, c.Drag.Y2)
		ed.PointerUp(c.Drag.X2, c.Drag.Y2, false)

	case c.Press != nil:
		ed.PointerDown(c.Press.X, c.Press.Y, c.Press.Shift)

	case c.Move != nil:
		ed.PointerMove(c.Move.X, c.Move.Y)

	case c.Release != nil:
		ed.PointerUp(c.Release.X, c.Release.Y, c.Release.Shift)

	case c.Click != nil:
		ed.PointerDown(c.Click.X, c.Click.Y, c.Click.Shift)
		ed.PointerUp(c.Click.X, c.Click.Y, c.Click.Shift)

	case c.Select != nil:
		s := c.Select
		ed.SelectArea(s.X1, s.Y1, s.X2, s.Y2, s.Shift)

	case c.Rotate:
		ed.Rotate()

	case c.Delete:
		ed.Delete()

	case c.Cut:
		ed.Cut()

	case c.Copy:
		ed.Copy()

	case c.Paste != nil:
		ed.SetCursor(c.Paste.X, c.Paste.Y)
		ed.Paste()

	case c.Abort:
		ed.Abort()

	case c.Label:
		d.LabelConnectionPoints()

	case c.Set != nil:
		for _, tok := range c.Set.Props {
			k, v, err := splitProp(tok)
			if err != nil {
				return err
			}
			ed.SetProperty(k, v, true)
		}
	}
	return nil
}

func (p *Place) run(ed *editor.Editor) error {
	kind, err := schematic.ParseKind(p.Kind)
	if err != nil {
		return err
	}
	if !geom.Rotation(p.Rot).Valid() {
		return fmt.Errorf("%w: rotation %d outside 0..7", ErrBadArgument, p.Rot)
	}
	props := make([][2]string, 0, len(p.Props))
	for _, tok := range p.Props {
		k, v, err := splitProp(tok)
		if err != nil {
			return err
		}
		props = append(props, [2]string{k, v})
	}

	ed.SetCursor(p.X, p.Y)
	c, err := ed.PlacePart(kind)
	if err != nil {
		return err
	}
	c.Rotate(p.Rot)
	for _, kv := range props {
		c.SetProperty(kv[0], kv[1])
	}
	// drop it where it appeared
	ed.PointerUp(p.X, p.Y, false)
	return nil
}
