package schematic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

func mustPart(t *testing.T, d *Diagram, kind Kind, x, y int, rot geom.Rotation) Component {
	t.Helper()
	c, err := NewPart(kind, x, y, rot)
	require.NoError(t, err)
	d.Add(c)
	return c
}

func mustWire(t *testing.T, d *Diagram, x1, y1, x2, y2 int) *Wire {
	t.Helper()
	w, err := NewWire(geom.Pt(x1, y1), geom.Pt(x2, y2))
	require.NoError(t, err)
	d.Add(w)
	return w
}

// wireEnds lists the endpoints of every wire in diagram order.
func wireEnds(d *Diagram) [][2]geom.Point {
	var out [][2]geom.Point
	for _, c := range d.Components() {
		if w, ok := c.(*Wire); ok {
			out = append(out, [2]geom.Point{w.Start(), w.End()})
		}
	}
	return out
}

func locations(c Component) []geom.Point {
	var out []geom.Point
	for _, cp := range c.Connections() {
		out = append(out, cp.Location())
	}
	return out
}
