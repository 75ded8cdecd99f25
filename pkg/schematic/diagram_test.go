package schematic

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

func TestPlaceBisectsWire(t *testing.T) {
	d := New()
	mustWire(t, d, 0, 0, 100, 0)

	r, err := NewPart(KindResistor, 40, 0, geom.North)
	require.NoError(t, err)
	d.Place(r)

	assert.Equal(t, [][2]geom.Point{
		{geom.Pt(0, 0), geom.Pt(40, 0)},
		{geom.Pt(40, 0), geom.Pt(100, 0)},
	}, wireEnds(d))
	assert.Equal(t, 3, d.Index().Count(geom.Pt(40, 0)))
	assert.Equal(t, 6, d.Index().Len())
}

func TestAddWireFormsTJunction(t *testing.T) {
	d := New()
	mustWire(t, d, 0, 0, 100, 0)

	_, err := d.AddWire(geom.Pt(50, -48), geom.Pt(50, 0))
	require.NoError(t, err)

	assert.ElementsMatch(t, [][2]geom.Point{
		{geom.Pt(50, -48), geom.Pt(50, 0)},
		{geom.Pt(0, 0), geom.Pt(50, 0)},
		{geom.Pt(50, 0), geom.Pt(100, 0)},
	}, wireEnds(d))
}

func TestAddWireSplitsAtOwnEnds(t *testing.T) {
	// the new wire's end lands on an existing wire, and its start on
	// another one
	d := New()
	mustWire(t, d, 0, 0, 0, 64)
	mustWire(t, d, 64, 0, 64, 64)

	_, err := d.AddWire(geom.Pt(0, 32), geom.Pt(64, 32))
	require.NoError(t, err)
	assert.Len(t, wireEnds(d), 5)
	assert.Equal(t, 3, d.Index().Count(geom.Pt(0, 32)))
	assert.Equal(t, 3, d.Index().Count(geom.Pt(64, 32)))
}

func TestBisectIgnoresEndpointsAndOffLinePoints(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"at start", 0, 0},
		{"at end", 100, 0},
		{"past end", 104, 0},
		{"beside wire", 40, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			mustWire(t, d, 0, 0, 100, 0)
			g := NewGround(tt.x, tt.y, geom.North)
			d.Place(g)
			assert.Len(t, wireEnds(d), 1)
		})
	}
}

func TestAddWireDegenerate(t *testing.T) {
	d := New()
	_, err := d.AddWire(geom.Pt(8, 8), geom.Pt(8, 8))
	assert.ErrorIs(t, err, ErrDegenerateWire)
	assert.Zero(t, d.Len())
}

func TestRemoveDeregistersPoints(t *testing.T) {
	d := New()
	mustWire(t, d, 0, 0, 0, 48)
	r := mustPart(t, d, KindResistor, 0, 48, geom.North)
	require.Equal(t, 4, d.Index().Len())

	assert.True(t, d.Remove(r))
	assert.False(t, d.Remove(r))
	assert.Equal(t, 2, d.Index().Len())
	for _, cp := range r.Connections() {
		assert.False(t, d.Index().Contains(cp))
	}
	assert.Equal(t, 1, d.Index().Count(geom.Pt(0, 48)))
	assert.NotContains(t, d.Index().Locations(), geom.Pt(0, 96), "empty bucket pruned")
	assert.Nil(t, r.Diagram())
}

func TestMoveKeepsIndexConsistent(t *testing.T) {
	d := New()
	r := mustPart(t, d, KindResistor, 8, 8, geom.North)
	before := d.Index().Locations()

	r.Move(16, -8)
	assert.Equal(t, []geom.Point{geom.Pt(24, 0), geom.Pt(24, 48)}, locations(r))
	assert.Equal(t, geom.R(20, 0, 28, 48), r.BBox())
	for _, cp := range r.Connections() {
		assert.True(t, d.Index().Contains(cp))
	}

	r.Move(-16, 8)
	assert.Equal(t, before, d.Index().Locations())
	assert.Equal(t, 2, d.Index().Len())
}

func TestMoveEndSplitsOnlyWhenMoved(t *testing.T) {
	d := New()
	mustWire(t, d, 0, 0, 100, 0)
	g := mustPart(t, d, KindGround, 40, -16, geom.North)

	g.MoveBegin()
	g.MoveEnd()
	assert.Len(t, wireEnds(d), 1)

	g.MoveBegin()
	g.Move(0, 16)
	g.MoveEnd()
	assert.Len(t, wireEnds(d), 2)
}

func TestMoveAbortRestores(t *testing.T) {
	d := New()
	mustWire(t, d, 0, 0, 100, 0)
	g := mustPart(t, d, KindGround, 40, -16, geom.North)

	g.MoveBegin()
	g.Move(0, 16)
	g.MoveAbort()
	assert.Equal(t, geom.Pt(40, -16), g.Position())
	assert.Equal(t, 1, d.Index().Count(geom.Pt(40, -16)))
	assert.Zero(t, d.Index().Count(geom.Pt(40, 0)))
	assert.Len(t, wireEnds(d), 1)
}

func TestRotateEightIsIdentity(t *testing.T) {
	for _, kind := range Parts() {
		for rot := geom.Rotation(0); rot < geom.NumRotations; rot++ {
			d := New()
			c := mustPart(t, d, kind, 16, 24, rot)
			locs, bbox := locations(c), c.BBox()

			c.Rotate(8)
			assert.Equal(t, locs, locations(c), "%s rot %d", kind, rot)
			assert.Equal(t, bbox, c.BBox())

			for i := 0; i < 8; i++ {
				c.Rotate(1)
			}
			assert.Equal(t, rot, c.Rotation())
			assert.Equal(t, locs, locations(c))
			assert.Equal(t, bbox, c.BBox())
			assert.Equal(t, len(locs), d.Index().Len())
		}
	}
}

func TestRotateRelocatesPins(t *testing.T) {
	d := New()
	r := mustPart(t, d, KindResistor, 0, 0, geom.North)
	r.Rotate(1)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(-48, 0)}, locations(r))
	assert.Equal(t, geom.R(-48, -4, 0, 4), r.BBox())
	assert.Equal(t, 1, d.Index().Count(geom.Pt(-48, 0)))
	assert.Zero(t, d.Index().Count(geom.Pt(0, 48)))
}

func TestWireDoesNotRotate(t *testing.T) {
	w, err := NewWire(geom.Pt(0, 0), geom.Pt(32, 0))
	require.NoError(t, err)
	w.Rotate(1)
	assert.Equal(t, geom.North, w.Rotation())
	assert.Equal(t, geom.Pt(32, 0), w.End())
}

func TestHitAndSelectRect(t *testing.T) {
	d := New()
	w := mustWire(t, d, 0, 0, 100, 0)
	r := mustPart(t, d, KindResistor, 200, 0, geom.North)

	assert.True(t, w.Hit(50, 1.5, false))
	assert.True(t, w.Selected())
	assert.False(t, w.Hit(50, 3, false))
	assert.True(t, w.Hit(50, 0, true), "shift toggles")
	assert.False(t, w.Selected())
	assert.True(t, w.WasSelected())

	assert.True(t, r.Hit(203, 40, false))
	assert.False(t, r.Hit(210, 40, false))

	d.UnselectAll(nil)
	w.SelectRect(geom.R(40, -10, 60, 10))
	assert.False(t, w.Selected(), "rectangle must hold a wire end")
	w.SelectRect(geom.R(90, -10, 110, 10))
	assert.True(t, w.Selected())

	r.SelectRect(geom.R(204, 40, 190, 30))
	assert.True(t, r.Selected())
	assert.Equal(t, []Component{w, r}, d.Selected())

	d.UnselectAll(r)
	assert.Equal(t, []Component{r}, d.Selected())
}

func TestCloneClearsName(t *testing.T) {
	r, err := NewDevice(KindResistor, 0, 0, geom.East)
	require.NoError(t, err)
	r.SetProperty("name", "R1")
	r.SetProperty("r", "330")

	c := r.Clone(64, 64)
	assert.Equal(t, KindResistor, c.Kind())
	assert.Equal(t, geom.East, c.Rotation())
	assert.Equal(t, geom.Pt(64, 64), c.Position())
	assert.Equal(t, map[string]string{"name": "", "r": "330"}, c.Properties())
	assert.Nil(t, c.Diagram())

	w, err := NewWire(geom.Pt(0, 0), geom.Pt(8, 16))
	require.NoError(t, err)
	cw := w.Clone(8, 8).(*Wire)
	assert.Equal(t, geom.Pt(16, 24), cw.End())
}

func TestAddMovesBetweenDiagrams(t *testing.T) {
	a, b := New(), New()
	g := mustPart(t, a, KindGround, 0, 0, geom.North)
	b.Add(g)
	assert.Zero(t, a.Len())
	assert.Zero(t, a.Index().Len())
	assert.Equal(t, 1, b.Index().Len())
	assert.Same(t, b, g.Diagram())
}

func TestBoundsAndCounts(t *testing.T) {
	d := New()
	_, ok := d.Bounds()
	assert.False(t, ok)

	mustPart(t, d, KindGround, 0, 0, geom.North)
	mustPart(t, d, KindResistor, 40, 0, geom.North)
	mustWire(t, d, 0, 0, 40, 0)
	r, ok := d.Bounds()
	assert.True(t, ok)
	assert.Equal(t, geom.R(-6, -2, 44, 48), r)
	assert.Equal(t, map[Kind]int{KindGround: 1, KindResistor: 1, KindWire: 1}, d.Counts())
	assert.Equal(t, KindResistor, d.ComponentAt(41, 30).Kind())
	assert.Nil(t, d.ComponentAt(500, 500))
}

func TestLoggerHook(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	d := New()
	mustWire(t, d, 0, 0, 100, 0)
	d.Place(NewGround(50, 0, geom.North))
	assert.Contains(t, buf.String(), "split wire")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
