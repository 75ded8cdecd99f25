package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

func TestViewRoundTrip(t *testing.T) {
	v := View{OriginX: -10, OriginY: 20, Scale: 4}
	sx, sy := v.ToScreen(0, 25)
	assert.Equal(t, 40.0, sx)
	assert.Equal(t, 20.0, sy)
	x, y := v.ToSchematic(sx, sy)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 25.0, y)
}

func TestViewPan(t *testing.T) {
	v := DefaultView()
	v.Pan(20, -10)
	assert.Equal(t, View{OriginX: -10, OriginY: 5, Scale: 2}, v)
}

func TestViewZoomAtKeepsCursorPoint(t *testing.T) {
	v := View{OriginX: 3, OriginY: -7, Scale: 2}
	x0, y0 := v.ToSchematic(120, 80)
	v.ZoomAt(120, 80, 2)
	assert.Equal(t, 4.0, v.Scale)
	x1, y1 := v.ToSchematic(120, 80)
	assert.InDelta(t, x0, x1, 1e-9)
	assert.InDelta(t, y0, y1, 1e-9)

	v.ZoomAt(0, 0, 1e6)
	assert.Equal(t, float64(MaxScale), v.Scale)
	v.ZoomAt(0, 0, 1e-9)
	assert.Equal(t, MinScale, v.Scale)
}

func TestViewFit(t *testing.T) {
	v := DefaultView()
	v.Fit(geom.R(0, 0, 100, 50), 200, 200)
	assert.InDelta(t, 1.8, v.Scale, 1e-9)
	// content centre lands on canvas centre
	sx, sy := v.ToScreen(50, 25)
	assert.InDelta(t, 100, sx, 1e-9)
	assert.InDelta(t, 100, sy, 1e-9)

	before := v
	v.Fit(geom.R(0, 0, 0, 50), 200, 200)
	assert.Equal(t, before, v, "empty extent leaves the view alone")
}

func TestViewVisible(t *testing.T) {
	v := View{OriginX: -0.5, OriginY: 2, Scale: 2}
	assert.Equal(t, geom.R(-1, 2, 50, 27), v.Visible(100, 50))
}
