package gioui

import (
	"image"
	"math"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

func TestArcPoints(t *testing.T) {
	pts := arcPoints(10, 20, 4, 0, math.Pi/2)
	require.Len(t, pts, 9)
	assert.InDelta(t, 14, pts[0].X, 1e-4)
	assert.InDelta(t, 20, pts[0].Y, 1e-4)
	last := pts[len(pts)-1]
	assert.InDelta(t, 10, last.X, 1e-4)
	assert.InDelta(t, 24, last.Y, 1e-4, "sweeps clockwise on screen")

	// end before start wraps around
	pts = arcPoints(0, 0, 1, 3*math.Pi/2, math.Pi/2)
	assert.Len(t, pts, 17)
	assert.InDelta(t, 1, pts[8].X, 1e-4, "passes through angle zero")
	assert.InDelta(t, 0, pts[8].Y, 1e-4)
}

func TestDrawIntoOps(t *testing.T) {
	d := schematic.New()
	for _, k := range schematic.Parts() {
		c, err := schematic.NewPart(k, 16, 16, geom.East)
		require.NoError(t, err)
		c.SetProperty("name", k.Tag()+"1")
		d.Add(c)
	}
	_, err := d.AddWire(geom.Pt(0, 0), geom.Pt(64, 0))
	require.NoError(t, err)

	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(320, 240)),
	}
	s := NewSurface(gtx, nil)
	assert.NotPanics(t, func() {
		render.Draw(s, d, render.Options{Width: 320, Height: 240, Colors: render.GetColors(render.ThemeDark)})
	})
}
