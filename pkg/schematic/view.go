package schematic

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// Scale limits for ZoomAt and Fit.
const (
	MinScale = 0.25
	MaxScale = 32
)

// View is the viewport onto a diagram: the schematic coordinate shown at
// the top-left pixel and the number of pixels per schematic unit.
type View struct {
	OriginX float64
	OriginY float64
	Scale   float64
}

// DefaultView shows the origin at the top-left corner at scale 2.
func DefaultView() View {
	return View{Scale: 2}
}

// ToScreen converts schematic coordinates to pixels
func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x - v.OriginX) * v.Scale, (y - v.OriginY) * v.Scale
}

// ToSchematic converts pixels to schematic coordinates
func (v View) ToSchematic(sx, sy float64) (float64, float64) {
	return sx/v.Scale + v.OriginX, sy/v.Scale + v.OriginY
}

// Pan moves the view by screen pixel offsets
func (v *View) Pan(dx, dy float64) {
	v.OriginX -= dx / v.Scale
	v.OriginY -= dy / v.Scale
}

// ZoomAt zooms in/out keeping the schematic point under (sx, sy) in place.
// factor > 1 zooms in, factor < 1 zooms out
func (v *View) ZoomAt(sx, sy, factor float64) {
	// Get schematic position before zoom
	x, y := v.ToSchematic(sx, sy)

	v.Scale = clampScale(v.Scale * factor)

	// Move origin so (x, y) stays under the cursor
	v.OriginX = x - sx/v.Scale
	v.OriginY = y - sy/v.Scale
}

// Fit centers r in a width x height pixel canvas, leaving a 10% margin.
func (v *View) Fit(r geom.Rect, width, height int) {
	r = r.Canon()
	w, h := float64(r.Width()), float64(r.Height())
	if w <= 0 || h <= 0 || width <= 0 || height <= 0 {
		return
	}

	// Use the smaller scale to ensure everything fits
	v.Scale = clampScale(min(float64(width)*0.9/w, float64(height)*0.9/h))

	cx := float64(r.Left+r.Right) / 2
	cy := float64(r.Top+r.Bottom) / 2
	v.OriginX = cx - float64(width)/2/v.Scale
	v.OriginY = cy - float64(height)/2/v.Scale
}

// Visible returns the schematic rectangle covered by a width x height
// canvas, rounded outwards to whole units.
func (v View) Visible(width, height int) geom.Rect {
	x0, y0 := v.ToSchematic(0, 0)
	x1, y1 := v.ToSchematic(float64(width), float64(height))
	return geom.R(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

func clampScale(s float64) float64 {
	return max(MinScale, min(MaxScale, s))
}
