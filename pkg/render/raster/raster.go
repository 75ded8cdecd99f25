// Package raster renders diagrams to images with gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Surface is a render.Surface backed by a gg context. Drawing methods do not
// return errors; the first failure is kept and reported by Err.
type Surface struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face
	err   error
}

var _ render.Surface = (*Surface)(nil)

// NewSurface creates a width x height surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}
	return &Surface{
		dc:    gg.NewContext(width, height),
		font:  font,
		faces: make(map[float64]text.Face),
	}, nil
}

// Err returns the first drawing error, if any.
func (s *Surface) Err() error { return s.err }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// SavePNG writes the image to path.
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.SavePNG(path)
}

// EncodePNG writes the image as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// Close releases the gg context.
func (s *Surface) Close() error { return s.dc.Close() }

func (s *Surface) Clear(c color.NRGBA) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	s.pen(width, c)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.check(s.dc.Stroke())
}

func (s *Surface) Circle(x, y, r, width float64, filled bool, c color.NRGBA) {
	s.pen(width, c)
	s.dc.DrawCircle(x, y, r)
	if filled {
		s.check(s.dc.Fill())
		return
	}
	s.check(s.dc.Stroke())
}

func (s *Surface) Arc(x, y, r, start, end, width float64, c color.NRGBA) {
	s.pen(width, c)
	s.dc.NewSubPath()
	s.dc.DrawArc(x, y, r, start, end)
	s.check(s.dc.Stroke())
}

func (s *Surface) Text(str string, x, y, size, ax, ay float64, c color.NRGBA) {
	if str == "" || size <= 0 {
		return
	}
	s.dc.SetFont(s.face(size))
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, ay)
}

func (s *Surface) pen(width float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
}

func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.font.Face(size)
		s.faces[size] = f
	}
	return f
}

func (s *Surface) check(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Render draws d at width x height pixels with the given colors, leaving
// the diagram's view untouched. When fit is set the view is fitted to the
// diagram bounds instead.
func Render(d *schematic.Diagram, width, height int, colors *render.Colors, fit bool) (*Surface, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	view := d.View
	if fit {
		if r, ok := d.Bounds(); ok {
			d.View.Fit(r, width, height)
		}
	}
	render.Draw(s, d, render.Options{Width: width, Height: height, Colors: colors})
	d.View = view
	if s.err != nil {
		return nil, fmt.Errorf("raster: %w", s.err)
	}
	return s, nil
}
