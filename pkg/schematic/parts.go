package schematic

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// Ground ties its single pin to node "0".
type Ground struct {
	Base
}

// NewGround returns a detached ground symbol.
func NewGround(x, y int, rot geom.Rotation) *Ground {
	g := &Ground{}
	g.init(g, KindGround, x, y, rot, geom.R(-6, 0, 6, 8))
	g.addConnection(0, 0)
	g.updateGeometry()
	return g
}

func (g *Ground) addDefaultLabels(l *labeler) {
	l.assign(g.conns[0], GroundLabel)
}

func (g *Ground) Clone(x, y int) Component {
	return NewGround(x, y, g.rot)
}

func (g *Ground) Draw(c Canvas) {
	g.line(c, 0, 0, 0, 8)
	g.line(c, -6, 8, 6, 8)
}

func (g *Ground) String() string {
	return fmt.Sprintf("<Ground (%s)>", g.pos)
}

// Device is a two-terminal part: resistor, capacitor, inductor or an
// independent source. Pins sit at local (0,0) and (0,48); besides its
// symbol a device only carries properties.
type Device struct {
	Base
}

// deviceSpec describes the per-kind details of a device.
type deviceSpec struct {
	bounds geom.Rect
	value  string // property holding the value
	def    string // default value
	unit   string // suffix shown after the value
}

var deviceSpecs = map[Kind]deviceSpec{
	KindResistor:      {geom.R(-4, 0, 4, 48), "r", "1", "Ω"},
	KindCapacitor:     {geom.R(-8, 0, 8, 48), "c", "1p", "F"},
	KindInductor:      {geom.R(-4, 0, 5, 48), "l", "1n", "H"},
	KindVoltageSource: {geom.R(-12, 0, 12, 48), "value", "1", "V"},
	KindCurrentSource: {geom.R(-12, 0, 12, 48), "value", "1", "A"},
}

// NewDevice returns a detached two-terminal part with default properties.
func NewDevice(kind Kind, x, y int, rot geom.Rotation) (*Device, error) {
	spec, ok := deviceSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a device", ErrUnknownKind, kind)
	}
	d := &Device{}
	d.init(d, kind, x, y, rot, spec.bounds)
	d.SetProperty("name", "")
	d.SetProperty(spec.value, spec.def)
	d.addConnection(0, 0)
	d.addConnection(0, 48)
	d.updateGeometry()
	return d, nil
}

// NewPart returns a detached part of any non-wire kind.
func NewPart(kind Kind, x, y int, rot geom.Rotation) (Component, error) {
	if kind == KindGround {
		return NewGround(x, y, rot), nil
	}
	return NewDevice(kind, x, y, rot)
}

// Value returns the value property (resistance, capacitance, ...).
func (d *Device) Value() string {
	return d.props[deviceSpecs[d.kind].value]
}

func (d *Device) Clone(x, y int) Component {
	n, _ := NewDevice(d.kind, x, y, d.rot)
	n.resetProps()
	d.copyProps(&n.Base)
	return n
}

func (d *Device) String() string {
	return fmt.Sprintf("<%s %s (%s)>", d.kind, d.Value(), d.pos)
}

func (d *Device) Draw(c Canvas) {
	spec := deviceSpecs[d.kind]
	// label offsets either side of the body
	right, left := 5.0, -5.0
	switch d.kind {
	case KindResistor:
		d.line(c, 0, 0, 0, 12)
		zig := [][2]float64{{0, 12}, {4, 14}, {-4, 18}, {4, 22}, {-4, 26}, {4, 30}, {-4, 34}, {0, 36}}
		for i := 1; i < len(zig); i++ {
			d.line(c, zig[i-1][0], zig[i-1][1], zig[i][0], zig[i][1])
		}
		d.line(c, 0, 36, 0, 48)
	case KindCapacitor:
		d.line(c, 0, 0, 0, 22)
		d.line(c, -8, 22, 8, 22)
		d.line(c, -8, 26, 8, 26)
		d.line(c, 0, 26, 0, 48)
		right, left = 9, -9
	case KindInductor:
		d.line(c, 0, 0, 0, 14)
		d.arc(c, 0, 18, 4, 6*math.Pi/4, 3*math.Pi/4)
		d.arc(c, 0, 24, 4, 5*math.Pi/4, 3*math.Pi/4)
		d.arc(c, 0, 30, 4, 5*math.Pi/4, 2*math.Pi/4)
		d.line(c, 0, 34, 0, 48)
		right, left = 6, -3
	case KindVoltageSource, KindCurrentSource:
		d.line(c, 0, 0, 0, 12)
		d.circle(c, 0, 24, 12, false)
		d.line(c, 0, 36, 0, 48)
		if d.kind == KindVoltageSource {
			d.line(c, 8, 5, 8, 11)
			d.line(c, 5, 8, 11, 8)
			d.line(c, 5, 40, 11, 40)
			d.line(c, -3, 20, 0, 28)
			d.line(c, 3, 20, 0, 28)
		} else {
			d.line(c, 0, 16, 0, 32)
			d.line(c, -3, 24, 0, 32)
			d.line(c, 3, 24, 0, 32)
		}
		right, left = 13, -13
	}
	if v := d.props[spec.value]; v != "" {
		d.text(c, v+spec.unit, right, 24, AlignLeft)
	}
	if name := d.props["name"]; name != "" {
		d.text(c, name, left, 24, AlignRight)
	}
}
