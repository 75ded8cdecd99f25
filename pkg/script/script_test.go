package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

func parse(t *testing.T, src string) *Script {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	s, err := p.ParseString("test.ots", src)
	require.NoError(t, err)
	return s
}

func run(t *testing.T, src string) *schematic.Diagram {
	t.Helper()
	d := schematic.New()
	require.NoError(t, parse(t, src).Run(editor.New(d)))
	return d
}

func TestParseCommands(t *testing.T) {
	s := parse(t, `
# a comment line
VIEW -10 20.5 3
place resistor 40 0 rot 1 r=330 name="R 1"
wire 0 0 to 40 0   # trailing comment
press 8 8 shift
move 16 16
release 16 16
click 1 2
drag 0 0 to 8 8
select -8 -8 64 64 Shift
rotate
delete
cut
copy
paste 100 100
abort
label
set r=1k tolerance=5%`)

	var names []string
	for _, c := range s.Commands {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"view", "place", "wire", "press", "move", "release", "click", "drag",
		"select", "rotate", "delete", "cut", "copy", "paste", "abort", "label", "set",
	}, names)

	assert.Equal(t, &View{X: -10, Y: 20.5, Scale: 3}, s.Commands[0].View)
	assert.Equal(t, &Place{Kind: "resistor", X: 40, Y: 0, Rot: 1, Props: []string{"r=330", `name="R 1"`}}, s.Commands[1].Place)
	assert.Equal(t, &Segment{X1: 0, Y1: 0, X2: 40, Y2: 0}, s.Commands[2].Wire)
	assert.True(t, s.Commands[3].Press.Shift)
	assert.False(t, s.Commands[5].Release.Shift)
	assert.True(t, s.Commands[8].Select.Shift)
	assert.Equal(t, []string{"r=1k", "tolerance=5%"}, s.Commands[16].Set.Props)
	assert.Equal(t, 4, s.Commands[1].Pos.Line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown command", "rotate\nfrobnicate 1 2\n"},
		{"missing coordinate", "press 1\n"},
		{"two commands on a line", "rotate delete\n"},
		{"fractional rotation", "place r 0 0 rot 1.5\n"},
		{"missing to", "wire 0 0 8 8\n"},
	}
	p, err := NewParser()
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseString("bad.ots", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse error")
		})
	}
}

func TestRunBuildsCircuit(t *testing.T) {
	d := run(t, `
view 0 0 2
place v 0 0 value=5
place g 0 48
place r 64 0 r=1k name=R1
wire 0 0 to 64 0
wire 64 48 to 0 48
label
`)
	require.Equal(t, 5, d.Len())
	assert.Equal(t, map[schematic.Kind]int{
		schematic.KindVoltageSource: 1,
		schematic.KindGround:        1,
		schematic.KindResistor:      1,
		schematic.KindWire:          2,
	}, d.Counts())

	r := d.Components()[2]
	assert.Equal(t, "1k", r.Property("r"))
	assert.Equal(t, "R1", r.Property("name"))
	assert.Equal(t, schematic.GroundLabel, r.Connections()[1].Label())
	assert.Equal(t, d.Components()[0].Connections()[0].Label(), r.Connections()[0].Label())
}

func TestRunGestures(t *testing.T) {
	d := run(t, `
place resistor 0 0 rot 1
wire -96 -32 to -96 32
drag -24 1 to -24 -8   # body of the resistor, pin lands nowhere
click 200 200          # empty space deselects
select -50 -10 10 10
set name="R 9"
rotate
`)
	r := d.Components()[0]
	assert.Equal(t, geom.Pt(0, -8), r.Position())
	assert.True(t, r.Selected())
	assert.Equal(t, "R 9", r.Property("name"))
	assert.Equal(t, geom.South, r.Rotation())
	assert.Len(t, d.Selected(), 1)
}

func TestRunCopyPaste(t *testing.T) {
	d := run(t, `
place c 0 0 c=10n name=C1
copy
paste 64 0
paste 128 0
`)
	require.Equal(t, 3, d.Len())
	for i, x := range []int{0, 64, 128} {
		assert.Equal(t, geom.Pt(x, 0), d.Components()[i].Position())
		assert.Equal(t, "10n", d.Components()[i].Property("c"))
	}
	assert.Empty(t, d.Components()[2].Property("name"))
}

func TestRunSplitsWire(t *testing.T) {
	d := run(t, `
wire 0 0 to 96 0
place ground 40 0
`)
	var n int
	for _, c := range d.Components() {
		if c.Kind() == schematic.KindWire {
			n++
		}
	}
	assert.Equal(t, 2, n)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		cmd  string
		line int
	}{
		{"unknown kind", "place transistor 0 0", "place", 1},
		{"wire kind", "\nplace w 0 0", "place", 2},
		{"bad rotation", "place r 0 0 rot 9", "place", 1},
		{"degenerate wire", "wire 0 0 to 2 2", "wire", 1},
		{"bad scale", "view 0 0 0", "view", 1},
		{"bad quote", `set name="a\q"`, "set", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parse(t, tt.src)
			err := s.Run(editor.New(schematic.New()))
			require.Error(t, err)
			var ee *ExecError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, tt.cmd, ee.Cmd)
			assert.Equal(t, tt.line, ee.Pos.Line)
			assert.True(t, strings.HasPrefix(err.Error(), "test.ots:"), err.Error())
		})
	}

	err := parse(t, "place w 0 0").Run(editor.New(schematic.New()))
	assert.ErrorIs(t, err, schematic.ErrUnknownKind)
	err = parse(t, "wire 0 0 to 0 0").Run(editor.New(schematic.New()))
	assert.ErrorIs(t, err, schematic.ErrDegenerateWire)
	err = parse(t, "place r 0 0 rot 8").Run(editor.New(schematic.New()))
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.ots")
	require.NoError(t, os.WriteFile(path, []byte("place g 0 0\nlabel"), 0o644))

	p, err := NewParser()
	require.NoError(t, err)
	s, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Commands, 2)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "missing.ots"))
	assert.Error(t, err)
}
