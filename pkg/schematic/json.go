package schematic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// viewTag marks the view entry of the JSON format.
const viewTag = "view"

// MarshalJSON encodes the diagram as a JSON array: one entry per component
// in diagram order, then the view entry.
//
//	["w", [x1, y1, x2, y2]]
//	[tag, [x, y, rotation], {prop: value}, [label_or_null, ...]]
//	["view", origin_x, origin_y, scale]
func (d *Diagram) MarshalJSON() ([]byte, error) {
	entries := make([]any, 0, len(d.components)+1)
	for _, c := range d.components {
		entries = append(entries, encodeComponent(c))
	}
	entries = append(entries, []any{viewTag, d.View.OriginX, d.View.OriginY, d.View.Scale})
	return json.Marshal(entries)
}

func encodeComponent(c Component) []any {
	if w, ok := c.(*Wire); ok {
		s, e := w.Start(), w.End()
		return []any{KindWire.Tag(), []int{s.X, s.Y, e.X, e.Y}}
	}
	p := c.Position()
	labels := make([]*string, len(c.Connections()))
	for i, cp := range c.Connections() {
		if cp.label != "" {
			l := cp.label
			labels[i] = &l
		}
	}
	return []any{c.Kind().Tag(), []int{p.X, p.Y, int(c.Rotation())}, c.Properties(), labels}
}

// Save writes the diagram as indented JSON.
func (d *Diagram) Save(w io.Writer) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode schematic: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("encode schematic: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// UnmarshalJSON replaces the contents of d with the decoded diagram. On any
// error d is left unchanged. Labels in the input are not trusted; they are
// regenerated by the next labeling pass.
func (d *Diagram) UnmarshalJSON(data []byte) error {
	n, err := Parse(data)
	if err != nil {
		return err
	}
	if d.index == nil {
		d.index = NewIndex()
	}
	d.Clear()
	for _, c := range n.components {
		c.base().detach()
		d.Add(c)
	}
	d.View = n.View
	if d.Grid == 0 {
		d.Grid = DefaultGrid
	}
	return nil
}

// Load reads and decodes a diagram.
func Load(r io.Reader) (*Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schematic: %w", err)
	}
	return Parse(data)
}

// Parse decodes a diagram from its JSON form. Components are added without
// splitting wires so that a saved diagram loads back exactly as it was.
func Parse(data []byte) (*Diagram, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Index: -1, Reason: err.Error(), Err: ErrMalformed}
	}

	d := New()
	sawView := false
	for i, raw := range entries {
		var fields []json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
			return nil, malformed(i, "entry is not a non-empty array")
		}
		var tag string
		if err := json.Unmarshal(fields[0], &tag); err != nil {
			return nil, malformed(i, "type tag is not a string")
		}

		if tag == viewTag {
			if sawView {
				return nil, malformed(i, "duplicate view entry")
			}
			sawView = true
			v, err := decodeView(i, fields)
			if err != nil {
				return nil, err
			}
			d.View = v
			continue
		}

		kind, err := ParseKind(tag)
		if err != nil || kind.Tag() != tag {
			return nil, &LoadError{Index: i, Reason: fmt.Sprintf("unknown type tag %q", tag), Err: ErrUnknownKind}
		}
		c, err := decodeComponent(i, kind, fields)
		if err != nil {
			return nil, err
		}
		d.Add(c)
	}

	Logger().Debug("loaded schematic", "entries", len(entries), "components", len(d.components))
	return d, nil
}

func decodeView(i int, fields []json.RawMessage) (View, error) {
	if len(fields) != 4 {
		return View{}, malformed(i, "view entry has %d fields, want 4", len(fields))
	}
	var vals [3]float64
	for j := range vals {
		if err := json.Unmarshal(fields[j+1], &vals[j]); err != nil {
			return View{}, malformed(i, "view field %d is not a number", j+1)
		}
	}
	if vals[2] <= 0 {
		return View{}, malformed(i, "view scale %v is not positive", vals[2])
	}
	return View{OriginX: vals[0], OriginY: vals[1], Scale: vals[2]}, nil
}

func decodeComponent(i int, kind Kind, fields []json.RawMessage) (Component, error) {
	if kind == KindWire {
		if len(fields) != 2 {
			return nil, malformed(i, "wire entry has %d fields, want 2", len(fields))
		}
		coords, err := decodeInts(i, fields[1], 4)
		if err != nil {
			return nil, err
		}
		w, err := NewWire(geom.Pt(coords[0], coords[1]), geom.Pt(coords[2], coords[3]))
		if err != nil {
			return nil, &LoadError{Index: i, Reason: err.Error(), Err: ErrMalformed}
		}
		return w, nil
	}

	if len(fields) != 4 {
		return nil, malformed(i, "%s entry has %d fields, want 4", kind, len(fields))
	}
	coords, err := decodeInts(i, fields[1], 3)
	if err != nil {
		return nil, err
	}
	rot := geom.Rotation(coords[2])
	if !rot.Valid() {
		return nil, malformed(i, "rotation %d outside 0..7", coords[2])
	}
	c, err := NewPart(kind, coords[0], coords[1], rot)
	if err != nil {
		return nil, &LoadError{Index: i, Reason: err.Error(), Err: ErrUnknownKind}
	}

	var props map[string]string
	if err := json.Unmarshal(fields[2], &props); err != nil {
		return nil, malformed(i, "properties must map strings to strings")
	}
	// stored properties replace the defaults wholesale
	c.base().resetProps()
	for _, k := range slices.Sorted(maps.Keys(props)) {
		c.SetProperty(k, props[k])
	}

	var labels []*string
	if err := json.Unmarshal(fields[3], &labels); err != nil {
		return nil, malformed(i, "connections must be strings or null")
	}
	if len(labels) != len(c.Connections()) {
		return nil, malformed(i, "%d connections, %s has %d", len(labels), kind, len(c.Connections()))
	}
	return c, nil
}

// decodeInts decodes an array of exactly n integral numbers.
func decodeInts(i int, raw json.RawMessage, n int) ([]int, error) {
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, malformed(i, "coordinates are not an array of numbers")
	}
	if len(vals) != n {
		return nil, malformed(i, "%d coordinates, want %d", len(vals), n)
	}
	out := make([]int, n)
	for j, v := range vals {
		if v != math.Trunc(v) || math.Abs(v) > 1<<31 {
			return nil, malformed(i, "coordinate %v is not an integer", v)
		}
		out[j] = int(v)
	}
	return out, nil
}
