// Package netlist extracts electrical nets from a labeled schematic and
// exports them in JSON and KiCad netlist form.
package netlist

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// PinRef identifies one pin of a part.
type PinRef struct {
	Ref string `json:"ref"`
	Pin int    `json:"pin"` // 1-based, in connection order
}

// Part is a non-wire, non-ground component of the schematic.
type Part struct {
	Ref   string   `json:"ref"`
	Kind  string   `json:"kind"`
	Value string   `json:"value,omitempty"`
	Nodes []string `json:"nodes"`
}

// Net is a set of part pins sharing one node label.
type Net struct {
	Name string   `json:"name"`
	Pins []PinRef `json:"pins"`
}

// Netlist is the connectivity of a schematic after labeling.
type Netlist struct {
	Parts []*Part
	Nets  []*Net
}

// refPrefix is the designator prefix used for unnamed parts.
var refPrefix = map[schematic.Kind]string{
	schematic.KindResistor:      "R",
	schematic.KindCapacitor:     "C",
	schematic.KindInductor:      "L",
	schematic.KindVoltageSource: "V",
	schematic.KindCurrentSource: "I",
}

// Build labels d and collects its parts and nets. Parts keep their name
// property as reference; unnamed parts get the next free designator for
// their kind. Nets are ordered ground first, then by label.
func Build(d *schematic.Diagram) *Netlist {
	d.LabelConnectionPoints()

	used := make(map[string]bool)
	for _, c := range d.Components() {
		if name := c.Property("name"); name != "" {
			used[name] = true
		}
	}
	next := make(map[string]int)
	nextRef := func(prefix string) string {
		for {
			next[prefix]++
			ref := prefix + strconv.Itoa(next[prefix])
			if !used[ref] {
				used[ref] = true
				return ref
			}
		}
	}

	nl := &Netlist{}
	byName := make(map[string]*Net)
	for _, c := range d.Components() {
		prefix, ok := refPrefix[c.Kind()]
		if !ok {
			continue
		}
		ref := c.Property("name")
		if ref == "" {
			ref = nextRef(prefix)
		}
		p := &Part{Ref: ref, Kind: c.Kind().String()}
		if dev, ok := c.(*schematic.Device); ok {
			p.Value = dev.Value()
		}
		for i, cp := range c.Connections() {
			label := cp.Label()
			p.Nodes = append(p.Nodes, label)
			n := byName[label]
			if n == nil {
				n = &Net{Name: label}
				byName[label] = n
				nl.Nets = append(nl.Nets, n)
			}
			n.Pins = append(n.Pins, PinRef{Ref: ref, Pin: i + 1})
		}
		nl.Parts = append(nl.Parts, p)
	}

	slices.SortFunc(nl.Nets, func(a, b *Net) int {
		return compareLabels(a.Name, b.Name)
	})
	return nl
}

// compareLabels orders numeric labels numerically, "0" first.
func compareLabels(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(ai, bi)
	}
	return strings.Compare(a, b)
}

// NetCount returns the number of nets.
func (nl *Netlist) NetCount() int {
	return len(nl.Nets)
}

// MultiPinNetCount returns the number of nets with more than one pin.
func (nl *Netlist) MultiPinNetCount() int {
	count := 0
	for _, net := range nl.Nets {
		if len(net.Pins) > 1 {
			count++
		}
	}
	return count
}

// ExportJSON exports the netlist to JSON format.
func (nl *Netlist) ExportJSON() ([]byte, error) {
	output := struct {
		Version     string  `json:"version"`
		NetCount    int     `json:"net_count"`
		MultiNets   int     `json:"multi_pin_nets"`
		Parts       []*Part `json:"parts"`
		Nets        []*Net  `json:"nets"`
		GeneratedBy string  `json:"generated_by"`
	}{
		Version:     "1.0",
		NetCount:    nl.NetCount(),
		MultiNets:   nl.MultiPinNetCount(),
		Parts:       nl.Parts,
		Nets:        nl.Nets,
		GeneratedBy: "ots schematic netlister",
	}
	if output.Parts == nil {
		output.Parts = []*Part{}
	}
	if output.Nets == nil {
		output.Nets = []*Net{}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}
	return data, nil
}

// ExportKiCad exports the netlist to KiCad netlist format.
// This is a simplified format for basic connectivity.
func (nl *Netlist) ExportKiCad() string {
	var b strings.Builder
	b.WriteString("(export (version D)\n")
	b.WriteString("  (design\n")
	b.WriteString("    (source \"OpenTraceSchematic\")\n")
	b.WriteString("    (tool \"ots\")\n")
	b.WriteString("  )\n")

	b.WriteString("  (components\n")
	for _, p := range nl.Parts {
		fmt.Fprintf(&b, "    (comp (ref %s) (value %s))\n", quote(p.Ref), quote(p.Value))
	}
	b.WriteString("  )\n")

	b.WriteString("  (nets\n")
	for i, net := range nl.Nets {
		fmt.Fprintf(&b, "    (net (code %d) (name %s)\n", i+1, quote(net.Name))
		for _, pin := range net.Pins {
			fmt.Fprintf(&b, "      (node (ref %s) (pin %d))\n", quote(pin.Ref), pin.Pin)
		}
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
	b.WriteString(")\n")
	return b.String()
}

func quote(s string) string {
	return strconv.Quote(s)
}
