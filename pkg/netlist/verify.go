package netlist

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// MismatchError reports connection points whose labels disagree with the
// connectivity of the diagram.
type MismatchError struct {
	Reason string
	Points []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("label mismatch: %s: %s", e.Reason, strings.Join(e.Points, ", "))
}

// Verify checks the current labels of d against connectivity computed
// independently of the labeler: a graph with one node per connection point
// and edges between coincident points and between the two ends of every
// wire. Each connected component must carry exactly one label, distinct
// components distinct labels, and the label "0" must mark exactly the
// components holding a ground pin. Separate grounded components may all
// share "0".
func Verify(d *schematic.Diagram) error {
	g := simple.NewUndirectedGraph()
	var points []*schematic.ConnectionPoint
	ids := make(map[*schematic.ConnectionPoint]int64)
	for _, c := range d.Components() {
		for _, cp := range c.Connections() {
			id := int64(len(points))
			ids[cp] = id
			points = append(points, cp)
			g.AddNode(simple.Node(id))
		}
	}
	connect := func(a, b *schematic.ConnectionPoint) {
		if a != b {
			g.SetEdge(g.NewEdge(simple.Node(ids[a]), simple.Node(ids[b])))
		}
	}
	for _, loc := range d.Index().Locations() {
		at := d.Index().At(loc)
		for i := 1; i < len(at); i++ {
			connect(at[0], at[i])
		}
	}
	for _, c := range d.Components() {
		if w, ok := c.(*schematic.Wire); ok {
			connect(w.Connections()[0], w.Connections()[1])
		}
	}

	owner := make(map[string]int)
	for i, set := range topo.ConnectedComponents(g) {
		label := ""
		grounded := false
		for j, n := range set {
			cp := points[n.ID()]
			if cp.Label() == "" {
				return &MismatchError{Reason: "unlabeled point", Points: []string{cp.String()}}
			}
			if j == 0 {
				label = cp.Label()
			} else if cp.Label() != label {
				return &MismatchError{
					Reason: "joined points carry different labels",
					Points: []string{points[set[0].ID()].String(), cp.String()},
				}
			}
			if cp.Parent().Kind() == schematic.KindGround {
				grounded = true
			}
		}
		if grounded != (label == schematic.GroundLabel) {
			return &MismatchError{
				Reason: fmt.Sprintf("ground node labeled %q", label),
				Points: []string{points[set[0].ID()].String()},
			}
		}
		// every ground is the same node, however many symbols mark it
		if prev, ok := owner[label]; ok && prev != i && label != schematic.GroundLabel {
			return &MismatchError{
				Reason: fmt.Sprintf("label %q shared by separate nodes", label),
				Points: []string{points[set[0].ID()].String()},
			}
		}
		owner[label] = i
	}
	return nil
}
