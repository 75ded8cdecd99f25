package schematic

import "strconv"

// GroundLabel is the node label reserved for pins joined to a Ground.
const GroundLabel = "0"

// labeler hands out node labels for one labeling pass.
type labeler struct {
	index *Index
	next  int
	work  []*ConnectionPoint
}

func (l *labeler) fresh() string {
	l.next++
	return strconv.Itoa(l.next)
}

// assign labels cp, then every point coincident with it or linked to it by
// its component, transitively. Points that already carry a label stop the
// walk, so each point is visited at most once per pass.
func (l *labeler) assign(cp *ConnectionPoint, label string) {
	if cp.label != "" {
		return
	}
	cp.label = label
	l.work = append(l.work[:0], cp)
	for len(l.work) > 0 {
		p := l.work[len(l.work)-1]
		l.work = l.work[:len(l.work)-1]
		if l.index != nil {
			for _, q := range l.index.at(p.location) {
				l.visit(q, label)
			}
		}
		for _, q := range p.parent.linked(p) {
			l.visit(q, label)
		}
	}
}

func (l *labeler) visit(q *ConnectionPoint, label string) {
	if q.label == "" {
		q.label = label
		l.work = append(l.work, q)
	}
}

// LabelConnectionPoints recomputes every node label in the diagram and
// returns the number of distinct nodes.
//
// Labels are cleared first; grounds then claim "0" for their node, and
// every component in diagram order numbers its still-unlabeled pins from 1.
// Pins reachable only through wires, such as a dangling wire, are numbered
// last.
func (d *Diagram) LabelConnectionPoints() int {
	for _, c := range d.components {
		for _, cp := range c.Connections() {
			cp.ClearLabel()
		}
	}
	l := &labeler{index: d.index}
	for _, c := range d.components {
		c.addDefaultLabels(l)
	}
	for _, c := range d.components {
		c.labelConnections(l)
	}
	for _, c := range d.components {
		for _, cp := range c.Connections() {
			if cp.label == "" {
				l.assign(cp, l.fresh())
			}
		}
	}

	nodes := l.next
	if d.hasGround() {
		nodes++
	}
	Logger().Debug("labeled connection points",
		"components", len(d.components),
		"points", d.index.Len(),
		"nodes", nodes)
	return nodes
}

func (d *Diagram) hasGround() bool {
	for _, c := range d.components {
		if c.Kind() == KindGround {
			return true
		}
	}
	return false
}
