package schematic

import (
	"fmt"
	"strings"
)

// Kind identifies a component variant.
type Kind int

const (
	KindWire Kind = iota
	KindGround
	KindResistor
	KindCapacitor
	KindInductor
	KindVoltageSource
	KindCurrentSource
)

var kindInfo = []struct {
	tag  string
	name string
	desc string
}{
	KindWire:          {"w", "wire", "Wire"},
	KindGround:        {"g", "ground", "Ground connection"},
	KindResistor:      {"r", "resistor", "Resistor"},
	KindCapacitor:     {"c", "capacitor", "Capacitor"},
	KindInductor:      {"l", "inductor", "Inductor"},
	KindVoltageSource: {"v", "voltage-source", "Voltage source"},
	KindCurrentSource: {"i", "current-source", "Current source"},
}

// Tag is the short type tag used in the JSON format.
func (k Kind) Tag() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return "?"
	}
	return kindInfo[k].tag
}

// String returns the long kind name, e.g. "resistor".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// Description is the human-readable part name shown in the parts bin.
func (k Kind) Description() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return ""
	}
	return kindInfo[k].desc
}

// ParseKind accepts either a JSON tag ("r") or a long name ("resistor").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, info := range kindInfo {
		if s == info.tag || s == info.name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Parts lists the placeable kinds in parts-bin order.
func Parts() []Kind {
	return []Kind{KindGround, KindVoltageSource, KindCurrentSource, KindResistor, KindCapacitor, KindInductor}
}
