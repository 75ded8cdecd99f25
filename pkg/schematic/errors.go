package schematic

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped) by the schematic core.
var (
	ErrMalformed      = errors.New("malformed schematic")
	ErrUnknownKind    = errors.New("unknown component kind")
	ErrDegenerateWire = errors.New("degenerate wire")
)

// LoadError describes why a serialized diagram was rejected. Index is the
// position of the offending entry in the top-level array, or -1 when the
// document itself could not be decoded.
type LoadError struct {
	Index  int
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("load schematic: %s", e.Reason)
	}
	return fmt.Sprintf("load schematic: entry %d: %s", e.Index, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func malformed(index int, format string, args ...any) *LoadError {
	return &LoadError{Index: index, Reason: fmt.Sprintf(format, args...), Err: ErrMalformed}
}
