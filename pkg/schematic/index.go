package schematic

import (
	"cmp"
	"slices"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/geom"
)

// Index maps each occupied grid location to the connection points sitting
// there, in insertion order. Every registered point is filed under exactly
// one key, its current location, and no bucket is ever left empty.
type Index struct {
	buckets map[geom.Point][]*ConnectionPoint
	count   int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{buckets: make(map[geom.Point][]*ConnectionPoint)}
}

// Insert files cp under its current location. Inserting a point that is
// already present is a no-op.
func (x *Index) Insert(cp *ConnectionPoint) {
	b := x.buckets[cp.location]
	if slices.Contains(b, cp) {
		return
	}
	x.buckets[cp.location] = append(b, cp)
	x.count++
}

// Remove deletes cp from the bucket at prev, pruning the bucket when it
// becomes empty. It reports whether cp was found there.
func (x *Index) Remove(cp *ConnectionPoint, prev geom.Point) bool {
	b := x.buckets[prev]
	i := slices.Index(b, cp)
	if i < 0 {
		return false
	}
	b = slices.Delete(b, i, i+1)
	if len(b) == 0 {
		delete(x.buckets, prev)
	} else {
		x.buckets[prev] = b
	}
	x.count--
	return true
}

// Relocate moves cp from prev to its current location.
func (x *Index) Relocate(cp *ConnectionPoint, prev geom.Point) {
	x.Remove(cp, prev)
	x.Insert(cp)
}

// At returns a copy of the points coincident at loc.
func (x *Index) At(loc geom.Point) []*ConnectionPoint {
	return slices.Clone(x.buckets[loc])
}

// Count returns the number of points at loc.
func (x *Index) Count(loc geom.Point) int {
	return len(x.buckets[loc])
}

// Contains reports whether cp is filed under its current location.
func (x *Index) Contains(cp *ConnectionPoint) bool {
	return slices.Contains(x.buckets[cp.location], cp)
}

// Len returns the number of registered points.
func (x *Index) Len() int {
	return x.count
}

// Locations returns every occupied location sorted by row, then column.
func (x *Index) Locations() []geom.Point {
	locs := make([]geom.Point, 0, len(x.buckets))
	for p := range x.buckets {
		locs = append(locs, p)
	}
	slices.SortFunc(locs, func(a, b geom.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return locs
}

func (x *Index) at(loc geom.Point) []*ConnectionPoint {
	return x.buckets[loc]
}
