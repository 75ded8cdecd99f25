package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectCanon(t *testing.T) {
	r := R(10, 20, -4, 0).Canon()
	assert.Equal(t, R(-4, 0, 10, 20), r)
	assert.Equal(t, 14, r.Width())
	assert.Equal(t, 20, r.Height())
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := R(0, 0, 10, 10)

	assert.True(t, r.Contains(Pt(0, 0)), "edges are inside")
	assert.True(t, r.Contains(Pt(10, 5)))
	assert.False(t, r.Contains(Pt(11, 5)))
	assert.True(t, r.ContainsF(9.5, 0.25))
	assert.False(t, r.ContainsF(-0.1, 3))

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", R(5, 5, 15, 15), true},
		{"touching edge", R(10, 0, 20, 10), true},
		{"disjoint right", R(11, 0, 20, 10), false},
		{"disjoint above", R(0, -10, 10, -1), false},
		{"enclosing", R(-5, -5, 50, 50), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.o))
			assert.Equal(t, tt.want, tt.o.Intersects(r))
		})
	}
}

func TestRectExpandUnion(t *testing.T) {
	assert.Equal(t, R(-2, -2, 12, 2), R(0, 0, 10, 0).Expand(2))
	assert.Equal(t, R(-1, 0, 10, 30), R(0, 0, 10, 10).Union(R(-1, 5, 3, 30)))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 8, Snap(5, 8))
	assert.Equal(t, 0, Snap(3.9, 8))
	assert.Equal(t, -8, Snap(-6, 8))
	assert.Equal(t, 7, Snap(6.6, 0))
	assert.Equal(t, Pt(16, 40), SnapPoint(13, 41, 8))
}

func TestRotationTable(t *testing.T) {
	p := Pt(3, 7)
	want := []Point{
		{3, 7},   // north
		{-7, 3},  // east
		{-3, -7}, // south
		{7, -3},  // west
		{-3, 7},  // mirrored north
		{-7, -3},
		{3, -7},
		{7, 3},
	}
	for r := Rotation(0); r < NumRotations; r++ {
		assert.Equal(t, want[r], r.Apply(p), "rotation %d", r)
		fx, fy := r.ApplyF(3, 7)
		assert.Equal(t, float64(want[r].X), fx, "rotation %d", r)
		assert.Equal(t, float64(want[r].Y), fy, "rotation %d", r)
	}
}

func TestRotationAddWraps(t *testing.T) {
	assert.Equal(t, Rotation(1), Rotation(7).Add(2))
	assert.Equal(t, Rotation(7), Rotation(0).Add(-1))
	for r := Rotation(0); r < NumRotations; r++ {
		assert.Equal(t, r, r.Add(NumRotations))
		assert.True(t, r.Valid())
	}
	assert.False(t, Rotation(8).Valid())
	assert.False(t, Rotation(-1).Valid())
}

func TestQuarterTurnsCycle(t *testing.T) {
	// four quarter turns of the unmirrored orientations return to the start
	p := Pt(5, -2)
	q := p
	for i := 0; i < 4; i++ {
		q = East.Apply(q)
	}
	assert.Equal(t, p, q)
}
