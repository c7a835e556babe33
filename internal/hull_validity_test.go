package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. The rules are:
// 1. Every hull point is one of the input points (by identity), and appears once.
// 2. The hull is counterclockwise and convex.
// 3. Every input point is inside the hull or on its boundary.
// 4. Every hull point is a strict corner, so none could be removed.

func AssertValidHull(t *testing.T, points []*Point, hull []*Point) {
	t.Helper()
	inputSet := NewPointSet(points)
	hullSet := make(PointSet)
	for _, p := range hull {
		require.True(t, inputSet.Contains(p), "hull point %v is not an input point", p)
		require.False(t, hullSet.Contains(p), "hull point %v appears twice", p)
		hullSet.Add(p)
	}

	if len(points) < 3 {
		require.Len(t, hull, len(points))
		return
	}

	poly := Polygon{hull}
	if len(hull) >= 3 {
		require.True(t, poly.IsConvex(), "hull is not convex: %s", spew.Sdump(hull))
		require.Greater(t, SignedArea(&poly), 0.0, "hull is not counterclockwise: %v", hull)
	}

	for _, p := range points {
		assert.True(t, poly.ContainsPoint(p), "point %v is outside the hull %v", p, hull)
	}

	// For a convex polygon, a vertex can only be dropped without losing
	// containment if it is not a strict left turn.
	if len(hull) >= 3 {
		for i, v := range hull {
			prev := hull[CircularIndex(i-1, len(hull))]
			next := hull[CircularIndex(i+1, len(hull))]
			assert.Greater(t, Orientation(prev, v, next), 0.0, "hull vertex %v is not a corner", v)
		}
	}
}

// Compare point sequences by identity. cmp would otherwise compare the pointed
// to coordinates.
var identity = cmp.Comparer(func(a, b *Point) bool { return a == b })

func assertSamePoints(t *testing.T, want, got []*Point) {
	t.Helper()
	if d := cmp.Diff(want, got, identity); d != "" {
		t.Errorf("point sequences differ (-want +got):\n%s\nwant: %v\ngot:  %v", d, want, got)
	}
}
