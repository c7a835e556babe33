package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{4, 0}

	t.Run("left is positive", func(t *testing.T) {
		assert.Equal(t, 12.0, Orientation(a, b, &Point{1, 3}))
		assert.True(t, IsLeftOf(a, b, &Point{1, 3}))
	})

	t.Run("right is negative", func(t *testing.T) {
		assert.Equal(t, -12.0, Orientation(a, b, &Point{1, -3}))
		assert.False(t, IsLeftOf(a, b, &Point{1, -3}))
	})

	t.Run("collinear is zero", func(t *testing.T) {
		assert.Zero(t, Orientation(a, b, &Point{7, 0}))
		assert.False(t, IsLeftOf(a, b, &Point{7, 0}))
	})

	t.Run("reversing the baseline flips the sign", func(t *testing.T) {
		c := &Point{2.5, -1.25}
		assert.Equal(t, -Orientation(a, b, c), Orientation(b, a, c))
	})

	t.Run("magnitude grows with distance", func(t *testing.T) {
		assert.Greater(t, Orientation(a, b, &Point{0, 2}), Orientation(a, b, &Point{100, 1}))
	})
}

func TestFindExtremes(t *testing.T) {
	first := &Point{-1, 5}
	second := &Point{-1, 7}
	right := &Point{3, 0}
	rightAgain := &Point{3, 2}
	points := []*Point{{0, 0}, first, right, second, rightAgain}

	// Ties go to the first occurrence
	assert.Same(t, first, FindExtremeMinX(points))
	assert.Same(t, right, FindExtremeMaxX(points))

	t.Run("vertical line", func(t *testing.T) {
		// No spread in X, so the ends are taken along Y, first occurrence first
		low, high := &Point{2, 0}, &Point{2, 5}
		points := []*Point{{2, 3}, low, high, {2, 0}, {2, 5}}
		assert.Same(t, low, FindExtremeMinX(points))
		assert.Same(t, high, FindExtremeMaxX(points))
	})

	t.Run("single point", func(t *testing.T) {
		only := &Point{1, 1}
		assert.Same(t, only, FindExtremeMinX([]*Point{only}))
		assert.Same(t, only, FindExtremeMaxX([]*Point{only}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Panics(t, func() { FindExtremeMinX(nil) })
		assert.Panics(t, func() { FindExtremeMaxX([]*Point{}) })
	})
}

func TestSortCounterClockwise(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{4, 0}
	c := &Point{4, 4}
	d := &Point{0, 4}

	points := []*Point{c, a, d, b}
	SortCounterClockwise(points)
	assertSamePoints(t, []*Point{a, b, c, d}, points)

	t.Run("fewer than three points are untouched", func(t *testing.T) {
		points := []*Point{c, a}
		SortCounterClockwise(points)
		assertSamePoints(t, []*Point{c, a}, points)
	})
}

func TestCentroid(t *testing.T) {
	c := Centroid([]*Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	assert.Equal(t, Point{2, 2}, c)
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointList(t *testing.T) {
	var list PointList
	p := &Point{1, 2}
	twin := &Point{1, 2}

	assert.True(t, list.Add(p))
	assert.False(t, list.Add(p))
	// Same coordinates, different point
	assert.True(t, list.Add(twin))
	assert.Equal(t, 2, list.Len())
	assertSamePoints(t, []*Point{p, twin}, list.Points())
}

func TestEdgeList(t *testing.T) {
	var list EdgeList
	a := &Point{0, 0}
	b := &Point{1, 0}
	bTwin := &Point{1, 0}

	assert.True(t, list.Add(Edge{a, b}))
	assert.False(t, list.Add(Edge{a, b}))
	assert.False(t, list.Add(Edge{b, a}), "edges are undirected")
	assert.True(t, list.Add(Edge{a, bTwin}), "edges compare by identity")
	assert.Len(t, list, 2)
}

func TestWorkQueue(t *testing.T) {
	var q WorkQueue
	assert.True(t, q.Empty())
	assert.Nil(t, q.Pop())

	first := &WorkItem{A: &Point{0, 0}, B: &Point{1, 0}}
	second := &WorkItem{A: &Point{1, 0}, B: &Point{0, 0}}
	q.Push(first)
	q.Push(second)
	assert.False(t, q.Empty())

	// First in, first out
	require.Same(t, first, q.Pop())
	require.Same(t, second, q.Pop())
	assert.True(t, q.Empty())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", (&Point{1.5, -2}).String())
	var p *Point
	assert.Equal(t, "Ø", p.String())
	assert.Equal(t, "(0, 1)", (&Point{0, 1}).String())
}
