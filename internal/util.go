package internal

import (
	"fmt"
	"math"
	"sort"
)

const Epsilon = 1e-9

// Signed twice-area of the triangle (a, b, c). It is positive when c lies
// strictly to the left of the directed line a→b, zero when the three points are
// collinear, and negative when c is to the right.
//
// With a and b fixed, the magnitude is proportional to the distance from c to
// the line through a and b, so it is also used to compare distances without a
// square root.
func Orientation(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (p *Point) String() string {
	if p == nil {
		return "Ø"
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Is c strictly left of the directed line a→b?
func IsLeftOf(a, b, c *Point) bool {
	return Orientation(a, b, c) > 0
}

// Find the point with the smallest X value. When several points share it, the
// first one in input order wins. If every point has the same X, the points are
// spread along Y instead, so the lowest one is taken.
func FindExtremeMinX(points []*Point) *Point {
	if len(points) == 0 {
		fatalf("cannot find the minimum X of an empty point set")
	}
	if allSameX(points) {
		return findExtreme(points, func(p, best *Point) bool { return p.Y < best.Y })
	}
	return findExtreme(points, func(p, best *Point) bool { return p.X < best.X })
}

// Find the point with the largest X value. When several points share it, the
// first one in input order wins. If every point has the same X, the highest
// one is taken, so that a vertical line still has two distinct ends.
func FindExtremeMaxX(points []*Point) *Point {
	if len(points) == 0 {
		fatalf("cannot find the maximum X of an empty point set")
	}
	if allSameX(points) {
		return findExtreme(points, func(p, best *Point) bool { return p.Y > best.Y })
	}
	return findExtreme(points, func(p, best *Point) bool { return p.X > best.X })
}

// Scan in input order, replacing the current best only when strictly beaten.
func findExtreme(points []*Point, beats func(p, best *Point) bool) *Point {
	result := points[0]
	for _, p := range points[1:] {
		if beats(p, result) {
			result = p
		}
	}
	return result
}

func allSameX(points []*Point) bool {
	for _, p := range points[1:] {
		if p.X != points[0].X {
			return false
		}
	}
	return true
}

// The arithmetic mean of the points. This is not the area centroid, but for the
// angular sorts we do, any point inside the polygon works.
func Centroid(points []*Point) Point {
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}

// Sort points in place by their angle around the centroid, ascending, which is
// counterclockwise. The sort is stable so that coincident angles keep their
// input order. Fewer than three points are left alone.
func SortCounterClockwise(points []*Point) {
	if len(points) < 3 {
		return
	}
	c := Centroid(points)
	sort.SliceStable(points, func(i, j int) bool {
		return angleAround(&c, points[i]) < angleAround(&c, points[j])
	})
}

func angleAround(center, p *Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func NewPointSet(points []*Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

// Append the point unless this exact point is already in the list. Returns
// whether the point was added.
func (l *PointList) Add(p *Point) bool {
	if l.seen == nil {
		l.seen = make(PointSet)
	}
	if l.seen.Contains(p) {
		return false
	}
	l.seen.Add(p)
	l.points = append(l.points, p)
	return true
}

func (l *PointList) Len() int {
	return len(l.points)
}

// The backing slice. Callers that hand it out must copy it.
func (l *PointList) Points() []*Point {
	return l.points
}

// Add the edge unless it (or its reverse) is already present.
func (l *EdgeList) Add(e Edge) bool {
	for _, existing := range *l {
		if existing.Same(e) {
			return false
		}
	}
	*l = append(*l, e)
	return true
}

func (q *WorkQueue) Push(item *WorkItem) {
	*q = append(*q, item)
}

func (q *WorkQueue) Pop() *WorkItem {
	if len(*q) == 0 {
		return nil
	}
	item := (*q)[0]
	(*q)[0] = nil
	*q = (*q)[1:]
	return item
}

func (q *WorkQueue) Empty() bool {
	return len(*q) == 0
}

func copyPoints(points []*Point) []*Point {
	result := make([]*Point, len(points))
	copy(result, points)
	return result
}
