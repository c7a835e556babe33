package internal

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the hull are pointers. Two samples with
// the same coordinates are still two different points, and bookkeeping like
// "is this vertex already on the hull" is done by pointer, never by value.
// Points are never modified once they are handed to us.

// A finalized boundary segment of the hull. Edges are undirected for the
// purposes of deduplication: {A, B} and {B, A} are the same edge.
type Edge struct {
	A, B *Point
}

func (e Edge) Same(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

type PointSet map[*Point]struct{}

// An ordered list of points which refuses to take the same point twice. Hull
// vertices are kept in discovery order, so a plain PointSet isn't enough.
type PointList struct {
	points []*Point
	seen   PointSet
}

// An ordered list of edges with unordered duplicate suppression.
type EdgeList []Edge

// One pending recursive call of the hull search: the baseline A→B and the
// candidates which lie strictly to the left of it. Work items are never
// modified after they are created.
type WorkItem struct {
	A, B       *Point
	Candidates []*Point
}

// First in, first out queue of pending work.
type WorkQueue []*WorkItem
