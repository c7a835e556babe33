package internal

import (
	"go.uber.org/zap"
)

// A steppable version of ComputeHull. Instead of recursing, pending calls of
// the hull search are kept in a queue of work items, and every call to Step
// processes exactly one of them. Between steps, everything about the search
// can be inspected, which is what makes it possible to animate the algorithm.
//
// The lower half (left of maxX→minX) is solved first, then one idle step marks
// the switch to the upper half (left of minX→maxX), and the final step sorts
// the hull. The resulting vertices are the same points ComputeHull finds.
//
// An Animator is owned by a single caller. It must not be stepped from several
// goroutines at once, and it holds no resources, so a half finished Animator
// can simply be dropped.
type Animator struct {
	points []*Point

	hull  PointList
	edges EdgeList
	queue WorkQueue

	minX, maxX      *Point
	upperCandidates []*Point

	currentA, currentB *Point
	currentFarthest    *Point
	candidates         []*Point
	discarded          []*Point

	phase Phase
	steps int

	log *zap.Logger
}

type Phase int

const (
	PhaseLowerHull Phase = iota
	PhaseUpperHull
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseLowerHull:
		return "Lower Hull"
	case PhaseUpperHull:
		return "Upper Hull"
	case PhaseDone:
		return "Done"
	}
	return "Unknown"
}

type AnimatorOption func(*Animator)

// Log every step at debug level.
func WithLogger(log *zap.Logger) AnimatorOption {
	return func(a *Animator) {
		if log != nil {
			a.log = log
		}
	}
}

func NewAnimator(points []*Point, opts ...AnimatorOption) *Animator {
	a := &Animator{points: copyPoints(points), log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}

	if len(points) < 3 {
		a.hull.points = copyPoints(points)
		a.phase = PhaseDone
		a.log.Debug("fewer than three points, nothing to do", zap.Int("points", len(points)))
		return a
	}

	a.minX = FindExtremeMinX(points)
	a.maxX = FindExtremeMaxX(points)

	// The extremes are on the hull, but they are never the farthest point of any
	// work item, so they have to be recorded up front.
	a.hull.Add(a.minX)
	a.hull.Add(a.maxX)

	// Points exactly on the line between the extremes can't be hull vertices, so
	// they go in neither half.
	var lower, upper []*Point
	for _, p := range points {
		if p == a.minX || p == a.maxX {
			continue
		}
		side := Orientation(a.minX, a.maxX, p)
		if side < 0 {
			lower = append(lower, p)
		} else if side > 0 {
			upper = append(upper, p)
		}
	}

	a.queue.Push(&WorkItem{A: a.maxX, B: a.minX, Candidates: lower})
	a.upperCandidates = upper
	a.phase = PhaseLowerHull

	a.log.Debug("animator ready",
		zap.Int("points", len(points)),
		zap.Stringer("minX", a.minX),
		zap.Stringer("maxX", a.maxX),
		zap.Int("lower", len(lower)),
		zap.Int("upper", len(upper)),
	)
	return a
}

// Advance the search by one work item. Returns true once the hull is complete.
// Calling Step after that does nothing and keeps returning true.
func (a *Animator) Step() bool {
	if a.phase == PhaseDone {
		return true
	}
	a.steps++

	if a.queue.Empty() {
		a.clearCurrent()
		if a.phase == PhaseLowerHull {
			a.phase = PhaseUpperHull
			a.queue.Push(&WorkItem{A: a.minX, B: a.maxX, Candidates: a.upperCandidates})
			a.log.Debug("lower hull complete", zap.Int("step", a.steps), zap.Int("vertices", a.hull.Len()))
			return false
		}

		SortCounterClockwise(a.hull.points)
		a.phase = PhaseDone
		a.log.Debug("hull complete",
			zap.Int("step", a.steps),
			zap.Int("vertices", a.hull.Len()),
			zap.Int("edges", len(a.edges)),
		)
		return true
	}

	a.process(a.queue.Pop())
	return false
}

// Step until done and return the hull.
func (a *Animator) Run() []*Point {
	for !a.Step() {
	}
	return a.HullPoints()
}

func (a *Animator) process(item *WorkItem) {
	a.currentA = item.A
	a.currentB = item.B
	a.currentFarthest = nil
	a.candidates = nil
	a.discarded = nil

	// Nothing outside the baseline, so it is an edge of the hull
	if len(item.Candidates) == 0 {
		a.finalizeEdge(item.A, item.B)
		return
	}

	var farthest *Point
	var maxDist float64
	for _, p := range item.Candidates {
		// Strictly greater, so the first of several equally distant points wins
		if d := Orientation(item.A, item.B, p); d > maxDist {
			maxDist = d
			farthest = p
		}
	}

	// Queued candidates are always left of their baseline, so this can only
	// happen if a caller broke that. Treat the baseline as final anyway.
	if farthest == nil {
		a.candidates = copyPoints(item.Candidates)
		a.finalizeEdge(item.A, item.B)
		return
	}

	a.currentFarthest = farthest
	a.hull.Add(farthest)

	/*
		Split the candidates against the two new edges:

		        farthest
		   left  /\  right
		        /  \
		       / ∅  \      ∅ = inside the triangle, discarded
		      a------b
	*/
	var leftSet, rightSet []*Point
	a.candidates = make([]*Point, 0, len(item.Candidates)-1)
	for _, p := range item.Candidates {
		if p == farthest {
			continue
		}
		a.candidates = append(a.candidates, p)
		if IsLeftOf(item.A, farthest, p) {
			leftSet = append(leftSet, p)
		} else if IsLeftOf(farthest, item.B, p) {
			rightSet = append(rightSet, p)
		} else {
			a.discarded = append(a.discarded, p)
		}
	}

	a.queue.Push(&WorkItem{A: item.A, B: farthest, Candidates: leftSet})
	a.queue.Push(&WorkItem{A: farthest, B: item.B, Candidates: rightSet})

	a.log.Debug("split baseline",
		zap.Int("step", a.steps),
		zap.Stringer("phase", a.phase),
		zap.Stringer("a", item.A),
		zap.Stringer("b", item.B),
		zap.Stringer("farthest", farthest),
		zap.Int("left", len(leftSet)),
		zap.Int("right", len(rightSet)),
		zap.Int("discarded", len(a.discarded)),
	)
}

func (a *Animator) finalizeEdge(from, to *Point) {
	added := a.edges.Add(Edge{A: from, B: to})
	a.log.Debug("edge finalized",
		zap.Int("step", a.steps),
		zap.Stringer("phase", a.phase),
		zap.Stringer("a", from),
		zap.Stringer("b", to),
		zap.Bool("duplicate", !added),
	)
}

func (a *Animator) clearCurrent() {
	a.currentA = nil
	a.currentB = nil
	a.currentFarthest = nil
	a.candidates = nil
	a.discarded = nil
}

// Hull vertices found so far, in discovery order. They are only sorted
// counterclockwise (and only complete) once Done returns true.
func (a *Animator) HullPoints() []*Point {
	return copyPoints(a.hull.Points())
}

// Hull edges found so far.
func (a *Animator) HullEdges() []Edge {
	edges := make([]Edge, len(a.edges))
	copy(edges, a.edges)
	return edges
}

// The baseline processed by the most recent step, or nils for an idle step.
func (a *Animator) CurrentBaseline() (*Point, *Point) {
	return a.currentA, a.currentB
}

func (a *Animator) CurrentFarthest() *Point {
	return a.currentFarthest
}

// The candidates examined by the most recent step, excluding the farthest point.
func (a *Animator) CandidatePoints() []*Point {
	return copyPoints(a.candidates)
}

// The candidates the most recent step found inside its triangle.
func (a *Animator) DiscardedPoints() []*Point {
	return copyPoints(a.discarded)
}

func (a *Animator) Phase() Phase {
	return a.phase
}

func (a *Animator) PhaseLabel() string {
	return a.phase.String()
}

func (a *Animator) Done() bool {
	return a.phase == PhaseDone
}

// Number of Step calls that did any work.
func (a *Animator) Steps() int {
	return a.steps
}

// Number of work items waiting in the current phase.
func (a *Animator) Pending() int {
	return len(a.queue)
}

// The input points.
func (a *Animator) Points() []*Point {
	return copyPoints(a.points)
}

func (a *Animator) MinX() *Point {
	return a.minX
}

func (a *Animator) MaxX() *Point {
	return a.maxX
}
