// Convex hulls of 2D point sets with QuickHull.
//
// Hull computes the hull in one call. NewAnimator gives the same computation
// as a sequence of steps which can be inspected one at a time, for example to
// animate the algorithm. Area computes the area of the resulting polygon.
//
// All points are pointers, and the results only ever contain the pointers that
// were passed in. Two points with the same coordinates are two different
// points.
package quickhull

import (
	"github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Edge = internal.Edge
type Animator = internal.Animator
type AnimatorOption = internal.AnimatorOption
type Phase = internal.Phase

const (
	PhaseLowerHull = internal.PhaseLowerHull
	PhaseUpperHull = internal.PhaseUpperHull
	PhaseDone      = internal.PhaseDone
)

var ErrNilPoints = internal.ErrNilPoints

var WithLogger = internal.WithLogger

// Compute the convex hull of the points, in counterclockwise order. With fewer
// than three points, the points themselves are returned.
func Hull(points []*Point) (result []*Point, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ComputeHull(points), nil
}

// Create an animator for stepping through the hull computation. See Animator.
func NewAnimator(points []*Point, opts ...AnimatorOption) (animator *Animator, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			animator = nil
			err = recoveredErr
		}
	}()
	return internal.NewAnimator(points, opts...), nil
}

// Area of the polygon formed by the points, which may be given in any order.
// Returns ErrNilPoints (wrapped) for a nil slice.
func Area(points []*Point) (float64, error) {
	area, err := internal.ComputeArea(points)
	if err != nil {
		return 0, errors.Wrap(err, "computing area")
	}
	return area, nil
}
