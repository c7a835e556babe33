package internal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

var ErrNilPoints = errors.New("point list is nil")

// Area of the simple polygon whose vertices are the given points, in any order.
// The vertices are sorted by angle around their mean before the shoelace
// formula is applied, so it works on unordered vertex sets of convex polygons
// (and anything else that is star shaped around its mean), and the sign of the
// result never depends on the input winding.
//
// A nil slice is an error. Anything with fewer than three points has zero area.
func ComputeArea(points []*Point) (float64, error) {
	if points == nil {
		return 0, ErrNilPoints
	}
	if len(points) < 3 {
		return 0, nil
	}

	sorted := copyPoints(points)
	c := Centroid(sorted)
	sort.SliceStable(sorted, func(i, j int) bool {
		return angleAround(&c, sorted[i]) < angleAround(&c, sorted[j])
	})

	return math.Abs(SignedArea(&Polygon{sorted})), nil
}

// Shoelace formula over the polygon's vertices in their given order. Positive
// for counterclockwise polygons.
func SignedArea(poly *Polygon) float64 {
	var sum float64
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
