package internal

// QuickHull. The two points with the smallest and largest X are always on the
// hull, and the line between them splits the remaining points into two halves
// which are solved independently:
//
//	        f
//	       / \
//	      /   \      upper half: left of minX→maxX
//	  minX-----maxX
//	      \   /      lower half: left of maxX→minX
//	       \ /
//
// For each half, the point farthest from the baseline is a hull vertex, the
// points inside the triangle it forms with the baseline can be thrown away, and
// the points outside the two new edges are handled recursively.

// Compute the convex hull of the points, counterclockwise. Fewer than three
// points are returned as they are (in a new slice). Every point of the result
// is one of the input pointers.
func ComputeHull(points []*Point) []*Point {
	if len(points) < 3 {
		return copyPoints(points)
	}

	var hull PointList
	minX := FindExtremeMinX(points)
	maxX := FindExtremeMaxX(points)

	findHull(points, minX, maxX, &hull) // Upper hull
	findHull(points, maxX, minX, &hull) // Lower hull

	result := copyPoints(hull.Points())
	SortCounterClockwise(result)
	return result
}

// Record the hull vertices of the chain from a towards b, considering only the
// candidates strictly left of a→b. The vertex recorded at the bottom of each
// branch is the start of an edge with nothing outside it, so b itself is
// recorded by whichever chain starts at b.
func findHull(candidates []*Point, a, b *Point, hull *PointList) {
	var leftOfAB []*Point
	var farthest *Point
	var maxDist float64

	for _, p := range candidates {
		dist := Orientation(a, b, p)
		if dist > 0 {
			leftOfAB = append(leftOfAB, p)
			// Strictly greater, so the first of several equally distant points wins
			if dist > maxDist {
				maxDist = dist
				farthest = p
			}
		}
	}

	if farthest == nil {
		hull.Add(a)
		return
	}

	// Anything inside triangle (a, farthest, b) is left of neither new edge, so
	// the recursive calls drop it on their own.
	findHull(leftOfAB, a, farthest, hull)
	findHull(leftOfAB, farthest, b, hull)
}
