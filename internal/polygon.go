package internal

type Polygon struct {
	Points []*Point
}

// Is the point inside the polygon or on its boundary? The polygon must be convex
// and counterclockwise, which is what ComputeHull produces. Degenerate polygons
// (fewer than three points) contain exactly the points on their segment.
func (poly Polygon) ContainsPoint(p *Point) bool {
	n := len(poly.Points)
	switch n {
	case 0:
		return false
	case 1:
		return poly.Points[0].X == p.X && poly.Points[0].Y == p.Y
	case 2:
		return onSegment(poly.Points[0], poly.Points[1], p)
	}

	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		if Orientation(vertex, nextVertex, p) < -Epsilon*scaleOf(vertex, nextVertex, p) {
			return false
		}
	}
	return true
}

// Does the polygon make no right turns? Collinear runs are allowed.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	for i, vertex := range poly.Points {
		prev := poly.Points[CircularIndex(i-1, n)]
		next := poly.Points[CircularIndex(i+1, n)]
		if Orientation(prev, vertex, next) < 0 {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Cyclically shift the vertices so that the polygon starts at index k.
func (poly Polygon) Rotate(k int) Polygon {
	n := len(poly.Points)
	newPoly := Polygon{Points: make([]*Point, n)}
	for i := range poly.Points {
		newPoly.Points[i] = poly.Points[CircularIndex(i+k, n)]
	}
	return newPoly
}

func onSegment(a, b, p *Point) bool {
	if Orientation(a, b, p) > Epsilon*scaleOf(a, b, p) || Orientation(a, b, p) < -Epsilon*scaleOf(a, b, p) {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// Rough magnitude of the coordinates involved in an orientation test, used to
// turn Epsilon into a relative tolerance.
func scaleOf(points ...*Point) float64 {
	scale := 1.0
	for _, p := range points {
		scale = max(scale, p.X, -p.X, p.Y, -p.Y)
	}
	return scale * scale
}
