package internal

import (
	"embed"
	"log"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. Every polygon vertex and every circle center in
// the file becomes a point, in document order. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []*Point
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			points = append(points, &Point{parseFixtureFloat(pointStrings[0]), parseFixtureFloat(pointStrings[1])})
		}
	}
	for _, circleEl := range rootEl.FindAll("circle") {
		points = append(points, &Point{
			parseFixtureFloat(circleEl.Attributes["cx"]),
			parseFixtureFloat(circleEl.Attributes["cy"]),
		})
	}

	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseFixtureFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return f
}

// Some ad hoc point sets

// n points evenly spaced on a circle. Every one of them is a hull vertex.
func CirclePoints(n int, radius float64) []*Point {
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A star with alternating outer and inner radii. Only the outer tips are on the
// hull.
func StarPoints(tips int, outerRadius, innerRadius float64) []*Point {
	var points []*Point
	for i := 0; i < tips*2; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2*math.Pi*float64(i)/float64(tips*2) + 0.1
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// An n by n grid of integer points. Lots of collinear points on the boundary.
func GridPoints(n int) []*Point {
	var points []*Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, &Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// Uniformly random points in a square. The seed makes failures reproducible.
func RandomPoints(n int, seed uint64) []*Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}
	return points
}

// Random points clustered around a few centers, with some exact duplicates
// mixed in.
func ClusteredPoints(n int, seed uint64) []*Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	centers := []Point{{0, 0}, {50, 10}, {20, 60}}
	var points []*Point
	for i := 0; i < n; i++ {
		c := centers[rng.IntN(len(centers))]
		points = append(points, &Point{X: c.X + rng.NormFloat64()*5, Y: c.Y + rng.NormFloat64()*5})
		if i%7 == 0 {
			duplicate := *points[len(points)-1]
			points = append(points, &duplicate)
		}
	}
	return points
}

// All of the point sets the property tests run against
func allFixtures() map[string][]*Point {
	return map[string][]*Point{
		"notched_star": LoadFixture("notched_star"),
		"scatter":      LoadFixture("scatter"),
		"coincident":   LoadFixture("coincident"),
		"circle":       CirclePoints(32, 10),
		"star":         StarPoints(7, 10, 4),
		"grid":         GridPoints(6),
		"random":       RandomPoints(500, 1),
		"random small": RandomPoints(12, 2),
		"clustered":    ClusteredPoints(300, 3),
		"vertical":     {{3, 4}, {3, -1}, {3, 4}, {3, -1}, {3, 2}},
	}
}
