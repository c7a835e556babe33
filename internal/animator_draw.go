package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the points so that the hull outline isn't clipped
const drawPadding = 20

// Radius of a point, in pixels
const drawPointRadius = 4

// A drawing surface set up so that points can be drawn in their own
// coordinates, with Y pointing up.
type Canvas struct {
	*gg.Context
	scale float64
}

// Create a canvas that fits all of the points at the given scale.
func NewCanvas(points []*Point, scale float64) *Canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	return &Canvas{Context: c, scale: scale}
}

func (c *Canvas) DrawPoints(points []*Point, r, g, b float64) {
	c.SetRGB(r, g, b)
	for _, p := range points {
		// Circle radii are in user space, so undo the scale
		c.DrawCircle(p.X, p.Y, drawPointRadius/c.scale)
		c.Fill()
	}
}

// Stroke the closed polygon through the points, in order.
func (c *Canvas) DrawPolygon(points []*Point, r, g, b float64) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(r, g, b)
	c.Stroke()
}

func (c *Canvas) DrawSegment(a, b *Point, red, green, blue float64) {
	c.DrawLine(a.X, a.Y, b.X, b.Y)
	c.SetRGB(red, green, blue)
	c.Stroke()
}

// Draw the current state of the animator: all points in grey, this step's
// candidates in yellow, discarded points in red, hull vertices in green,
// finalized edges in cyan and the current baseline and triangle in magenta.
func (a *Animator) Draw(c *Canvas) {
	c.DrawPoints(a.points, 0.5, 0.5, 0.5)
	c.DrawPoints(a.candidates, 1, 1, 0)
	c.DrawPoints(a.discarded, 1, 0, 0)

	for _, e := range a.edges {
		c.DrawSegment(e.A, e.B, 0, 1, 1)
	}

	if a.currentA != nil {
		if a.currentFarthest != nil {
			c.DrawPolygon([]*Point{a.currentA, a.currentFarthest, a.currentB}, 1, 0, 1)
		} else {
			c.DrawSegment(a.currentA, a.currentB, 1, 0, 1)
		}
	}

	if a.Done() {
		c.DrawPolygon(a.hull.Points(), 0, 1, 0)
	}
	c.DrawPoints(a.hull.Points(), 0, 1, 0)
}

// Helper to draw the animator and print it in the terminal (iTerm only) for
// debugging.
func (a *Animator) dbgDraw(scale float64) {
	c := NewCanvas(a.points, scale)
	a.Draw(c)

	// Save to temp file
	c.SavePNG("/tmp/quickhull.png")
	// Print to terminal
	imgcat.CatFile("/tmp/quickhull.png", os.Stdout)
}
