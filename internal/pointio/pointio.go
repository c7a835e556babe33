// Reading point sets for the command line tool.
package pointio

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Point = internal.Point

type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
	FormatYAML Format = "yaml"
)

var Formats = []string{string(FormatText), string(FormatSVG), string(FormatYAML)}

func Read(format Format, r io.Reader) ([]*Point, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatSVG:
		return ReadSVG(r)
	case FormatYAML:
		return ReadYAML(r)
	}
	return nil, errors.Errorf("unknown point format %q", format)
}

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadText(r io.Reader) ([]*Point, error) {
	points := []*Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected two coordinates, got %q", lineNumber, line)
		}
		point, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read the vertices of every <polygon> and the centers of every <circle> in an
// SVG document, in document order by element type (polygons first).
func ReadSVG(r io.Reader) ([]*Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []*Point{}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coordinates := strings.Split(pointString, ",")
			if len(coordinates) != 2 {
				return nil, errors.Errorf("invalid polygon point %q", pointString)
			}
			point, err := parsePoint(coordinates[0], coordinates[1])
			if err != nil {
				return nil, err
			}
			points = append(points, point)
		}
	}
	for _, circleEl := range rootEl.FindAll("circle") {
		point, err := parsePoint(circleEl.Attributes["cx"], circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle center")
		}
		points = append(points, point)
	}
	return points, nil
}

type yamlDocument struct {
	Points []yamlPoint `yaml:"points"`
}

// A point in YAML is either a pair, [x, y], or a mapping, {x: 1, y: 2}.
type yamlPoint Point

func (p *yamlPoint) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Errorf("line %d: expected two coordinates, got %d", value.Line, len(pair))
		}
		p.X, p.Y = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return errors.Errorf("line %d: point needs both x and y", value.Line)
		}
		p.X, p.Y = *m.X, *m.Y
		return nil
	}
	return errors.Errorf("line %d: expected a point", value.Line)
}

// Read a YAML document with a top level "points" list.
func ReadYAML(r io.Reader) ([]*Point, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []*Point{}, nil
		}
		return nil, errors.Wrap(err, "parsing yaml")
	}
	points := make([]*Point, len(doc.Points))
	for i := range doc.Points {
		point := Point(doc.Points[i])
		points[i] = &point
	}
	return points, nil
}

// Uniformly distributed points in [0, width) × [0, height), for demos.
func Random(n int, width, height float64, seed uint64) []*Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: rng.Float64() * width, Y: rng.Float64() * height}
	}
	return points
}

func parsePoint(xString, yString string) (*Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return &Point{X: x, Y: y}, nil
}
