package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/quickhull"
	"github.com/osuushi/quickhull/internal"
	"github.com/osuushi/quickhull/internal/pointio"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the hull computation. Points are read from a file or stdin, or
// generated randomly, and the hull vertices are printed counterclockwise one
// per line in the form "x y", followed by the area of the hull.
//
// With --steps, the hull is also computed step by step, printing each step.
// The result is checked against the direct computation.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "quickhull:", err)
		os.Exit(1)
	}
}

type options struct {
	input   string
	format  string
	random  int
	seed    uint64
	width   float64
	height  float64
	steps   bool
	png     string
	frames  string
	html    string
	scale   float64
	verbose bool
	profile bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	app := kingpin.New("quickhull", "Compute the convex hull of a set of 2D points and its area.")
	app.Flag("input", "Read points from this file instead of stdin.").Short('i').StringVar(&opts.input)
	app.Flag("format", "Input format.").Short('f').Default(string(pointio.FormatText)).EnumVar(&opts.format, pointio.Formats...)
	app.Flag("random", "Generate this many random points instead of reading any.").IntVar(&opts.random)
	app.Flag("seed", "Seed for --random.").Default("1").Uint64Var(&opts.seed)
	app.Flag("width", "Width of the area for --random.").Default("1000").Float64Var(&opts.width)
	app.Flag("height", "Height of the area for --random.").Default("1000").Float64Var(&opts.height)
	app.Flag("steps", "Print every step of the stepwise computation.").Short('s').BoolVar(&opts.steps)
	app.Flag("png", "Draw the points and their hull to this PNG file.").StringVar(&opts.png)
	app.Flag("frames", "Draw every step to a numbered PNG file in this directory.").StringVar(&opts.frames)
	app.Flag("html", "Write an interactive chart of the points and hull to this HTML file.").StringVar(&opts.html)
	app.Flag("scale", "Pixels per unit for --png and --frames.").Default("1").Float64Var(&opts.scale)
	app.Flag("verbose", "Log the computation to stderr.").Short('v').BoolVar(&opts.verbose)
	app.Flag("profile", "Write a CPU profile to the current directory.").BoolVar(&opts.profile)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if opts.scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", opts.scale)
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "creating logger")
		}
	}
	defer logger.Sync()

	points, err := readPoints(opts, stdin)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(points)))

	hull, err := quickhull.Hull(points)
	if err != nil {
		return errors.Wrap(err, "computing hull")
	}

	if opts.steps || opts.frames != "" {
		if err := runSteps(opts, points, hull, logger, stdout); err != nil {
			return err
		}
	}

	area, err := quickhull.Area(hull)
	if err != nil {
		return err
	}

	for _, p := range hull {
		fmt.Fprintf(stdout, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintf(stdout, "area: %g\n", area)

	if opts.png != "" {
		if err := writePNG(opts.png, points, hull, opts.scale); err != nil {
			return err
		}
	}
	if opts.html != "" {
		if err := writeHTML(opts.html, points, hull, area); err != nil {
			return err
		}
	}
	return nil
}

func readPoints(opts *options, stdin io.Reader) ([]*quickhull.Point, error) {
	if opts.random > 0 {
		return pointio.Random(opts.random, opts.width, opts.height, opts.seed), nil
	}

	in := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	return pointio.Read(pointio.Format(opts.format), in)
}

// Drive an animator to completion, printing (and optionally drawing) every
// step, and make sure it agrees with the direct computation.
func runSteps(opts *options, points, hull []*quickhull.Point, logger *zap.Logger, stdout io.Writer) error {
	animator, err := quickhull.NewAnimator(points, quickhull.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "creating animator")
	}

	if opts.frames != "" {
		if err := os.MkdirAll(opts.frames, 0o755); err != nil {
			return errors.Wrap(err, "creating frames directory")
		}
	}

	for frame := 0; ; frame++ {
		if opts.steps {
			fmt.Fprintln(stdout, animator.String())
		}
		if opts.frames != "" {
			c := internal.NewCanvas(points, opts.scale)
			animator.Draw(c)
			path := filepath.Join(opts.frames, fmt.Sprintf("step-%04d.png", frame))
			if err := c.SavePNG(path); err != nil {
				return errors.Wrapf(err, "writing frame %s", path)
			}
		}
		if animator.Done() {
			break
		}
		animator.Step()
	}

	stepped := animator.HullPoints()
	if len(stepped) != len(hull) {
		return errors.Errorf("stepwise hull has %d vertices, expected %d", len(stepped), len(hull))
	}
	for i := range hull {
		if stepped[i] != hull[i] {
			return errors.Errorf("stepwise hull differs at vertex %d: %v, expected %v", i, stepped[i], hull[i])
		}
	}
	return nil
}

func writePNG(path string, points, hull []*quickhull.Point, scale float64) error {
	c := internal.NewCanvas(points, scale)
	c.DrawPoints(points, 0.5, 0.5, 0.5)
	c.DrawPolygon(hull, 0, 1, 0)
	c.DrawPoints(hull, 0, 1, 0)
	return errors.Wrap(c.SavePNG(path), "writing png")
}
