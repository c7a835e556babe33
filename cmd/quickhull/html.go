package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/osuushi/quickhull"
	"github.com/pkg/errors"
)

// Write an echarts page with the points as a scatter series and the hull as a
// closed line on top of it.
func writeHTML(path string, points, hull []*quickhull.Point, area float64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating html file")
	}
	defer f.Close()

	scatter := hullChart(points, hull, area)
	if err := scatter.Render(f); err != nil {
		return errors.Wrap(err, "rendering chart")
	}
	return errors.Wrap(f.Close(), "writing html file")
}

func hullChart(points, hull []*quickhull.Point, area float64) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "800px",
			Width:  "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Convex hull",
			Subtitle: fmt.Sprintf("%d points, %d hull vertices, area %g", len(points), len(hull), area),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
	)

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []float64{p.X, p.Y}})
	}
	scatter.AddSeries("Points", data).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "grey"}),
		)

	if len(hull) > 0 {
		line := charts.NewLine()
		lineData := make([]opts.LineData, 0, len(hull)+1)
		for _, p := range hull {
			lineData = append(lineData, opts.LineData{Value: []float64{p.X, p.Y}})
		}
		// Close the polygon
		lineData = append(lineData, opts.LineData{Value: []float64{hull[0].X, hull[0].Y}})
		line.AddSeries("Hull", lineData).
			SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "green"}),
			)
		scatter.Overlap(line)
	}

	return scatter
}
