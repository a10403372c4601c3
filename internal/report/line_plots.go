package report

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/user/tuning_plot/internal/series"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

// ChartConfig controls which columns are plotted and how large the chart is.
type ChartConfig struct {
	XColumn string
	YColumn string
	Title   string
	Width   vg.Length
	Height  vg.Length
	Format  string // any format accepted by plot.WriterTo
}

// DefaultChartConfig plots the error column e against the iteration it.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		XColumn: "it",
		YColumn: "e",
		Title:   "Tuning error",
		Width:   vg.Points(800),
		Height:  vg.Points(400),
		Format:  "png",
	}
}

var lineColor = color.RGBA{B: 255, A: 255} // Blue

// LineChart is a plot of one series. Non-finite points split the series
// into several segments, all sharing one legend entry.
type LineChart struct {
	Plot   *plot.Plot
	Lines  []*plotter.Line
	Legend string
}

// CreateLinePlot draws s as a line with a legend entry named after the series.
// NaN and Inf points are left out and leave a gap in the line.
func CreateLinePlot(s *series.Series, cfg ChartConfig) (*LineChart, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrNoData
	}

	segments := finiteSegments(s.XYs)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: series %s has no finite points", ErrNoData, s.Name)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = s.XName
	p.Y.Label.Text = s.Name
	p.Add(plotter.NewGrid())

	lines := make([]*plotter.Line, 0, len(segments))
	for _, pts := range segments {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", s.Name, err)
		}
		line.Color = lineColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		lines = append(lines, line)
	}

	p.Legend.Add(s.Name, lines[0])
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	return &LineChart{Plot: p, Lines: lines, Legend: s.Name}, nil
}

// finiteSegments splits pts into runs of consecutive finite points.
func finiteSegments(pts plotter.XYs) []plotter.XYs {
	var segments []plotter.XYs
	var current plotter.XYs
	for _, pt := range pts {
		if isFinite(pt.X) && isFinite(pt.Y) {
			current = append(current, pt)
			continue
		}
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RenderPNG encodes p in memory. Nothing is written to disk.
func RenderPNG(p *plot.Plot, cfg ChartConfig) ([]byte, error) {
	format := cfg.Format
	if format == "" {
		format = "png"
	}
	writer, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
