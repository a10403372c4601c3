package main

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/user/tuning_plot/internal/parser"
	"github.com/user/tuning_plot/internal/report"
	"github.com/user/tuning_plot/internal/series"
)

// App is bound to the viewer page and serves the pre-rendered chart.
type App struct {
	ctx    context.Context
	logger *zap.Logger
	title  string
	chart  []byte
}

// NewApp wraps an encoded PNG chart for display.
func NewApp(chart []byte, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger: logger,
		title:  fmt.Sprintf("Tuning: %s", parser.DefaultFile),
		chart:  chart,
	}
}

// Startup is called when the window opens. The context is saved
// so we can call the runtime methods.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, a.title)
}

// Chart returns the chart as a data URI for an <img> element.
func (a *App) Chart() string {
	a.sendStatus(fmt.Sprintf("Serving chart (%d bytes)", len(a.chart)))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(a.chart)
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.logger.Debug(message)
}

// buildChart runs the whole load/extract/render pipeline before any window
// exists, so a bad input file never opens a viewer.
func buildChart(path string, cfg report.ChartConfig) ([]byte, error) {
	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("Parsing tuning file", zap.String("path", path))
	table, err := parser.ParseTuningData(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	log.Info("Parsed tuning file", zap.String("path", path), zap.Int("rows", table.Len()))

	s, err := series.Extract(table, cfg.XColumn, cfg.YColumn)
	if err != nil {
		return nil, fmt.Errorf("error extracting series: %w", err)
	}

	chart, err := report.CreateLinePlot(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating plot: %w", err)
	}

	img, err := report.RenderPNG(chart.Plot, cfg)
	if err != nil {
		return nil, fmt.Errorf("error rendering plot: %w", err)
	}
	log.Debug("Rendered chart", zap.String("legend", chart.Legend), zap.Int("points", s.Len()), zap.Int("bytes", len(img)))
	return img, nil
}
