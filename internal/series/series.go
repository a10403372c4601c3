package series

import (
	"fmt"

	"github.com/user/tuning_plot/internal/parser"

	"gonum.org/v1/plot/plotter"
)

// Series is a named sequence of points, one per table row, in file order.
// It satisfies plotter.XYer through the embedded XYs.
type Series struct {
	Name  string
	XName string
	plotter.XYs
}

// Extract pairs column x with column y row by row. The series takes the name of y.
func Extract(t *parser.Table, x, y string) (*Series, error) {
	if t == nil {
		return nil, fmt.Errorf("table is nil, cannot extract series")
	}

	xs, err := t.Column(x)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	ys, err := t.Column(y)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("column %q has %d rows, column %q has %d", x, len(xs), y, len(ys))
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	return &Series{Name: y, XName: x, XYs: pts}, nil
}
