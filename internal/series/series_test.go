package series

import (
	"strings"
	"testing"

	"github.com/user/tuning_plot/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func loadTable(t *testing.T, rows ...string) *parser.Table {
	t.Helper()
	table, err := parser.ReadTuningData(strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)
	return table
}

func TestExtract_PointsInRowOrder(t *testing.T) {
	table := loadTable(t,
		"1;0;0;0;0;0;0;0;0;0;0;10",
		"2;0;0;0;0;0;0;0;0;0;0;20",
	)

	s, err := Extract(table, "it", "e")
	require.NoError(t, err)

	assert.Equal(t, "e", s.Name)
	assert.Equal(t, "it", s.XName)
	assert.Equal(t, plotter.XYs{{X: 1, Y: 10}, {X: 2, Y: 20}}, s.XYs)
	assert.Equal(t, 2, s.Len())
}

func TestExtract_ReversedRowsReversePoints(t *testing.T) {
	rows := []string{
		"1;0;0;0;0;0;0;0;0;0;0;10",
		"2;0;0;0;0;0;0;0;0;0;0;30",
		"3;0;0;0;0;0;0;0;0;0;0;20",
	}
	reversed := []string{rows[2], rows[1], rows[0]}

	forward, err := Extract(loadTable(t, rows...), "it", "e")
	require.NoError(t, err)
	backward, err := Extract(loadTable(t, reversed...), "it", "e")
	require.NoError(t, err)

	require.Equal(t, forward.Len(), backward.Len())
	n := forward.Len()
	for i := 0; i < n; i++ {
		assert.Equal(t, forward.XYs[i], backward.XYs[n-1-i])
	}
}

func TestExtract_Deterministic(t *testing.T) {
	table := loadTable(t,
		"5;0;0;0;0;0;0;0;0;0;0;0.1",
		"6;0;0;0;0;0;0;0;0;0;0;0.2",
	)

	first, err := Extract(table, "it", "e")
	require.NoError(t, err)
	second, err := Extract(table, "it", "e")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtract_Errors(t *testing.T) {
	table := loadTable(t, "1;0;0;0;0;0;0;0;0;0;0;10")

	t.Run("nil table", func(t *testing.T) {
		_, err := Extract(nil, "it", "e")
		assert.Error(t, err)
	})
	t.Run("unknown x", func(t *testing.T) {
		_, err := Extract(table, "iter", "e")
		assert.ErrorIs(t, err, parser.ErrUnknownColumn)
	})
	t.Run("unknown y", func(t *testing.T) {
		_, err := Extract(table, "it", "loss")
		assert.ErrorIs(t, err, parser.ErrUnknownColumn)
	})
}
