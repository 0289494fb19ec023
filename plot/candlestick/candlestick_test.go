package candlestick

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

func TestProperties_Script(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, "with candlesticks lt 1 notitle", DefaultProperties().Script())
	})

	t.Run("all options", func(t *testing.T) {
		p := DefaultProperties().
			Color(plot.Red).
			Label("BTCUSDT").
			LineType(plot.Dash).
			LineWidth(2)
		require.Equal(t, "with candlesticks lt 2 lw 2 lc rgb 'red' title 'BTCUSDT'", p.Script())
	})

	t.Run("rgb color without width", func(t *testing.T) {
		p := DefaultProperties().Color(plot.RGB(255, 0, 16))
		require.Equal(t, "with candlesticks lt 1 lc rgb '#ff0010' notitle", p.Script())
	})

	t.Run("label with quote", func(t *testing.T) {
		p := DefaultProperties().Label("it's")
		require.Equal(t, "with candlesticks lt 1 title 'it''s'", p.Script())
	})

	t.Run("idempotent", func(t *testing.T) {
		p := DefaultProperties().Color(plot.Blue).LineWidth(0.5)
		require.Equal(t, p.Script(), p.Script())
	})
}

func TestProperties_LineWidth(t *testing.T) {
	for _, width := range []float64{0.1, 0.5, 1, 1.5, 2, 10} {
		p := DefaultProperties().LineWidth(width)
		assert.Contains(t, p.Script(), "lw "+plot.FormatFloat(width)+" ")
	}

	assert.PanicsWithError(t, "line width must be positive: 0", func() {
		DefaultProperties().LineWidth(0)
	})
	assert.PanicsWithError(t, "line width must be positive: -1", func() {
		DefaultProperties().LineWidth(-1)
	})
	assert.PanicsWithError(t, "line width must be positive: NaN", func() {
		DefaultProperties().LineWidth(math.NaN())
	})

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, plot.ErrInvalidLineWidth))
	}()
	DefaultProperties().LineWidth(-0.5)
}

func TestProperties_Chaining(t *testing.T) {
	p := DefaultProperties()
	require.Same(t, p, p.Color(plot.Gold))
	require.Same(t, p, p.Label("label"))
	require.Same(t, p, p.LineType(plot.Dot))
	require.Same(t, p, p.LineWidth(3))
}

func TestSeries_Table(t *testing.T) {
	t.Run("column order", func(t *testing.T) {
		series := New(Candlesticks[int, float64]{
			X:           []int{1},
			WhiskerMin:  []float64{2},
			BoxMin:      []float64{3},
			BoxHigh:     []float64{4},
			WhiskerHigh: []float64{5},
		}, nil)

		table := series.Table(1, 1)
		require.Equal(t, 1, table.Rows())
		require.Equal(t, 5, table.Cols())
		require.Equal(t, []float64{1, 3, 2, 5, 4}, table.Row(0))
	})

	t.Run("truncates to the shortest sequence", func(t *testing.T) {
		series := New(Candlesticks[int, int]{
			X:           []int{1, 2, 3},
			WhiskerMin:  []int{0, 0},
			BoxMin:      []int{1, 1, 1},
			BoxHigh:     []int{2, 2, 2},
			WhiskerHigh: []int{3, 3, 3},
		}, nil)

		require.Equal(t, 2, series.Table(1, 1).Rows())
	})
}

func TestPlot(t *testing.T) {
	fig := plot.NewFigure().
		ConfigureAxis(plot.BottomX, func(a *plot.AxisProperties) { a.ScaleFactor(2) }).
		ConfigureAxis(plot.LeftY, func(a *plot.AxisProperties) { a.ScaleFactor(10) }).
		ConfigureAxis(plot.TopX, func(a *plot.AxisProperties) { a.ScaleFactor(100) })

	Plot(fig, Candlesticks[float64, float64]{
		X:           []float64{1},
		WhiskerMin:  []float64{2},
		BoxMin:      []float64{3},
		BoxHigh:     []float64{4},
		WhiskerHigh: []float64{5},
	}, func(p *Properties) {
		p.Color(plot.ForestGreen).Label("candles")
	})

	require.Len(t, fig.Plots(), 1)
	result := fig.Plots()[0]
	require.Equal(t, plot.BottomXLeftY, result.Axes())
	require.Equal(t, []float64{2, 30, 20, 50, 40}, result.Data().Row(0))
	require.Equal(t, "with candlesticks lt 1 lc rgb 'forest-green' title 'candles'", result.Script())
}
