package filledcurve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

func TestProperties_Script(t *testing.T) {
	tt := []struct {
		name       string
		properties *Properties
		expected   string
	}{
		{
			name:       "defaults",
			properties: DefaultProperties(),
			expected:   "with filledcurves fillstyle noborder notitle",
		},
		{
			name:       "opacity",
			properties: DefaultProperties().Opacity(0.25),
			expected:   "with filledcurves fillstyle solid 0.25 noborder notitle",
		},
		{
			name: "all options",
			properties: DefaultProperties().
				Axes(plot.TopXRightY).
				Color(plot.DarkViolet).
				Label("band").
				Opacity(1),
			expected: "axes x2y2 with filledcurves fillstyle solid 1 noborder lc rgb 'dark-violet' title 'band'",
		},
		{
			name:       "default axes are not echoed",
			properties: DefaultProperties().Color(plot.Gray),
			expected:   "with filledcurves fillstyle noborder lc rgb 'gray' notitle",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.properties.Script())
			require.Equal(t, tc.properties.Script(), tc.properties.Script())
		})
	}
}

func TestProperties_Opacity(t *testing.T) {
	for _, opacity := range []float64{0, 0.1, 0.5, 0.75, 1} {
		p := DefaultProperties().Opacity(opacity)
		assert.Contains(t, p.Script(), "solid "+plot.FormatFloat(opacity)+" ")
	}

	for _, opacity := range []float64{-0.01, 1.01, 2, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "opacity %v should panic", opacity)
				require.True(t, errors.Is(err, plot.ErrInvalidOpacity))
			}()
			DefaultProperties().Opacity(opacity)
		}()
	}
}

func TestProperties_EffectiveAxes(t *testing.T) {
	require.Equal(t, plot.BottomXLeftY, DefaultProperties().EffectiveAxes())
	require.Equal(t, plot.BottomXRightY, DefaultProperties().Axes(plot.BottomXRightY).EffectiveAxes())
}

func TestSeries_Table(t *testing.T) {
	series := New(FilledCurve[int, float64]{
		X:  []int{1, 2, 3, 4},
		Y1: []float64{1, 2, 3},
		Y2: []float64{4, 5, 6, 7},
	}, nil)

	table := series.Table(2, 3)
	require.Equal(t, 3, table.Rows())
	require.Equal(t, []float64{2, 3, 12}, table.Row(0))
	require.Equal(t, []float64{6, 9, 18}, table.Row(2))
}

func TestPlot(t *testing.T) {
	newFigure := func() *plot.Figure {
		return plot.NewFigure().
			ConfigureAxis(plot.BottomX, func(a *plot.AxisProperties) { a.ScaleFactor(2) }).
			ConfigureAxis(plot.LeftY, func(a *plot.AxisProperties) { a.ScaleFactor(3) }).
			ConfigureAxis(plot.TopX, func(a *plot.AxisProperties) { a.ScaleFactor(5) }).
			ConfigureAxis(plot.RightY, func(a *plot.AxisProperties) { a.ScaleFactor(7) })
	}
	curve := FilledCurve[float64, float64]{
		X:  []float64{1},
		Y1: []float64{1},
		Y2: []float64{2},
	}

	t.Run("default axes", func(t *testing.T) {
		fig := Plot(newFigure(), curve, nil)
		require.Equal(t, []float64{2, 3, 6}, fig.Plots()[0].Data().Row(0))
	})

	t.Run("configured axes resolve their own factors", func(t *testing.T) {
		fig := Plot(newFigure(), curve, func(p *Properties) {
			p.Axes(plot.TopXRightY).Opacity(0.5)
		})

		result := fig.Plots()[0]
		require.Equal(t, plot.TopXRightY, result.Axes())
		require.Equal(t, []float64{5, 7, 14}, result.Data().Row(0))
		require.Equal(t, "axes x2y2 with filledcurves fillstyle solid 0.5 noborder notitle", result.Script())
	})
}
