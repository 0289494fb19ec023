package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {
	series := Series[float64]{3, 1, 4, 1, 5}

	require.Equal(t, 5, series.Length())
	require.Equal(t, 5.0, series.Last(0))
	require.Equal(t, 1.0, series.Last(1))
	require.Equal(t, []float64{1, 5}, series.LastValues(2))
	require.Equal(t, []float64{3, 1, 4, 1, 5}, series.LastValues(10))
	require.Equal(t, 1.0, series.Min())
	require.Equal(t, 5.0, series.Max())

	require.Equal(t, 0.0, Series[float64]{}.Max())
}

func TestFill(t *testing.T) {
	require.Equal(t, Series[float64]{-50, -50, -50}, Fill(-50.0, 3))
	require.Empty(t, Fill(1, 0))
}

func TestNumDecPlaces(t *testing.T) {
	require.Equal(t, int64(0), NumDecPlaces(10))
	require.Equal(t, int64(2), NumDecPlaces(0.01))
	require.Equal(t, int64(8), NumDecPlaces(0.00000001))
}
