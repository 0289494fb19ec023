package plot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	t.Run("scale factors per column", func(t *testing.T) {
		m := NewMatrix([]float64{2, 0.5}, []float64{1, 2}, []float64{10, 20})
		require.Equal(t, 2, m.Rows())
		require.Equal(t, 2, m.Cols())
		require.Equal(t, []float64{2, 5}, m.Row(0))
		require.Equal(t, 10.0, m.At(1, 1))
	})

	t.Run("missing factors default to one", func(t *testing.T) {
		m := NewMatrix(nil, []float64{1}, []float64{2})
		require.Equal(t, []float64{1, 2}, m.Row(0))
	})

	t.Run("shortest column wins", func(t *testing.T) {
		m := NewMatrix(nil, []float64{1, 2, 3}, []float64{0, 0})
		require.Equal(t, 2, m.Rows())
	})

	t.Run("empty", func(t *testing.T) {
		m := NewMatrix(nil, []float64{}, []float64{1})
		require.Equal(t, 0, m.Rows())
		require.Equal(t, "$empty << EOD\nEOD\n", m.Datablock("empty"))

		require.Equal(t, 0, NewMatrix(nil).Cols())
	})
}

func TestMatrix_Datablock(t *testing.T) {
	m := NewMatrix(nil, Floats([]int{1, 2}), []float64{0.5, 1e-7})
	require.Equal(t, "1:2", m.Using())
	require.Equal(t, "$data0 << EOD\n1 0.5\n2 1e-07\nEOD\n", m.Datablock("data0"))
}
