package plot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	color, err := ParseColor("Red")
	require.NoError(t, err)
	require.Equal(t, Red, color)

	color, err = ParseColor("#0a0B0c")
	require.NoError(t, err)
	require.Equal(t, RGB(10, 11, 12), color)
	require.Equal(t, "#0a0b0c", color.String())

	_, err = ParseColor("#12345")
	require.ErrorIs(t, err, ErrInvalidColor)

	_, err = ParseColor("#zzzzzz")
	require.ErrorIs(t, err, ErrInvalidColor)

	_, err = ParseColor("ultraviolet")
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestLineType_String(t *testing.T) {
	require.Equal(t, "0", SmallDot.String())
	require.Equal(t, "1", Solid.String())
	require.Equal(t, "5", DotDotDash.String())
}

func TestAxes(t *testing.T) {
	require.Equal(t, "x1y1", BottomXLeftY.String())
	require.Equal(t, "x2y2", TopXRightY.String())

	x, y := TopXLeftY.Split()
	require.Equal(t, TopX, x)
	require.Equal(t, LeftY, y)

	axes, err := ParseAxes("X1Y2")
	require.NoError(t, err)
	require.Equal(t, BottomXRightY, axes)

	_, err = ParseAxes("x3y1")
	require.ErrorIs(t, err, ErrInvalidAxisLayout)
}

func TestParseTerminal(t *testing.T) {
	terminal, err := ParseTerminal("PNG")
	require.NoError(t, err)
	require.Equal(t, PNG, terminal)

	_, err = ParseTerminal("pdf")
	require.ErrorIs(t, err, ErrInvalidTerminal)
}
