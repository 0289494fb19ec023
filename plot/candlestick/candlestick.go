// Package candlestick 蜡烛图（箱线加上下影线）
// Package candlestick draws candlesticks: a box and two whiskers that extend
// beyond it.
package candlestick

import (
	"fmt"
	"strings"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

// Properties 蜡烛图的样式
// Properties common to candlestick plots
type Properties struct {
	color     *plot.Color
	label     *string
	lineType  plot.LineType
	lineWidth *float64
}

// DefaultProperties returns solid lines with everything else unset
func DefaultProperties() *Properties {
	return &Properties{lineType: plot.Solid}
}

// Color sets the line color
func (p *Properties) Color(color plot.Color) *Properties {
	p.color = &color
	return p
}

// Label sets the legend label
func (p *Properties) Label(label string) *Properties {
	p.label = &label
	return p
}

// LineType changes the line type
//
// Solid lines are used by default
func (p *Properties) LineType(lineType plot.LineType) *Properties {
	p.lineType = lineType
	return p
}

// LineWidth changes the width of the line
//
// Panics with plot.ErrInvalidLineWidth if width is not positive
func (p *Properties) LineWidth(width float64) *Properties {
	if !(width > 0) {
		panic(fmt.Errorf("%w: %v", plot.ErrInvalidLineWidth, width))
	}
	p.lineWidth = &width
	return p
}

// Script 按固定顺序输出：样式、线型、线宽、颜色、标题
// Script renders the fragment: style, line type, width, color and title, in
// this order. Unset options are omitted.
func (p *Properties) Script() string {
	var script strings.Builder
	script.WriteString("with candlesticks ")

	fmt.Fprintf(&script, "lt %s ", p.lineType)

	if p.lineWidth != nil {
		fmt.Fprintf(&script, "lw %s ", plot.FormatFloat(*p.lineWidth))
	}

	if p.color != nil {
		fmt.Fprintf(&script, "lc rgb '%s' ", p.color)
	}

	if p.label != nil {
		script.WriteString("title ")
		script.WriteString(plot.Quote(*p.label))
	} else {
		script.WriteString("notitle")
	}

	return script.String()
}

// Candlesticks 蜡烛图的坐标序列
// Candlesticks holds the coordinates of each candlestick
type Candlesticks[X, Y plot.Data] struct {
	// X coordinate of the candlestick
	X []X
	// Y coordinate of the end point of the bottom whisker
	WhiskerMin []Y
	// Y coordinate of the bottom of the box
	BoxMin []Y
	// Y coordinate of the top of the box
	BoxHigh []Y
	// Y coordinate of the end point of the top whisker
	WhiskerHigh []Y
}

// Series is a candlestick plot element, always measured against the
// BottomXLeftY axes.
type Series[X, Y plot.Data] struct {
	candlesticks Candlesticks[X, Y]
	properties   *Properties
}

// New applies configure to the default properties. configure may be nil.
func New[X, Y plot.Data](candlesticks Candlesticks[X, Y], configure func(*Properties)) *Series[X, Y] {
	properties := DefaultProperties()
	if configure != nil {
		configure(properties)
	}
	return &Series[X, Y]{
		candlesticks: candlesticks,
		properties:   properties,
	}
}

func (s *Series[X, Y]) Axes() plot.Axes {
	return plot.BottomXLeftY
}

// Table zips the columns in the order gnuplot reads candlesticks:
// x, box min, whisker min, whisker high, box high. Longer sequences are
// truncated to the shortest one.
func (s *Series[X, Y]) Table(xFactor, yFactor float64) *plot.Matrix {
	c := s.candlesticks
	return plot.NewMatrix(
		[]float64{xFactor, yFactor, yFactor, yFactor, yFactor},
		plot.Floats(c.X),
		plot.Floats(c.BoxMin),
		plot.Floats(c.WhiskerMin),
		plot.Floats(c.WhiskerHigh),
		plot.Floats(c.BoxHigh),
	)
}

func (s *Series[X, Y]) Script() string {
	return s.properties.Script()
}

// Plot 将蜡烛图追加到 fig
// Plot appends candlesticks to fig
func Plot[X, Y plot.Data](fig *plot.Figure, candlesticks Candlesticks[X, Y], configure func(*Properties)) *plot.Figure {
	return fig.Plot(New(candlesticks, configure))
}
