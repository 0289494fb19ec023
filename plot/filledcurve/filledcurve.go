// Package filledcurve fills the area between two curves.
package filledcurve

import (
	"fmt"
	"strings"

	"github.com/rodrigo-brito/ninjaplot/plot"
)

// Properties 填充曲线的样式
// Properties common to filled curve plots
type Properties struct {
	axes    *plot.Axes
	color   *plot.Color
	label   *string
	opacity *float64
}

// DefaultProperties returns properties with every option unset
func DefaultProperties() *Properties {
	return &Properties{}
}

// Axes selects the axes to plot against
//
// The BottomXLeftY axes are used by default
func (p *Properties) Axes(axes plot.Axes) *Properties {
	p.axes = &axes
	return p
}

// Color sets the fill color
func (p *Properties) Color(color plot.Color) *Properties {
	p.color = &color
	return p
}

// Label sets the legend label
func (p *Properties) Label(label string) *Properties {
	p.label = &label
	return p
}

// Opacity changes the opacity of the fill color
//
// The fill is opaque by default. Panics with plot.ErrInvalidOpacity if
// opacity is outside [0, 1].
func (p *Properties) Opacity(opacity float64) *Properties {
	if !(opacity >= 0 && opacity <= 1) {
		panic(fmt.Errorf("%w: %v", plot.ErrInvalidOpacity, opacity))
	}
	p.opacity = &opacity
	return p
}

// EffectiveAxes returns the selected axes, BottomXLeftY when unset.
func (p *Properties) EffectiveAxes() plot.Axes {
	if p.axes != nil {
		return *p.axes
	}
	return plot.BottomXLeftY
}

// Script renders the fragment: axes, fill style, border, color and title, in
// this order. Unset options are omitted.
func (p *Properties) Script() string {
	var script strings.Builder

	if p.axes != nil {
		fmt.Fprintf(&script, "axes %s ", *p.axes)
	}

	script.WriteString("with filledcurves ")
	script.WriteString("fillstyle ")

	if p.opacity != nil {
		fmt.Fprintf(&script, "solid %s ", plot.FormatFloat(*p.opacity))
	}

	// TODO: make the border configurable (border lc rgb ..., lw ...)
	script.WriteString("noborder ")

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

// FilledCurve 两条曲线及其共享的 X 坐标
// FilledCurve holds the area between two curves
type FilledCurve[X, Y plot.Data] struct {
	// X coordinate of the data points of both curves
	X []X
	// Y coordinate of the data points of the first curve
	Y1 []Y
	// Y coordinate of the data points of the second curve
	Y2 []Y
}

// Series is a filled curve plot element.
type Series[X, Y plot.Data] struct {
	curve      FilledCurve[X, Y]
	properties *Properties
}

// New applies configure to the default properties before anything is
// resolved, since the axes the curve is measured against are themselves
// configurable. configure may be nil.
func New[X, Y plot.Data](curve FilledCurve[X, Y], configure func(*Properties)) *Series[X, Y] {
	properties := DefaultProperties()
	if configure != nil {
		configure(properties)
	}
	return &Series[X, Y]{
		curve:      curve,
		properties: properties,
	}
}

func (s *Series[X, Y]) Axes() plot.Axes {
	return s.properties.EffectiveAxes()
}

// Table zips x, y1 and y2, truncated to the shortest sequence.
func (s *Series[X, Y]) Table(xFactor, yFactor float64) *plot.Matrix {
	return plot.NewMatrix(
		[]float64{xFactor, yFactor, yFactor},
		plot.Floats(s.curve.X),
		plot.Floats(s.curve.Y1),
		plot.Floats(s.curve.Y2),
	)
}

func (s *Series[X, Y]) Script() string {
	return s.properties.Script()
}

// Plot 将填充曲线追加到 fig
// Plot appends a filled curve to fig
func Plot[X, Y plot.Data](fig *plot.Figure, curve FilledCurve[X, Y], configure func(*Properties)) *plot.Figure {
	return fig.Plot(New(curve, configure))
}
