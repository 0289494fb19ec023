package plot

import (
	"fmt"
	"strings"
)

// Axis 图中的四条坐标轴之一
// Axis is one of the four axes of a figure
type Axis int

const (
	BottomX Axis = iota
	LeftY
	RightY
	TopX
)

var allAxis = []Axis{BottomX, LeftY, RightY, TopX}

func (a Axis) String() string {
	switch a {
	case BottomX:
		return "x"
	case LeftY:
		return "y"
	case RightY:
		return "y2"
	case TopX:
		return "x2"
	}
	return ""
}

// Axes 绘图元素所使用的 X/Y 坐标轴组合
// Axes selects the pair of axes an element is plotted against
type Axes int

const (
	BottomXLeftY Axes = iota
	BottomXRightY
	TopXLeftY
	TopXRightY
)

var axesNames = map[Axes]string{
	BottomXLeftY:  "x1y1",
	BottomXRightY: "x1y2",
	TopXLeftY:     "x2y1",
	TopXRightY:    "x2y2",
}

func (a Axes) String() string {
	return axesNames[a]
}

// Split returns the horizontal and vertical axis of the pair.
func (a Axes) Split() (x Axis, y Axis) {
	switch a {
	case BottomXRightY:
		return BottomX, RightY
	case TopXLeftY:
		return TopX, LeftY
	case TopXRightY:
		return TopX, RightY
	default:
		return BottomX, LeftY
	}
}

// ParseAxes accepts the gnuplot names ("x1y1", "x2y2", ...).
func ParseAxes(name string) (Axes, error) {
	for axes, value := range axesNames {
		if strings.EqualFold(name, value) {
			return axes, nil
		}
	}
	return BottomXLeftY, fmt.Errorf("%w: %s", ErrInvalidAxisLayout, name)
}

// AxisProperties 单条坐标轴的配置
// AxisProperties holds the configuration of a single axis.
//
// Modified through Figure.ConfigureAxis.
type AxisProperties struct {
	hidden      bool
	logarithmic bool
	label       *string
	rangeLow    *float64
	rangeHigh   *float64
	scaleFactor float64
}

func newAxisProperties() *AxisProperties {
	return &AxisProperties{scaleFactor: 1}
}

// Hide hides the tics of the axis
func (a *AxisProperties) Hide() *AxisProperties {
	a.hidden = true
	return a
}

// Show shows the tics of the axis
//
// The axis is shown by default
func (a *AxisProperties) Show() *AxisProperties {
	a.hidden = false
	return a
}

// Label attaches a label to the axis
func (a *AxisProperties) Label(label string) *AxisProperties {
	a.label = &label
	return a
}

// Range sets the visible range of the axis, in raw (unscaled) units
func (a *AxisProperties) Range(low, high float64) *AxisProperties {
	a.rangeLow = &low
	a.rangeHigh = &high
	return a
}

// Logarithmic switches the axis to a base 10 logarithmic scale
func (a *AxisProperties) Logarithmic() *AxisProperties {
	a.logarithmic = true
	return a
}

// Linear switches the axis back to a linear scale, the default
func (a *AxisProperties) Linear() *AxisProperties {
	a.logarithmic = false
	return a
}

// ScaleFactor sets the multiplier applied to every value measured against
// this axis before it is written into a data table
//
// The default factor is 1
func (a *AxisProperties) ScaleFactor(factor float64) *AxisProperties {
	a.scaleFactor = factor
	return a
}

// Hidden reports whether the axis tics are hidden.
func (a *AxisProperties) Hidden() bool {
	return a.hidden
}

func (a *AxisProperties) script(axis Axis) string {
	var script strings.Builder
	name := axis.String()

	if a.label != nil {
		fmt.Fprintf(&script, "set %slabel %s\n", name, Quote(*a.label))
	}

	if a.rangeLow != nil && a.rangeHigh != nil {
		fmt.Fprintf(&script, "set %srange [%s:%s]\n", name,
			FormatFloat(*a.rangeLow*a.scaleFactor), FormatFloat(*a.rangeHigh*a.scaleFactor))
	}

	if a.logarithmic {
		fmt.Fprintf(&script, "set logscale %s 10\n", name)
	}

	if a.hidden {
		fmt.Fprintf(&script, "unset %stics\n", name)
	}

	return script.String()
}
