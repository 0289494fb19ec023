// Package plot 把内存中的图形描述编译为 gnuplot 脚本。
// Package plot compiles in-memory figure descriptions into gnuplot scripts.
//
// A Figure owns the axis registry, the ordered list of plots and the optional
// key. Plot elements (see the candlestick and filledcurve packages) resolve
// their scale factors against the figure, build a data table and serialize
// their properties into a script fragment.
package plot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidLineWidth  = errors.New("line width must be positive")
	ErrInvalidOpacity    = errors.New("opacity must be in the range [0, 1]")
	ErrInvalidBoxWidth   = errors.New("box width must be positive")
	ErrInvalidColor      = errors.New("invalid color")
	ErrRendererNotFound  = errors.New("gnuplot renderer not found")
	ErrInvalidTerminal   = errors.New("invalid terminal")
	ErrInvalidAxisLayout = errors.New("invalid axes")
	ErrInvalidPosition   = errors.New("invalid key position")
)

// Data 可绘制的数值类型
// Data is any numeric type that can be written into a data table
type Data interface {
	constraints.Integer | constraints.Float
}

// Script 可以序列化为 gnuplot 指令的对象
// Script is implemented by everything that serializes into gnuplot directives
type Script interface {
	Script() string
}

// Element is a plot element that can be drawn into a Figure.
//
// Axes names the axis pair the element is measured against, Table builds the
// data table with the resolved scale factors and Script renders the fragment
// written after the table reference.
type Element interface {
	Script
	Axes() Axes
	Table(xFactor, yFactor float64) *Matrix
}

// Plot 一个已经编译好的绘图元素：数据表加脚本片段
// Plot is a compiled plot element: one data table plus its script fragment
type Plot struct {
	axes   Axes
	data   *Matrix
	script string
}

// NewPlot serializes properties once and binds the fragment to data.
func NewPlot(axes Axes, data *Matrix, properties Script) Plot {
	return Plot{
		axes:   axes,
		data:   data,
		script: properties.Script(),
	}
}

func (p Plot) Axes() Axes {
	return p.axes
}

func (p Plot) Data() *Matrix {
	return p.data
}

func (p Plot) Script() string {
	return p.script
}

// Floats converts a coordinate sequence into float64 values.
func Floats[T Data](values []T) []float64 {
	return lo.Map(values, func(value T, _ int) float64 {
		return float64(value)
	})
}

// Quote 返回 gnuplot 单引号字符串，内部的单引号会被转义为两个单引号
// Quote returns a gnuplot single-quoted string literal. Embedded single
// quotes are doubled, which is how gnuplot escapes them.
func Quote(text string) string {
	return "'" + strings.ReplaceAll(text, "'", "''") + "'"
}

// FormatFloat renders v in plain decimal notation with the fewest digits
// that round-trip, e.g. 2 -> "2", 0.5 -> "0.5".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
