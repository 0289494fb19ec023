// Package indicator 把技术指标转换为可绘制的图表元素
// Package indicator turns technical indicators into plot elements
package indicator

import (
	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
	"github.com/rodrigo-brito/ninjaplot/plot/filledcurve"
)

// Indicator 图表指标
type Indicator interface {
	// Name is used as the legend label
	Name() string
	// Warmup is the number of candles needed before the first value
	Warmup() int
	// Overlay tells if the indicator shares the price axes
	Overlay() bool
	// Load computes the indicator values from the dataframe
	Load(dataframe *model.Dataframe)
	// Elements returns the plot elements, empty when there is not enough data
	Elements() []plot.Element
}

// axesFor 叠加指标使用价格坐标轴，其余使用右侧 Y 轴
func axesFor(overlay bool) plot.Axes {
	if overlay {
		return plot.BottomXLeftY
	}
	return plot.BottomXRightY
}

// band 在两条曲线之间填充颜色
func band(x, y1, y2 model.Series[float64], axes plot.Axes, color plot.Color, opacity float64, label string) plot.Element {
	return filledcurve.New(filledcurve.FilledCurve[float64, float64]{
		X:  x,
		Y1: y1,
		Y2: y2,
	}, func(p *filledcurve.Properties) {
		p.Color(color).Opacity(opacity).Label(label)
		if axes != plot.BottomXLeftY {
			p.Axes(axes)
		}
	})
}

// checkOpacity panics on an invalid opacity when the indicator is created
// instead of when it is drawn.
func checkOpacity(opacity float64) {
	filledcurve.DefaultProperties().Opacity(opacity)
}
