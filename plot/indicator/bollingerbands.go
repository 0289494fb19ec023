package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
)

// BollingerBands 返回一个布林带指标对象，上下轨之间以半透明颜色填充
// BollingerBands fills the area between the lower and the upper band
func BollingerBands(period int, stdDeviation float64, color plot.Color, opacity float64) Indicator {
	checkOpacity(opacity)
	return &bollingerBands{
		Period:       period,
		StdDeviation: stdDeviation,
		Color:        color,
		Opacity:      opacity,
	}
}

// bollingerBands 表示布林带指标，包含了计算布林带所需的参数和计算结果
type bollingerBands struct {
	Period       int
	StdDeviation float64
	Color        plot.Color
	Opacity      float64
	UpperBand    model.Series[float64]
	MiddleBand   model.Series[float64]
	LowerBand    model.Series[float64]
	Time         model.Series[float64]
}

// Warmup 返回指标需要的预热周期数
func (bb bollingerBands) Warmup() int {
	return bb.Period
}

// Name 返回指标的名称，格式为"BB(周期, 标准差)"
func (bb bollingerBands) Name() string {
	return fmt.Sprintf("BB(%d, %.2f)", bb.Period, bb.StdDeviation)
}

// Overlay 布林带叠加在价格图上
func (bb bollingerBands) Overlay() bool {
	return true
}

// Load 计算布林带的上轨、中轨和下轨，丢弃预热期的数据，数据不足时清空上一次的结果
func (bb *bollingerBands) Load(dataframe *model.Dataframe) {
	bb.UpperBand, bb.MiddleBand, bb.LowerBand, bb.Time = nil, nil, nil, nil
	if len(dataframe.Time) <= bb.Period {
		return
	}

	upper, mid, lower := talib.BBands(dataframe.Close, bb.Period, bb.StdDeviation, bb.StdDeviation, talib.EMA)
	bb.UpperBand, bb.MiddleBand, bb.LowerBand = upper[bb.Period:], mid[bb.Period:], lower[bb.Period:]
	bb.Time = dataframe.Unix()[bb.Period:]
}

// Elements 返回上下轨之间的填充区域
func (bb bollingerBands) Elements() []plot.Element {
	if len(bb.Time) == 0 {
		return nil
	}

	return []plot.Element{
		band(bb.Time, bb.LowerBand, bb.UpperBand, axesFor(bb.Overlay()), bb.Color, bb.Opacity, bb.Name()),
	}
}
