package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
)

// willRMiddle 威廉指标的中线，填充区域以此为基线
const willRMiddle = -50.0

// WillR 威廉指标，画在右侧 Y 轴上，填充在 -50 与指标值之间
// WillR draws Williams %R on the right Y axis, filled against the -50 line
func WillR(period int, color plot.Color) Indicator {
	return &willR{
		Period: period,
		Color:  color,
	}
}

type willR struct {
	Period int                   // 周期长度
	Color  plot.Color            // 图表中的颜色
	Values model.Series[float64] // 威廉指标的数值序列
	Time   model.Series[float64] // 与指标值对应的时间序列
}

// Warmup 返回威廉指标的预热期
func (w willR) Warmup() int {
	return w.Period
}

// Name 返回威廉指标的名称
func (w willR) Name() string {
	return fmt.Sprintf("%%R(%d)", w.Period)
}

// Overlay 返回威廉指标是否叠加在价格图上
func (w willR) Overlay() bool {
	return false
}

// Load 载入数据并计算威廉指标
func (w *willR) Load(dataframe *model.Dataframe) {
	w.Values, w.Time = nil, nil
	if len(dataframe.Time) <= w.Period {
		return
	}

	w.Values = talib.WillR(dataframe.High, dataframe.Low, dataframe.Close, w.Period)[w.Period:]
	w.Time = dataframe.Unix()[w.Period:]
}

// Elements 返回威廉指标的填充区域
func (w willR) Elements() []plot.Element {
	if len(w.Time) == 0 {
		return nil
	}

	baseline := model.Fill(willRMiddle, len(w.Values))
	return []plot.Element{
		band(w.Time, baseline, w.Values, axesFor(w.Overlay()), w.Color, 1, w.Name()),
	}
}
