// Package indicator 计算图表叠加层使用的指标
// Package indicator computes the indicators drawn as chart overlays
package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjaplot/model"
)

// Bands 超级趋势的上下轨
// Bands are the final upper and lower bands of a supertrend
type Bands struct {
	Upper model.Series[float64]
	Lower model.Series[float64]
	Trend model.Series[float64]
}

// SuperTrend 根据最高价、最低价、收盘价以及 ATR 周期和倍数计算超级趋势
// SuperTrend computes the final bands and the trend line. The first value of
// every series is zero since the ATR needs one previous candle.
func SuperTrend(high, low, close model.Series[float64], atrPeriod int, factor float64) Bands {
	atr := talib.Atr(high, low, close, atrPeriod)
	size := len(atr)
	bands := Bands{
		Upper: make(model.Series[float64], size),
		Lower: make(model.Series[float64], size),
		Trend: make(model.Series[float64], size),
	}

	for i := 1; i < size; i++ {
		median := (high[i] + low[i]) / 2.0
		basicUpper := median + atr[i]*factor
		basicLower := median - atr[i]*factor

		// 上轨只在价格突破或者新上轨更低时更新
		if basicUpper < bands.Upper[i-1] || close[i-1] > bands.Upper[i-1] {
			bands.Upper[i] = basicUpper
		} else {
			bands.Upper[i] = bands.Upper[i-1]
		}

		if basicLower > bands.Lower[i-1] || close[i-1] < bands.Lower[i-1] {
			bands.Lower[i] = basicLower
		} else {
			bands.Lower[i] = bands.Lower[i-1]
		}

		// the trend follows the upper band until close crosses above it
		switch {
		case bands.Trend[i-1] == bands.Upper[i-1] && close[i] > bands.Upper[i]:
			bands.Trend[i] = bands.Lower[i]
		case bands.Trend[i-1] == bands.Upper[i-1]:
			bands.Trend[i] = bands.Upper[i]
		case close[i] < bands.Lower[i]:
			bands.Trend[i] = bands.Upper[i]
		default:
			bands.Trend[i] = bands.Lower[i]
		}
	}

	return bands
}
