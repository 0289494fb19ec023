package ninjaplot

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
	"github.com/rodrigo-brito/ninjaplot/plot/indicator"
)

func dataframe(size int) model.Dataframe {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]model.Candle, 0, size)
	for i := 0; i < size; i++ {
		price := 100 + 10*math.Sin(float64(i)/3)
		candles = append(candles, model.Candle{
			Pair:     "BTCUSDT",
			Time:     start.Add(time.Duration(i) * time.Hour),
			Open:     price,
			Close:    price + 1,
			Low:      price - 1,
			High:     price + 2,
			Complete: true,
		})
	}
	return model.FromCandles("BTCUSDT", candles)
}

func TestNewChart(t *testing.T) {
	t.Run("candles only", func(t *testing.T) {
		df := model.FromCandles("BTCUSDT", []model.Candle{{
			Time: time.Unix(1704067200, 0), Open: 10, Close: 11, Low: 9, High: 12, Complete: true,
		}})

		fig := NewChart(df,
			WithTitle("BTC"),
			WithTerminal(plot.PNG),
			WithOutput("btc.png"),
			WithCandleColor(plot.ForestGreen),
			WithCandleLineWidth(1.5),
			WithKey(func(k *plot.KeyProperties) { k.Boxed(true) }),
		)

		require.Len(t, fig.Plots(), 1)
		candles := fig.Plots()[0]
		require.Equal(t, []float64{1704067200, 10, 9, 12, 11}, candles.Data().Row(0))
		require.Equal(t, "with candlesticks lt 1 lw 1.5 lc rgb 'forest-green' title 'BTCUSDT'", candles.Script())

		script := fig.Script()
		require.Contains(t, script, "set output 'btc.png'\n")
		require.Contains(t, script, "set terminal pngcairo size 1280,720\n")
		require.Contains(t, script, "set title 'BTC'\n")
		require.Contains(t, script, "set key on box \n")
	})

	t.Run("indicators", func(t *testing.T) {
		fig := NewChart(dataframe(60), WithIndicators(
			indicator.BollingerBands(20, 2, plot.Gray, 0.3),
			indicator.WillR(14, plot.Blue),
		))

		require.Len(t, fig.Plots(), 3)
		require.Equal(t, 40, fig.Plots()[1].Data().Rows())
		require.Equal(t, plot.BottomXRightY, fig.Plots()[2].Axes())
		require.Contains(t, fig.Script(), "set y2tics\n")
	})

	t.Run("indicators without data are skipped", func(t *testing.T) {
		fig := NewChart(dataframe(5), WithIndicators(indicator.BollingerBands(20, 2, plot.Gray, 0.3)))
		require.Len(t, fig.Plots(), 1)
	})

	t.Run("reused indicators drop previous values", func(t *testing.T) {
		indicators := []indicator.Indicator{
			indicator.BollingerBands(20, 2, plot.Gray, 0.3),
			indicator.WillR(14, plot.Blue),
			indicator.SuperTrend(10, 3, plot.Gray, 0.3),
		}

		fig := NewChart(dataframe(60), WithIndicators(indicators...))
		require.Len(t, fig.Plots(), 4)
		require.Equal(t, 40, fig.Plots()[1].Data().Rows())

		fig = NewChart(dataframe(5), WithIndicators(indicators...))
		require.Len(t, fig.Plots(), 1)
		for _, ind := range indicators {
			require.Empty(t, ind.Elements(), ind.Name())
		}
	})

	t.Run("invalid line width", func(t *testing.T) {
		require.Panics(t, func() {
			NewChart(dataframe(1), WithCandleLineWidth(0))
		})
	})
}
