// Package ninjaplot 把K线数据帧和技术指标组合成 gnuplot 图表
// Package ninjaplot builds gnuplot candlestick charts from a dataframe,
// with indicator bands drawn as filled curves.
package ninjaplot

import (
	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
	"github.com/rodrigo-brito/ninjaplot/plot/candlestick"
	"github.com/rodrigo-brito/ninjaplot/plot/indicator"
	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

type (
	Dataframe = model.Dataframe
	Candle    = model.Candle
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

// chart 图表的构建选项
type chart struct {
	title           *string
	candleColor     *plot.Color
	candleLineWidth *float64
	indicators      []indicator.Indicator
	key             func(*plot.KeyProperties)
	terminal        *plot.Terminal
	output          *string
}

type Option func(*chart)

// WithTitle 设置图表标题
func WithTitle(title string) Option {
	return func(c *chart) {
		c.title = &title
	}
}

// WithCandleColor 设置K线颜色
func WithCandleColor(color plot.Color) Option {
	return func(c *chart) {
		c.candleColor = &color
	}
}

// WithCandleLineWidth 设置K线线宽，非正数在构建图表时 panic
func WithCandleLineWidth(width float64) Option {
	return func(c *chart) {
		c.candleLineWidth = &width
	}
}

// WithIndicators 在K线之后追加指标
func WithIndicators(indicators ...indicator.Indicator) Option {
	return func(c *chart) {
		c.indicators = append(c.indicators, indicators...)
	}
}

// WithKey 配置图例
func WithKey(configure func(*plot.KeyProperties)) Option {
	return func(c *chart) {
		c.key = configure
	}
}

func WithTerminal(terminal plot.Terminal) Option {
	return func(c *chart) {
		c.terminal = &terminal
	}
}

func WithOutput(path string) Option {
	return func(c *chart) {
		c.output = &path
	}
}

// NewChart 创建K线图，X 轴为 Unix 秒，影线为最低价和最高价，实体为开盘价和收盘价
// NewChart plots df as candlesticks, then every indicator in the given order.
// Indicators without enough data are skipped with a warning.
func NewChart(df model.Dataframe, options ...Option) *plot.Figure {
	c := &chart{}
	for _, option := range options {
		option(c)
	}

	fig := plot.NewFigure()
	if c.title != nil {
		fig.Title(*c.title)
	}
	if c.terminal != nil {
		fig.Terminal(*c.terminal)
	}
	if c.output != nil {
		fig.Output(*c.output)
	}
	if c.key != nil {
		fig.ConfigureKey(c.key)
	}

	candlestick.Plot(fig, candlestick.Candlesticks[float64, float64]{
		X:           df.Unix(),
		WhiskerMin:  df.Low,
		BoxMin:      df.Open,
		BoxHigh:     df.Close,
		WhiskerHigh: df.High,
	}, func(p *candlestick.Properties) {
		if df.Pair != "" {
			p.Label(df.Pair)
		}
		if c.candleColor != nil {
			p.Color(*c.candleColor)
		}
		if c.candleLineWidth != nil {
			p.LineWidth(*c.candleLineWidth)
		}
	})

	for _, ind := range c.indicators {
		ind.Load(&df)
		elements := ind.Elements()
		if len(elements) == 0 {
			log.Warnf("%s: not enough candles, needs more than %d", ind.Name(), ind.Warmup())
			continue
		}
		for _, element := range elements {
			fig.Plot(element)
		}
	}

	return fig
}
