package indicator

import (
	"fmt"

	calc "github.com/rodrigo-brito/ninjaplot/indicator"
	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/plot"
)

// SuperTrend fills the area between the close price and the supertrend line
func SuperTrend(atrPeriod int, factor float64, color plot.Color, opacity float64) Indicator {
	checkOpacity(opacity)
	return &superTrend{
		Period:  atrPeriod,
		Factor:  factor,
		Color:   color,
		Opacity: opacity,
	}
}

type superTrend struct {
	Period  int
	Factor  float64
	Color   plot.Color
	Opacity float64
	Close   model.Series[float64]
	Trend   model.Series[float64]
	Time    model.Series[float64]
}

func (s superTrend) Warmup() int {
	return s.Period
}

func (s superTrend) Name() string {
	return fmt.Sprintf("SuperTrend(%d, %.1f)", s.Period, s.Factor)
}

func (s superTrend) Overlay() bool {
	return true
}

func (s *superTrend) Load(dataframe *model.Dataframe) {
	s.Trend, s.Close, s.Time = nil, nil, nil
	if len(dataframe.Time) <= s.Period {
		return
	}

	bands := calc.SuperTrend(dataframe.High, dataframe.Low, dataframe.Close, s.Period, s.Factor)
	s.Trend = bands.Trend[s.Period:]
	s.Close = dataframe.Close[s.Period:]
	s.Time = dataframe.Unix()[s.Period:]
}

func (s superTrend) Elements() []plot.Element {
	if len(s.Time) == 0 {
		return nil
	}

	return []plot.Element{
		band(s.Time, s.Close, s.Trend, axesFor(s.Overlay()), s.Color, s.Opacity, s.Name()),
	}
}
