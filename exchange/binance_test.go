package exchange

import (
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/require"
)

func TestCandleFromKline(t *testing.T) {
	candle := CandleFromKline("BTCUSDT", binance.Kline{
		OpenTime: 1704067200000,
		Open:     "42000.5",
		High:     "42100",
		Low:      "41900.25",
		Close:    "42050",
		Volume:   "12.5",
	})

	require.Equal(t, "BTCUSDT", candle.Pair)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), candle.Time)
	require.Equal(t, 42000.5, candle.Open)
	require.Equal(t, 42100.0, candle.High)
	require.Equal(t, 41900.25, candle.Low)
	require.Equal(t, 42050.0, candle.Close)
	require.Equal(t, 12.5, candle.Volume)
	require.True(t, candle.Complete)
	require.NotNil(t, candle.Metadata)
}

func TestBinance_ToCandles(t *testing.T) {
	b := &Binance{HeikinAshi: true}
	candles := b.toCandles("BTCUSDT", []*binance.Kline{
		{OpenTime: 0, Open: "10", High: "12", Low: "9", Close: "11"},
	})
	require.Len(t, candles, 1)
	require.Equal(t, 10.5, candles[0].Open)

	require.Equal(t, "BTC", b.AssetsInfo("BTCUSDT").BaseAsset)
}
