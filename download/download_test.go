package download

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjaplot/exchange"
	"github.com/rodrigo-brito/ninjaplot/model"
)

type fakeFeeder struct {
	err   error
	empty bool
	calls int
}

func (f *fakeFeeder) AssetsInfo(string) model.AssetInfo {
	return model.AssetInfo{QuotePrecision: 2}
}

func (f *fakeFeeder) CandlesByPeriod(_ context.Context, pair, period string, start, end time.Time) ([]model.Candle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.empty {
		return nil, nil
	}

	interval, _ := time.ParseDuration(period)
	candles := make([]model.Candle, 0)
	for t := start; !t.After(end); t = t.Add(interval) {
		candles = append(candles, model.Candle{
			Pair: pair, Time: t, Open: 1, Close: 2, Low: 0.5, High: 2.5, Volume: 10, Complete: true,
		})
	}
	return candles, nil
}

func (f *fakeFeeder) CandlesByLimit(context.Context, string, string, int) ([]model.Candle, error) {
	return nil, nil
}

func TestDownloader_Download(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("writes a csv feed", func(t *testing.T) {
		var progress bytes.Buffer
		feeder := &fakeFeeder{}
		output := filepath.Join(t.TempDir(), "btc.csv")

		err := NewDownloader(feeder).WithProgressOutput(&progress).
			Download(ctx, "BTCUSDT", "1h", output, WithInterval(start, end))
		require.NoError(t, err)
		require.Equal(t, 1, feeder.calls)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 26)
		require.Equal(t, "time,open,close,low,high,volume", lines[0])
		require.Equal(t, "1704067200,1.00,2.00,0.50,2.50,10.00", lines[1])

		feed, err := exchange.NewCSVFeed("1h", exchange.PairFeed{Pair: "BTCUSDT", File: output, Timeframe: "1h"})
		require.NoError(t, err)
		require.Len(t, feed.Dataframe("BTCUSDT", "1h").Close, 25)
	})

	t.Run("feed error", func(t *testing.T) {
		feedErr := errors.New("boom")
		err := NewDownloader(&fakeFeeder{err: feedErr}).WithProgressOutput(&bytes.Buffer{}).
			Download(ctx, "BTCUSDT", "1h", filepath.Join(t.TempDir(), "btc.csv"), WithInterval(start, end))
		require.ErrorIs(t, err, feedErr)
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		err := NewDownloader(&fakeFeeder{}).
			Download(ctx, "BTCUSDT", "xx", filepath.Join(t.TempDir(), "btc.csv"), WithInterval(start, end))
		require.ErrorIs(t, err, exchange.ErrInvalidTimeframe)
	})
}

func TestDownloader_Dataframe(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	feeder := &fakeFeeder{}
	df, err := NewDownloader(feeder).WithProgressOutput(nil).
		Dataframe(ctx, "BTCUSDT", "1h", WithInterval(start, start.Add(1992*time.Hour)))
	require.NoError(t, err)
	require.Equal(t, "BTCUSDT", df.Pair)
	require.Len(t, df.Close, 1993)
	require.Equal(t, 4, feeder.calls)
	require.Equal(t, start, df.Time[0])
	require.Equal(t, start.Add(1992*time.Hour), df.Time[1992])

	_, err = NewDownloader(&fakeFeeder{empty: true}).WithProgressOutput(nil).
		Dataframe(ctx, "BTCUSDT", "1h", WithInterval(start, start.Add(24*time.Hour)))
	require.ErrorIs(t, err, exchange.ErrInsufficientData)
}

func TestBatches(t *testing.T) {
	start := time.Unix(0, 0).UTC()

	windows := batches(start, start.Add(1000*time.Hour), time.Hour)
	require.Equal(t, []window{
		{start, start.Add(500*time.Hour - time.Second)},
		{start.Add(500 * time.Hour), start.Add(1000 * time.Hour)},
	}, windows)
	require.Equal(t, 1001, expected(start, start.Add(1000*time.Hour), time.Hour))

	require.Len(t, batches(start, start.Add(time.Hour), time.Hour), 1)
	require.Empty(t, batches(start, start, time.Hour))
}

func TestNewParameters(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	parameters := newParameters(now, nil)
	require.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), parameters.Start)
	require.Equal(t, now, parameters.End)

	parameters = newParameters(now, []Option{WithInterval(
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
	)})
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), parameters.Start)
	require.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), parameters.End)
}
