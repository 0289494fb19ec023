// Package download 从交易所分批获取K线，生成图表使用的数据帧或 CSV 文件
// Package download fetches candles from a feed in batches, either straight
// into a dataframe for charts or into a CSV file readable by exchange.CSVFeed.
package download

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/xhit/go-str2duration/v2"

	"github.com/rodrigo-brito/ninjaplot/exchange"
	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/service"
	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

// batchSize 单次请求的最大K线数量
const batchSize = 500

var csvHeader = []string{"time", "open", "close", "low", "high", "volume"}

// Downloader 通过 service.Feeder 分批获取K线
type Downloader struct {
	feeder   service.Feeder
	progress io.Writer
}

func NewDownloader(feeder service.Feeder) Downloader {
	return Downloader{
		feeder:   feeder,
		progress: os.Stderr,
	}
}

// WithProgressOutput 设置进度条的输出位置，nil 表示不显示进度
func (d Downloader) WithProgressOutput(w io.Writer) Downloader {
	d.progress = w
	return d
}

// Parameters 下载的时间范围
type Parameters struct {
	Start time.Time
	End   time.Time
}

type Option func(*Parameters)

// WithInterval 设置下载的起止时间
func WithInterval(start, end time.Time) Option {
	return func(parameters *Parameters) {
		parameters.Start = start
		parameters.End = end
	}
}

// WithDays 下载最近几天的数据
func WithDays(days int) Option {
	return func(parameters *Parameters) {
		parameters.Start = time.Now().AddDate(0, 0, -days)
		parameters.End = time.Now()
	}
}

// newParameters 默认下载最近一个月，起点对齐到当天零点，过去的终点同样对齐
func newParameters(now time.Time, options []Option) Parameters {
	parameters := Parameters{
		Start: now.AddDate(0, -1, 0),
		End:   now,
	}
	for _, option := range options {
		option(&parameters)
	}

	parameters.Start = truncateDay(parameters.Start)
	if parameters.End.Before(now) {
		parameters.End = truncateDay(parameters.End)
	} else {
		parameters.End = now
	}
	return parameters
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// window 一次请求覆盖的时间范围，两端都包含
type window struct {
	start, end time.Time
}

// batches 把 [start, end] 切分为最多 batchSize 根K线的窗口，相邻窗口不重叠
func batches(start, end time.Time, interval time.Duration) []window {
	windows := make([]window, 0)
	step := interval * batchSize
	for begin := start; begin.Before(end); begin = begin.Add(step) {
		next := begin.Add(step)
		if next.Before(end) {
			windows = append(windows, window{begin, next.Add(-time.Second)})
			continue
		}
		windows = append(windows, window{begin, end})
	}
	return windows
}

// expected 返回时间范围内应有的K线数量
func expected(start, end time.Time, interval time.Duration) int {
	return int(end.Sub(start)/interval) + 1
}

// Candles 按时间顺序获取交易对在时间范围内的全部K线
func (d Downloader) Candles(ctx context.Context, pair, timeframe string, options ...Option) ([]model.Candle, error) {
	interval, err := str2duration.ParseDuration(timeframe)
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("%w: %s", exchange.ErrInvalidTimeframe, timeframe)
	}

	parameters := newParameters(time.Now(), options)
	total := expected(parameters.Start, parameters.End, interval)
	log.Infof("Downloading %d candles of %s for %s", total, timeframe, pair)

	progress := d.progress
	if progress == nil {
		progress = io.Discard
	}
	progressBar := progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription(pair),
		progressbar.OptionShowCount(),
	)

	candles := make([]model.Candle, 0, total)
	for _, w := range batches(parameters.Start, parameters.End, interval) {
		batch, err := d.feeder.CandlesByPeriod(ctx, pair, timeframe, w.start, w.end)
		if err != nil {
			return nil, fmt.Errorf("download %s %s: %w", pair, timeframe, err)
		}
		candles = append(candles, batch...)

		if err := progressBar.Add(len(batch)); err != nil {
			log.Warnf("update progresbar fail: %s", err.Error())
		}
	}

	if err := progressBar.Close(); err != nil {
		log.Warnf("close progresbar fail: %s", err.Error())
	}

	if missing := total - len(candles); missing > 0 {
		log.Warnf("%d missing candles", missing)
	}
	return candles, nil
}

// Dataframe 直接下载为数据帧，供图表使用
func (d Downloader) Dataframe(ctx context.Context, pair, timeframe string, options ...Option) (model.Dataframe, error) {
	candles, err := d.Candles(ctx, pair, timeframe, options...)
	if err != nil {
		return model.Dataframe{}, err
	}

	df := model.FromCandles(pair, candles)
	if len(df.Close) == 0 {
		return model.Dataframe{}, fmt.Errorf("%w: %s %s", exchange.ErrInsufficientData, pair, timeframe)
	}
	return df, nil
}

// Download 下载K线并写入 CSV 文件，价格按交易对的报价精度格式化
func (d Downloader) Download(ctx context.Context, pair, timeframe string, output string, options ...Option) error {
	candles, err := d.Candles(ctx, pair, timeframe, options...)
	if err != nil {
		return err
	}

	recordFile, err := os.Create(output)
	if err != nil {
		return err
	}
	defer recordFile.Close()

	if err := writeCSV(recordFile, candles, d.feeder.AssetsInfo(pair).QuotePrecision); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.Info("Done!")
	return nil
}

func writeCSV(w io.Writer, candles []model.Candle, precision int) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, candle := range candles {
		if err := writer.Write(candle.ToSlice(precision)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
