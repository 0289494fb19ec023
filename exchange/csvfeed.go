package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/rodrigo-brito/ninjaplot/model"
)

// PairFeed 表示交易对的信息
type PairFeed struct {
	Pair       string // 交易对名称
	File       string // CSV 文件路径
	Timeframe  string // 时间框架
	HeikinAshi bool   // 是否使用平滑后的 HeikinAshi 数据
}

// CSVFeed 管理多个交易对的历史数据
type CSVFeed struct {
	Feeds               map[string]PairFeed       // 交易对到其历史数据的映射
	CandlePairTimeFrame map[string][]model.Candle // 蜡烛图时间框架到对应数据的映射
}

// AssetsInfo 根据交易对名称返回一个默认的资产信息结构体
func (c CSVFeed) AssetsInfo(pair string) model.AssetInfo {
	return defaultAssetInfo(pair)
}

// parseHeaders 用于解析 CSV 文件的表头
func parseHeaders(headers []string) (index map[string]int, additional []string, ok bool) {
	headerMap := map[string]int{
		"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
	}

	_, err := strconv.Atoi(headers[0])
	if err == nil {
		return headerMap, additional, false
	}

	for index, h := range headers {
		if _, ok := headerMap[h]; !ok {
			additional = append(additional, h)
		}
		headerMap[h] = index
	}

	return headerMap, additional, true
}

// readCandles 读取一个 CSV 文件中的全部K线
func readCandles(feed PairFeed) ([]model.Candle, error) {
	csvFile, err := os.Open(feed.File)
	if err != nil {
		return nil, err
	}
	defer csvFile.Close()

	csvLines, err := csv.NewReader(csvFile).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", feed.File, err)
	}
	if len(csvLines) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInsufficientData, feed.File)
	}

	// map each header label with its index
	headerMap, additionalHeaders, hasCustomHeaders := parseHeaders(csvLines[0])
	if hasCustomHeaders {
		csvLines = csvLines[1:]
	}

	parse := func(line []string, header string) (float64, error) {
		value, err := strconv.ParseFloat(line[headerMap[header]], 64)
		if err != nil {
			return 0, fmt.Errorf("parse %s in %s: %w", header, feed.File, err)
		}
		return value, nil
	}

	candles := make([]model.Candle, 0, len(csvLines))
	ha := model.NewHeikinAshi()
	for _, line := range csvLines {
		timestamp, err := strconv.Atoi(line[headerMap["time"]])
		if err != nil {
			return nil, fmt.Errorf("parse time in %s: %w", feed.File, err)
		}

		candle := model.Candle{
			Time:      time.Unix(int64(timestamp), 0).UTC(),
			UpdatedAt: time.Unix(int64(timestamp), 0).UTC(),
			Pair:      feed.Pair,
			Complete:  true,
		}

		if candle.Open, err = parse(line, "open"); err != nil {
			return nil, err
		}
		if candle.Close, err = parse(line, "close"); err != nil {
			return nil, err
		}
		if candle.Low, err = parse(line, "low"); err != nil {
			return nil, err
		}
		if candle.High, err = parse(line, "high"); err != nil {
			return nil, err
		}
		if candle.Volume, err = parse(line, "volume"); err != nil {
			return nil, err
		}

		if hasCustomHeaders {
			candle.Metadata = make(map[string]float64)
			for _, header := range additionalHeaders {
				if candle.Metadata[header], err = parse(line, header); err != nil {
					return nil, err
				}
			}
		}

		if feed.HeikinAshi {
			candle = candle.ToHeikinAshi(ha)
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// NewCSVFeed 根据给定的时间框架和一组 PairFeed，创建一个 CSVFeed 实例，并从 CSV 文件中读取历史数据
// NewCSVFeed loads every feed and resamples it to targetTimeframe
func NewCSVFeed(targetTimeframe string, feeds ...PairFeed) (*CSVFeed, error) {
	csvFeed := &CSVFeed{
		Feeds:               make(map[string]PairFeed),
		CandlePairTimeFrame: make(map[string][]model.Candle),
	}

	for _, feed := range feeds {
		csvFeed.Feeds[feed.Pair] = feed

		candles, err := readCandles(feed)
		if err != nil {
			return nil, err
		}

		csvFeed.CandlePairTimeFrame[csvFeed.feedTimeframeKey(feed.Pair, feed.Timeframe)] = candles

		err = csvFeed.resample(feed.Pair, feed.Timeframe, targetTimeframe)
		if err != nil {
			return nil, err
		}
	}

	return csvFeed, nil
}

// feedTimeframeKey 生成用于唯一标识交易对和时间框架的键
func (c CSVFeed) feedTimeframeKey(pair, timeframe string) string {
	return fmt.Sprintf("%s--%s", pair, timeframe)
}

// Limit 只保留最后 duration 时间范围内的数据
func (c *CSVFeed) Limit(duration time.Duration) *CSVFeed {
	for key, candles := range c.CandlePairTimeFrame {
		if len(candles) == 0 {
			continue
		}
		start := candles[len(candles)-1].Time.Add(-duration)
		c.CandlePairTimeFrame[key] = lo.Filter(candles, func(candle model.Candle, _ int) bool {
			return candle.Time.After(start)
		})
	}
	return c
}

// isFirstCandlePeriod 判断给定时间是否为目标时间框架的第一个周期
func isFirstCandlePeriod(t time.Time, fromTimeframe, targetTimeframe string) (bool, error) {
	fromDuration, err := str2duration.ParseDuration(fromTimeframe)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidTimeframe, fromTimeframe)
	}

	prev := t.Add(-fromDuration).UTC()

	return isLastCandlePeriod(prev, fromTimeframe, targetTimeframe)
}

// isLastCandlePeriod 判断给定时间点是否是指定时间框架的最后一个蜡烛图周期
// t: 要检查的时间点
// fromTimeframe: 当前时间框架，例如："1m"、"5m"、"1h"等
// targetTimeframe: 目标时间框架，需要确定给定时间点是否是其最后一个周期
func isLastCandlePeriod(t time.Time, fromTimeframe, targetTimeframe string) (bool, error) {
	if fromTimeframe == targetTimeframe {
		return true, nil
	}

	fromDuration, err := str2duration.ParseDuration(fromTimeframe)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidTimeframe, fromTimeframe)
	}

	next := t.Add(fromDuration).UTC()

	switch targetTimeframe {
	case "1m":
		return next.Second()%60 == 0, nil
	case "5m":
		return next.Minute()%5 == 0, nil
	case "10m":
		return next.Minute()%10 == 0, nil
	case "15m":
		return next.Minute()%15 == 0, nil
	case "30m":
		return next.Minute()%30 == 0, nil
	case "1h":
		return next.Minute()%60 == 0, nil
	case "2h":
		return next.Minute() == 0 && next.Hour()%2 == 0, nil
	case "4h":
		return next.Minute() == 0 && next.Hour()%4 == 0, nil
	case "12h":
		return next.Minute() == 0 && next.Hour()%12 == 0, nil
	case "1d":
		return next.Minute() == 0 && next.Hour()%24 == 0, nil
	case "1w":
		return next.Minute() == 0 && next.Hour()%24 == 0 && next.Weekday() == time.Sunday, nil
	}

	return false, fmt.Errorf("%w: %s", ErrInvalidTimeframe, targetTimeframe)
}

// resample 根据目标时间框架重新采样历史数据
func (c *CSVFeed) resample(pair, sourceTimeframe, targetTimeframe string) error {
	sourceKey := c.feedTimeframeKey(pair, sourceTimeframe)
	targetKey := c.feedTimeframeKey(pair, targetTimeframe)
	source := c.CandlePairTimeFrame[sourceKey]

	var i int
	for ; i < len(source); i++ {
		if ok, err := isFirstCandlePeriod(source[i].Time, sourceTimeframe, targetTimeframe); err != nil {
			return err
		} else if ok {
			break
		}
	}

	candles := make([]model.Candle, 0)
	for ; i < len(source); i++ {
		candle := source[i]
		last, err := isLastCandlePeriod(candle.Time, sourceTimeframe, targetTimeframe)
		if err != nil {
			return err
		}
		candle.Complete = last

		lastIndex := len(candles) - 1
		if lastIndex >= 0 && !candles[lastIndex].Complete {
			candle.Time = candles[lastIndex].Time
			candle.Open = candles[lastIndex].Open
			candle.High = math.Max(candles[lastIndex].High, candle.High)
			candle.Low = math.Min(candles[lastIndex].Low, candle.Low)
			candle.Volume += candles[lastIndex].Volume
		}
		candles = append(candles, candle)
	}

	// remove last candle if not complete
	if len(candles) > 0 && !candles[len(candles)-1].Complete {
		candles = candles[:len(candles)-1]
	}

	// 合并过程中的中间K线不完整，只保留完整的K线
	c.CandlePairTimeFrame[targetKey] = lo.Filter(candles, func(candle model.Candle, _ int) bool {
		return candle.Complete
	})

	return nil
}

// CandlesByPeriod 根据指定的时间范围和时间框架，返回历史蜡烛数据
func (c CSVFeed) CandlesByPeriod(_ context.Context, pair, timeframe string,
	start, end time.Time) ([]model.Candle, error) {

	key := c.feedTimeframeKey(pair, timeframe)
	candles := make([]model.Candle, 0)
	for _, candle := range c.CandlePairTimeFrame[key] {
		if candle.Time.Before(start) || candle.Time.After(end) {
			continue
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

// CandlesByLimit 返回最后 limit 根K线
// CandlesByLimit returns the last limit candles of the feed
func (c *CSVFeed) CandlesByLimit(_ context.Context, pair, timeframe string, limit int) ([]model.Candle, error) {
	key := c.feedTimeframeKey(pair, timeframe)
	candles := c.CandlePairTimeFrame[key]
	if len(candles) < limit {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientData, pair)
	}
	return candles[len(candles)-limit:], nil
}

// Dataframe 返回交易对在指定时间框架下的完整数据帧
func (c CSVFeed) Dataframe(pair, timeframe string) model.Dataframe {
	return model.FromCandles(pair, c.CandlePairTimeFrame[c.feedTimeframeKey(pair, timeframe)])
}
