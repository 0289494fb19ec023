package exchange

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"

	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

const defaultRetries = 3

// Binance 币安现货行情的只读封装，只用于获取K线
type Binance struct {
	client     *binance.Client
	assetsInfo map[string]model.AssetInfo
	HeikinAshi bool
	MaxRetries int

	APIKey    string
	APISecret string
}

// BinanceOption 配置 Binance 实例的选项
type BinanceOption func(*Binance)

// WithBinanceHeikinAshiCandle will use Heikin Ashi candle instead of regular candle
// WithBinanceHeikinAshiCandle 使用 Heikin Ashi 烛形图
func WithBinanceHeikinAshiCandle() BinanceOption {
	return func(b *Binance) {
		b.HeikinAshi = true
	}
}

// WithBinanceCredentials 设置 API 密钥，公开行情接口可以不设置
func WithBinanceCredentials(key, secret string) BinanceOption {
	return func(b *Binance) {
		b.APIKey = key
		b.APISecret = secret
	}
}

// WithBinanceRetries 设置请求失败后的最大重试次数
func WithBinanceRetries(retries int) BinanceOption {
	return func(b *Binance) {
		b.MaxRetries = retries
	}
}

// NewBinance will create a new Binance spot feed
// 创建实例时会 ping 交易所并加载所有交易对的精度信息
func NewBinance(ctx context.Context, options ...BinanceOption) (*Binance, error) {
	exchange := &Binance{MaxRetries: defaultRetries}
	for _, option := range options {
		option(exchange)
	}

	exchange.client = binance.NewClient(exchange.APIKey, exchange.APISecret)
	err := exchange.client.NewPingService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance ping fail: %w", err)
	}

	results, err := exchange.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance exchange info: %w", err)
	}

	exchange.assetsInfo = make(map[string]model.AssetInfo)
	for _, info := range results.Symbols {
		assetInfo := model.AssetInfo{
			BaseAsset:          info.BaseAsset,
			QuoteAsset:         info.QuoteAsset,
			BaseAssetPrecision: info.BaseAssetPrecision,
			QuotePrecision:     info.QuotePrecision,
		}
		for _, filter := range info.Filters {
			if typ, ok := filter["filterType"]; ok && typ == string(binance.SymbolFilterTypePriceFilter) {
				if tickSize, ok := filter["tickSize"].(string); ok {
					assetInfo.TickSize, _ = strconv.ParseFloat(tickSize, 64)
				}
			}
		}
		exchange.assetsInfo[info.Symbol] = assetInfo
	}

	log.Info("[SETUP] Using Binance exchange")

	return exchange, nil
}

// AssetsInfo 返回交易对的精度信息，未知交易对使用默认值
func (b *Binance) AssetsInfo(pair string) model.AssetInfo {
	if info, ok := b.assetsInfo[pair]; ok {
		return info
	}
	return defaultAssetInfo(pair)
}

// klines 执行K线请求，失败时按指数退避重试
func (b *Binance) klines(ctx context.Context, service *binance.KlinesService) ([]*binance.Kline, error) {
	ba := &backoff.Backoff{
		Min: 100 * time.Millisecond,
		Max: 5 * time.Second,
	}

	for {
		data, err := service.Do(ctx)
		if err == nil {
			return data, nil
		}

		if ctx.Err() != nil || int(ba.Attempt()) >= b.MaxRetries {
			return nil, err
		}

		wait := ba.Duration()
		log.Warnf("binance klines: %s, retrying in %s", err, wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// toCandles 转换K线数据，需要时转换为 Heikin Ashi
func (b *Binance) toCandles(pair string, data []*binance.Kline) []model.Candle {
	candles := make([]model.Candle, 0, len(data))
	ha := model.NewHeikinAshi()
	for _, d := range data {
		candle := CandleFromKline(pair, *d)

		if b.HeikinAshi {
			candle = candle.ToHeikinAshi(ha)
		}

		candles = append(candles, candle)
	}
	return candles
}

// CandlesByLimit 获取指定交易对最近的 limit 根完整K线
func (b *Binance) CandlesByLimit(ctx context.Context, pair, period string, limit int) ([]model.Candle, error) {
	data, err := b.klines(ctx, b.client.NewKlinesService().
		Symbol(pair).
		Interval(period).
		Limit(limit+1))
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientData, pair)
	}

	// discard last candle, because it is incomplete
	candles := b.toCandles(pair, data)
	return candles[:len(candles)-1], nil
}

// CandlesByPeriod 获取指定时间范围内的K线
func (b *Binance) CandlesByPeriod(ctx context.Context, pair, period string,
	start, end time.Time) ([]model.Candle, error) {

	data, err := b.klines(ctx, b.client.NewKlinesService().
		Symbol(pair).
		Interval(period).
		StartTime(start.UnixNano()/int64(time.Millisecond)).
		EndTime(end.UnixNano()/int64(time.Millisecond)))
	if err != nil {
		return nil, err
	}

	return b.toCandles(pair, data), nil
}

// CandleFromKline 从现货K线数据创建 Candle 模型
func CandleFromKline(pair string, k binance.Kline) model.Candle {
	var err error
	t := time.Unix(0, k.OpenTime*int64(time.Millisecond)).UTC()
	candle := model.Candle{Pair: pair, Time: t, UpdatedAt: t}
	candle.Open, err = strconv.ParseFloat(k.Open, 64)
	log.CheckErr(log.WarnLevel, err)
	candle.Close, err = strconv.ParseFloat(k.Close, 64)
	log.CheckErr(log.WarnLevel, err)
	candle.High, err = strconv.ParseFloat(k.High, 64)
	log.CheckErr(log.WarnLevel, err)
	candle.Low, err = strconv.ParseFloat(k.Low, 64)
	log.CheckErr(log.WarnLevel, err)
	candle.Volume, err = strconv.ParseFloat(k.Volume, 64)
	log.CheckErr(log.WarnLevel, err)
	candle.Complete = true
	candle.Metadata = make(map[string]float64)
	return candle
}
