// Package exchange 提供图表使用的K线数据源：CSV 文件与币安现货接口
// Package exchange provides the candle feeds charts are built from: CSV files
// and the Binance spot API.
package exchange

import (
	"errors"
	"strings"

	"github.com/rodrigo-brito/ninjaplot/model"
	"github.com/rodrigo-brito/ninjaplot/service"
)

var (
	_ service.Feeder = (*CSVFeed)(nil)
	_ service.Feeder = (*Binance)(nil)
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrInvalidPair      = errors.New("invalid pair")
)

// knownQuotes 按长度从长到短排列，保证 FDUSD 优先于 USD 之类的匹配
var knownQuotes = []string{"FDUSD", "USDT", "BUSD", "USDC", "TUSD", "BTC", "ETH", "BNB", "EUR", "TRY", "BRL"}

// SplitAssetQuote 根据交易对获取对应的资产和报价货币
// SplitAssetQuote splits a pair such as BTCUSDT into BTC and USDT. Both are
// empty when no known quote matches.
func SplitAssetQuote(pair string) (asset string, quote string) {
	pair = strings.ToUpper(pair)
	for _, q := range knownQuotes {
		if strings.HasSuffix(pair, q) && len(pair) > len(q) {
			return strings.TrimSuffix(pair, q), q
		}
	}
	return "", ""
}

// defaultAssetInfo 未知交易对使用 8 位精度
func defaultAssetInfo(pair string) model.AssetInfo {
	asset, quote := SplitAssetQuote(pair)
	return model.AssetInfo{
		BaseAsset:          asset,
		QuoteAsset:         quote,
		TickSize:           0.00000001,
		QuotePrecision:     8,
		BaseAssetPrecision: 8,
	}
}
