// Package service 定义图表工具依赖的外部服务接口
package service

import (
	"context"
	"time"

	"github.com/rodrigo-brito/ninjaplot/model"
)

// Feeder 获取市场数据的方法，如获取资产信息、获取K线数据等
type Feeder interface {
	AssetsInfo(pair string) model.AssetInfo
	CandlesByPeriod(ctx context.Context, pair, period string, start, end time.Time) ([]model.Candle, error)
	CandlesByLimit(ctx context.Context, pair, period string, limit int) ([]model.Candle, error)
}

// Notifier 文本和图表通知
type Notifier interface {
	Notify(string)
	SendChart(path, caption string) error
}
