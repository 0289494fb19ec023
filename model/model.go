package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// AssetInfo 资产信息，绘图和下载时用于确定价格精度
// AssetInfo describes a pair, used to format prices with the right precision
type AssetInfo struct {
	BaseAsset  string // 基础资产
	QuoteAsset string // 报价资产(btc/USDT中的usdt)

	TickSize float64 // 刻度:价格变动的最小单位

	QuotePrecision     int // 报价精度
	BaseAssetPrecision int // 基础资产精度
}

// Dataframe 数据帧
type Dataframe struct {
	// 交易对
	Pair string

	Close  Series[float64] // 收盘价序列
	Open   Series[float64] // 开盘价序列
	High   Series[float64] // 最高价序列
	Low    Series[float64] // 最低价序列
	Volume Series[float64] // 交易量序列

	Time       []time.Time // 时间戳序列
	LastUpdate time.Time   // 最后更新时间

	// 用户元数据，例如 CSV 中的附加列
	// Custom user metadata
	Metadata map[string]Series[float64]
}

// FromCandles 按顺序把K线转换为数据帧，只保留完整的K线
// FromCandles builds a dataframe from complete candles, in order
func FromCandles(pair string, candles []Candle) Dataframe {
	df := Dataframe{
		Pair:     pair,
		Metadata: make(map[string]Series[float64]),
	}

	for _, candle := range candles {
		if !candle.Complete {
			continue
		}
		df.Close = append(df.Close, candle.Close)
		df.Open = append(df.Open, candle.Open)
		df.High = append(df.High, candle.High)
		df.Low = append(df.Low, candle.Low)
		df.Volume = append(df.Volume, candle.Volume)
		df.Time = append(df.Time, candle.Time)
		df.LastUpdate = candle.Time
		for key, value := range candle.Metadata {
			df.Metadata[key] = append(df.Metadata[key], value)
		}
	}

	return df
}

// Unix 返回以秒为单位的时间戳序列，作为图表的 X 坐标
// Unix returns the candle times as unix seconds, the X coordinate of charts
func (df Dataframe) Unix() Series[float64] {
	series := make(Series[float64], len(df.Time))
	for i, t := range df.Time {
		series[i] = float64(t.Unix())
	}
	return series
}

// Sample 从指定位置开始返回包含原始数据子集的新 Dataframe。
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions
	if start <= 0 {
		return df
	}

	// 创建一个新的 Dataframe，包含指定位置开始的一部分数据。
	sample := Dataframe{
		Pair:       df.Pair,
		Close:      df.Close.LastValues(positions),
		Open:       df.Open.LastValues(positions),
		High:       df.High.LastValues(positions),
		Low:        df.Low.LastValues(positions),
		Volume:     df.Volume.LastValues(positions),
		Time:       df.Time[start:],
		LastUpdate: df.LastUpdate,
		Metadata:   make(map[string]Series[float64]),
	}

	for key := range df.Metadata {
		sample.Metadata[key] = df.Metadata[key].LastValues(positions)
	}

	return sample
}

// Candle 表示一个K线数据。
type Candle struct {
	Pair      string    // 交易对
	Time      time.Time // 时间
	UpdatedAt time.Time // 更新时间
	Open      float64   // 开盘价
	Close     float64   // 收盘价
	Low       float64   // 最低价
	High      float64   // 最高价
	Volume    float64   // 成交量
	Complete  bool      // 是否完整

	// 来自CSV输入的附加列
	// Aditional collums from CSV inputs
	Metadata map[string]float64 // 元数据
}

// Empty 判断该K线是否为空
func (c Candle) Empty() bool {
	return c.Pair == "" && c.Close == 0 && c.Open == 0 && c.Volume == 0
}

// ToSlice 将K线转换为 CSV 行
func (c Candle) ToSlice(precision int) []string {
	return []string{
		fmt.Sprintf("%d", c.Time.Unix()),
		strconv.FormatFloat(c.Open, 'f', precision, 64),
		strconv.FormatFloat(c.Close, 'f', precision, 64),
		strconv.FormatFloat(c.Low, 'f', precision, 64),
		strconv.FormatFloat(c.High, 'f', precision, 64),
		strconv.FormatFloat(c.Volume, 'f', precision, 64),
	}
}

// HeikinAshi 表示一个平均柱（平均柱图）
type HeikinAshi struct {
	PreviousHACandle Candle // 前一个平均柱
}

// NewHeikinAshi 创建一个新的平均柱。
func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// ToHeikinAshi 将K线转换为平均柱
func (c Candle) ToHeikinAshi(ha *HeikinAshi) Candle {
	haCandle := ha.CalculateHeikinAshi(c)

	return Candle{
		Pair:      c.Pair,
		Open:      haCandle.Open,
		High:      haCandle.High,
		Low:       haCandle.Low,
		Close:     haCandle.Close,
		Volume:    c.Volume,
		Complete:  c.Complete,
		Time:      c.Time,
		UpdatedAt: c.UpdatedAt,
		Metadata:  c.Metadata,
	}
}

// CalculateHeikinAshi 计算平均柱。
func (ha *HeikinAshi) CalculateHeikinAshi(c Candle) Candle {
	var hkCandle Candle

	openValue := ha.PreviousHACandle.Open
	closeValue := ha.PreviousHACandle.Close

	// 第一个平均柱使用当前K线计算
	// First HA candle is calculated using current candle
	if ha.PreviousHACandle.Empty() {
		openValue = c.Open
		closeValue = c.Close
	}

	hkCandle.Open = (openValue + closeValue) / 2
	hkCandle.Close = (c.Open + c.High + c.Low + c.Close) / 4
	hkCandle.High = math.Max(c.High, math.Max(hkCandle.Open, hkCandle.Close))
	hkCandle.Low = math.Min(c.Low, math.Min(hkCandle.Open, hkCandle.Close))
	ha.PreviousHACandle = hkCandle

	return hkCandle
}
