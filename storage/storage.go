// Package storage 归档生成的图表脚本，支持 buntdb 与 SQL 两种后端
package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/rodrigo-brito/ninjaplot/model"
)

var ErrChartNotFound = errors.New("chart not found")

// ChartFilter 过滤图表的函数类型
type ChartFilter func(model.Chart) bool

// Storage 存储接口，包括归档图表、按编号查询和获取图表列表
type Storage interface {
	CreateChart(chart *model.Chart) error
	Chart(id int64) (*model.Chart, error)
	Charts(filters ...ChartFilter) ([]*model.Chart, error)
}

// WithName 按名称过滤，忽略大小写
func WithName(name string) ChartFilter {
	return func(chart model.Chart) bool {
		return strings.EqualFold(chart.Name, name)
	}
}

// WithPair 根据交易对过滤图表的函数，可传入多个交易对
func WithPair(pairs ...string) ChartFilter {
	return func(chart model.Chart) bool {
		for _, pair := range pairs {
			if strings.EqualFold(pair, chart.Pair) {
				return true
			}
		}
		return false
	}
}

// WithCreatedAfter 只保留在给定时间之后归档的图表
func WithCreatedAfter(t time.Time) ChartFilter {
	return func(chart model.Chart) bool {
		return chart.CreatedAt.After(t)
	}
}

// match 判断图表是否满足所有过滤条件
func match(chart model.Chart, filters []ChartFilter) bool {
	for _, filter := range filters {
		if !filter(chart) {
			return false
		}
	}
	return true
}
