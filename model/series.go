package model

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Series 类型，用于表示一系列时间序列的值。该类型使用了泛型，可以存储任何有序类型的数据。
// Series is a time series of values
type Series[T constraints.Ordered] []T

// Values returns the values of the series
// 返回时间序列的所有值
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
// 返回时间序列的长度（即值的个数）
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the last value of the series given a past index position
// 返回时间序列倒数第 position 个位置的值
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns the last values of the series given a size
// 返回时间序列最后 size 个值
func (s Series[T]) LastValues(size int) []T {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Min returns the lowest value, zero for an empty series
// 返回序列中的最小值
func (s Series[T]) Min() T {
	return lo.Min(s)
}

// Max returns the highest value, zero for an empty series
// 返回序列中的最大值
func (s Series[T]) Max() T {
	return lo.Max(s)
}

// Fill 返回长度为 size、所有元素都等于 value 的序列，用作填充曲线的基线
// Fill returns a series of size copies of value, used as a filled curve baseline
func Fill[T constraints.Ordered](value T, size int) Series[T] {
	series := make(Series[T], size)
	for i := range series {
		series[i] = value
	}
	return series
}

// NumDecPlaces returns the number of decimal places of a float64
// NumDecPlaces 用于计算一个浮点数的小数位数。
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}
