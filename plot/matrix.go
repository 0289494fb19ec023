package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// Matrix 按行组织的数据表，每一列在写入前乘以对应的比例因子
// Matrix is a row oriented data table. Every column is multiplied by its
// scale factor when the table is built.
type Matrix struct {
	rows  int
	cols  int
	dense *mat.Dense
}

// NewMatrix zips columns position-wise. The table has as many rows as the
// shortest column; extra values in longer columns are dropped. Columns
// without a matching entry in factors use a factor of 1.
func NewMatrix(factors []float64, columns ...[]float64) *Matrix {
	m := &Matrix{cols: len(columns)}
	if m.cols == 0 {
		return m
	}

	m.rows = lo.Min(lo.Map(columns, func(column []float64, _ int) int {
		return len(column)
	}))
	if m.rows == 0 {
		return m
	}

	m.dense = mat.NewDense(m.rows, m.cols, nil)
	for j, column := range columns {
		factor := 1.0
		if j < len(factors) {
			factor = factors[j]
		}
		for i := 0; i < m.rows; i++ {
			m.dense.Set(i, j, column[i]*factor)
		}
	}

	return m
}

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the scaled value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.dense)
}

// Using returns the gnuplot column selector, e.g. "1:2:3".
func (m *Matrix) Using() string {
	columns := make([]string, m.cols)
	for j := range columns {
		columns[j] = strconv.Itoa(j + 1)
	}
	return strings.Join(columns, ":")
}

// Datablock 以 gnuplot 内联数据块的形式输出数据表
// Datablock renders the table as a named gnuplot inline data block.
func (m *Matrix) Datablock(name string) string {
	var block strings.Builder
	fmt.Fprintf(&block, "$%s << EOD\n", name)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				block.WriteByte(' ')
			}
			block.WriteString(strconv.FormatFloat(m.dense.At(i, j), 'g', -1, 64))
		}
		block.WriteByte('\n')
	}
	block.WriteString("EOD\n")
	return block.String()
}
