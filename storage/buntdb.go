package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/rodrigo-brito/ninjaplot/model"
)

// Bunt 基于 buntdb 的图表存储，值以 JSON 保存
type Bunt struct {
	mu     sync.Mutex
	lastID int64
	db     *buntdb.DB
}

// FromMemory 创建内存中的存储，进程退出后数据丢失
func FromMemory() (*Bunt, error) {
	return newBunt(":memory:")
}

// FromFile 使用本地文件持久化图表
func FromFile(file string) (*Bunt, error) {
	return newBunt(file)
}

func newBunt(sourceFile string) (*Bunt, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, err
	}

	storage := &Bunt{db: db}

	// 恢复已有数据的最大编号
	err = db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys("*", func(key, _ string) bool {
			if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > storage.lastID {
				storage.lastID = id
			}
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load charts: %w", err)
	}

	return storage, nil
}

// chartKey 补零保证按键排序与编号顺序一致
func chartKey(id int64) string {
	return fmt.Sprintf("%020d", id)
}

// CreateChart 归档一个图表并设置编号和创建时间
// 事务提交失败时编号和图表都保持不变
func (b *Bunt) CreateChart(chart *model.Chart) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	record := *chart
	record.ID = b.lastID + 1
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	content, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(chartKey(record.ID), string(content), nil)
		return err
	})
	if err != nil {
		return err
	}

	b.lastID = record.ID
	*chart = record
	return nil
}

// Chart 按编号查询图表
func (b *Bunt) Chart(id int64) (*model.Chart, error) {
	var chart model.Chart
	err := b.db.View(func(tx *buntdb.Tx) error {
		content, err := tx.Get(chartKey(id))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(content), &chart)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrChartNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// Charts 按编号顺序返回满足过滤条件的图表
func (b *Bunt) Charts(filters ...ChartFilter) ([]*model.Chart, error) {
	charts := make([]*model.Chart, 0)
	err := b.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Ascend("", func(_, value string) bool {
			var chart model.Chart
			if decodeErr = json.Unmarshal([]byte(value), &chart); decodeErr != nil {
				return false
			}

			if match(chart, filters) {
				charts = append(charts, &chart)
			}
			return true
		})
		if decodeErr != nil {
			return decodeErr
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return charts, nil
}

// Close 关闭底层数据库
func (b *Bunt) Close() error {
	return b.db.Close()
}
