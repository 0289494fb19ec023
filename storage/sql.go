package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rodrigo-brito/ninjaplot/model"
)

// SQL 基于 gorm 的图表存储
type SQL struct {
	db *gorm.DB
}

// FromSQL 使用任意 gorm 方言创建存储，并自动迁移表结构
// e.g. FromSQL(sqlite.Open("charts.db"))
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (*SQL, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Chart{})
	if err != nil {
		return nil, fmt.Errorf("migrate charts: %w", err)
	}

	return &SQL{db: db}, nil
}

// CreateChart 归档一个图表，编号由数据库生成
func (s *SQL) CreateChart(chart *model.Chart) error {
	return s.db.Create(chart).Error
}

// Chart 按编号查询图表
func (s *SQL) Chart(id int64) (*model.Chart, error) {
	var chart model.Chart
	err := s.db.First(&chart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrChartNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// Charts 按编号顺序返回满足过滤条件的图表
func (s *SQL) Charts(filters ...ChartFilter) ([]*model.Chart, error) {
	result := make([]*model.Chart, 0)
	if err := s.db.Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	charts := make([]*model.Chart, 0, len(result))
	for _, chart := range result {
		if match(*chart, filters) {
			charts = append(charts, chart)
		}
	}
	return charts, nil
}

// Close 关闭数据库连接
func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
