package model

import "time"

// Chart 归档的图表脚本
// Chart is an archived figure script
type Chart struct {
	ID        int64     `db:"id" json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `db:"name" json:"name" gorm:"index"`
	Pair      string    `db:"pair" json:"pair"`
	Timeframe string    `db:"timeframe" json:"timeframe"`
	Plots     int       `db:"plots" json:"plots"`
	Script    string    `db:"script" json:"script"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
