// Package core 定义了仪表盘的核心数据结构和接口
// 这些接口保证了TUI与具体数据源的完全解耦
package core

import (
	"time"
)

// Row 表示数据集中的一行
type Row struct {
	Timestamp time.Time // 采样时间
	Value     float64   // 采样值
}

// Window 表示解析后的时间窗口 [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Valid 判断窗口是否满足 Start < End
func (w Window) Valid() bool {
	return w.Start.Before(w.End)
}

// Duration 返回窗口跨度，倒置窗口返回负值
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains 判断时间戳是否严格落在窗口内部（两端均不包含）
func (w Window) Contains(ts time.Time) bool {
	return ts.After(w.Start) && ts.Before(w.End)
}

// DataSource 定义了数据源的标准接口
// 任何数据提供者（合成数据、真实遥测等）都应该实现这个接口
type DataSource interface {
	// Rows 返回按时间戳升序排列的只读快照
	// 调用方不得修改返回的切片
	Rows() []Row
}
