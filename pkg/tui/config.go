// Package tui 配置定义
package tui

import (
	"errors"
	"time"
)

// Config TUI组件的配置结构
type Config struct {
	DateFormat       string  // 日期输入框的格式
	MinChartWidth    int     // 最小图表宽度
	MinChartHeight   int     // 最小图表高度
	ValueBufferRatio float64 // 值缓冲比例
	MaxChartSize     int     // 最大图表尺寸（防止极端值）
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		DateFormat:       "2006-01-02", // 默认ISO日期
		MinChartWidth:    20,           // 最小图表宽度
		MinChartHeight:   5,            // 最小图表高度
		ValueBufferRatio: 0.01,         // 1%缓冲
		MaxChartSize:     1000,         // 最大图表尺寸
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.DateFormat == "" {
		return errors.New("日期格式不能为空")
	}

	// 日期格式必须能够往返解析
	ref := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if parsed, err := time.Parse(c.DateFormat, ref.Format(c.DateFormat)); err != nil || !parsed.Equal(ref) {
		return errors.New("日期格式无法表示完整的年月日")
	}

	if c.MinChartWidth <= 0 {
		return errors.New("最小图表宽度必须大于0")
	}

	if c.MinChartHeight <= 0 {
		return errors.New("最小图表高度必须大于0")
	}

	if c.ValueBufferRatio < 0 {
		return errors.New("值缓冲比例不能为负数")
	}

	if c.MaxChartSize <= 0 {
		return errors.New("最大图表尺寸必须大于0")
	}

	if c.MaxChartSize < c.MinChartWidth || c.MaxChartSize < c.MinChartHeight {
		return errors.New("最大图表尺寸不能小于最小图表尺寸")
	}

	return nil
}
