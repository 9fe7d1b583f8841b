// Package tui 时间管理模块
package tui

import (
	"time"
)

// 时间显示格式
const (
	timeLabelFormat = "2006-01-02 15:04:05"
	tableTimeFormat = "2006-01-02 15:04:05"
	axisDateFormat  = "01-02 15:04"
	axisTimeFormat  = "15:04:05"
)

// axisLabelFormat 根据窗口跨度选择X轴刻度格式
func axisLabelFormat(windowStart, windowEnd time.Time) string {
	if windowEnd.Sub(windowStart) >= 24*time.Hour {
		return axisDateFormat
	}
	return axisTimeFormat
}

// timestampToX 将时间戳转换为X坐标
func timestampToX(timestamp time.Time, windowStart, windowEnd time.Time, chartWidth int) int {
	windowDuration := windowEnd.Sub(windowStart)
	if windowDuration <= 0 {
		return 0
	}

	offset := timestamp.Sub(windowStart)
	if offset < 0 {
		return -1 // 在窗口左边界外
	}
	if offset > windowDuration {
		return chartWidth // 在窗口右边界外
	}

	// 将时间偏移转换为X坐标
	x := int(float64(offset) / float64(windowDuration) * float64(chartWidth))
	return x
}
