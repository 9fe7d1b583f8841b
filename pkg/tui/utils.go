// Package tui 工具函数和辅助类型
package tui

import (
	"fmt"
	"math"
)

// formatValue 格式化数据值，整数不带小数位
func formatValue(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}

	if value == math.Trunc(value) && math.Abs(value) < 1e9 {
		return fmt.Sprintf("%.0f", value)
	}
	return fmt.Sprintf("%.2f", value)
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
