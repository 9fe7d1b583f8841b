// Package tui 图表渲染模块
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/Kevin-Rudy/godash/pkg/core"
)

// seriesColor 数据曲线的颜色
const seriesColor = "[green]"

// brailleCell 定义盲文字符的cell结构
type brailleCell struct {
	char  int
	color string
}

// 盲文点阵的映射关系 (2x4 grid)
var brailleDotMap = [4][2]int{
	{0b00000001, 0b00001000}, // (y:0, x:0), (y:0, x:1)
	{0b00000010, 0b00010000}, // (y:1, x:0), (y:1, x:1)
	{0b00000100, 0b00100000}, // (y:2, x:0), (y:2, x:1)
	{0b01000000, 0b10000000}, // (y:3, x:0), (y:3, x:1)
}

// validateChartSize 验证图表尺寸是否合理
func (t *TUI) validateChartSize(width, height int) string {
	if height < t.tuiConfig.MinChartHeight || width < t.tuiConfig.MinChartWidth {
		return "终端尺寸过小"
	}
	if width > t.tuiConfig.MaxChartSize || height > t.tuiConfig.MaxChartSize {
		return "终端尺寸过大"
	}
	return ""
}

// calculateValueRange 计算数据的值范围
func (t *TUI) calculateValueRange(rows []core.Row) (minVal, maxVal, valueRange float64, errMsg string) {
	found := false
	for _, row := range rows {
		if math.IsNaN(row.Value) || math.IsInf(row.Value, 0) {
			continue
		}
		if !found {
			minVal, maxVal = row.Value, row.Value
			found = true
			continue
		}
		if row.Value < minVal {
			minVal = row.Value
		}
		if row.Value > maxVal {
			maxVal = row.Value
		}
	}

	if !found {
		return 0, 0, 0, "当前窗口内没有数据"
	}

	// 如果所有值都一样，特殊处理
	if maxVal == minVal {
		maxVal++
		minVal--
	}

	// 采用缓冲算法
	maxVal = maxVal + math.Abs(maxVal)*t.tuiConfig.ValueBufferRatio
	minVal = minVal - math.Abs(minVal)*t.tuiConfig.ValueBufferRatio

	valueRange = maxVal - minVal
	if valueRange == 0 {
		valueRange = 1
	}

	return minVal, maxVal, valueRange, ""
}

// drawChart 在时间窗口内绘制数据曲线
func (t *TUI) drawChart(rows []core.Row, window core.Window, width, height int) string {
	// 检查图表尺寸是否合理
	if sizeErr := t.validateChartSize(width, height); sizeErr != "" {
		return sizeErr
	}

	if !window.Valid() {
		return "时间窗口无效：开始时间不早于结束时间"
	}

	// 计算值范围
	minVal, maxVal, valueRange, errMsg := t.calculateValueRange(rows)
	if errMsg != "" {
		return errMsg
	}

	// 动态计算Y轴标签宽度
	topLabel := formatValue(maxVal)
	bottomLabel := formatValue(minVal)
	maxLabelLen := len(topLabel)
	if len(bottomLabel) > maxLabelLen {
		maxLabelLen = len(bottomLabel)
	}
	yAxisLabelWidth := maxLabelLen + 2 // +2 为│分隔符和右侧空格留出缓冲

	// 准备画布尺寸
	chartBodyHeight := height - 2 // 为X轴和时间戳留出2行空间
	chartWidth := width - yAxisLabelWidth

	if chartBodyHeight <= 0 || chartWidth <= 0 {
		return "可绘制区域过小"
	}

	// 创建盲文画布
	canvas := make([][]brailleCell, chartWidth)
	for i := range canvas {
		canvas[i] = make([]brailleCell, chartBodyHeight)
	}

	lastX, lastY := -1, -1
	for _, row := range rows {
		if !window.Contains(row.Timestamp) {
			continue
		}
		if math.IsNaN(row.Value) || math.IsInf(row.Value, 0) {
			// 缺失值断开曲线
			lastX, lastY = -1, -1
			continue
		}

		// 计算X坐标（基于时间戳，使用高分辨率）
		currX := timestampToX(row.Timestamp, window.Start, window.End, chartWidth*2)
		if currX < 0 || currX >= chartWidth*2 {
			continue
		}

		// 计算Y坐标
		normalized := (row.Value - minVal) / valueRange
		currY := int((1.0 - normalized) * float64(chartBodyHeight*4-1))
		if currY < 0 {
			currY = 0
		} else if currY >= chartBodyHeight*4 {
			currY = chartBodyHeight*4 - 1
		}

		if lastX != -1 {
			drawBrailleLine(canvas, lastX, lastY, currX, currY, seriesColor)
		} else {
			plotBraillePoint(canvas, currX, currY, seriesColor)
		}
		lastX, lastY = currX, currY
	}

	// 构建输出字符串
	var lines []string

	// 预先计算Y轴标签位置
	yAxisLabelCount := 5
	if chartBodyHeight < yAxisLabelCount {
		yAxisLabelCount = chartBodyHeight
	}

	yAxisLabels := make(map[int]string)
	if yAxisLabelCount > 1 {
		for i := 0; i < yAxisLabelCount; i++ {
			normalized := float64(i) / float64(yAxisLabelCount-1)
			value := maxVal - normalized*valueRange
			pixelRow := int(normalized * float64(chartBodyHeight-1))
			yAxisLabels[pixelRow] = formatValue(value)
		}
	}

	// 绘制Y轴和图表主体
	for i := 0; i < chartBodyHeight; i++ {
		var line strings.Builder
		line.WriteString(fmt.Sprintf("[gray]%*s[white] [gray]│[white]", yAxisLabelWidth-2, yAxisLabels[i]))

		for j := 0; j < chartWidth; j++ {
			cell := canvas[j][i]
			if cell.char == 0 {
				line.WriteString(" ")
			} else {
				line.WriteString(cell.color + string(rune(0x2800+cell.char)) + "[white]")
			}
		}
		lines = append(lines, line.String())
	}

	// 绘制X轴
	xAxisLine := fmt.Sprintf("%-*s└%s", yAxisLabelWidth-1, "", strings.Repeat("─", chartWidth))
	lines = append(lines, "[gray]"+xAxisLine+"[white]")

	// X轴时间刻度
	layout := axisLabelFormat(window.Start, window.End)
	startTimeStr := window.Start.Format(layout)
	endTimeStr := window.End.Format(layout)

	spaceCount := chartWidth - len(startTimeStr) - len(endTimeStr)
	if spaceCount < 1 {
		spaceCount = 1
	}
	timeLine := fmt.Sprintf("%-*s%s%*s%s", yAxisLabelWidth, "", startTimeStr, spaceCount, "", endTimeStr)
	lines = append(lines, "[gray]"+timeLine+"[white]")

	// 保证X轴总是可见
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// plotBraillePoint 在画布上标记一个高分辨率点
func plotBraillePoint(canvas [][]brailleCell, x, y int, color string) {
	canvasX := x / 2
	canvasY := y / 4
	if canvasX < 0 || canvasX >= len(canvas) || canvasY < 0 || canvasY >= len(canvas[0]) {
		return
	}
	canvas[canvasX][canvasY].char |= brailleDotMap[y%4][x%2]
	canvas[canvasX][canvasY].color = color
}

// drawBrailleLine 使用布雷森汉姆算法在盲文画布上绘制线段
func drawBrailleLine(canvas [][]brailleCell, x1, y1, x2, y2 int, color string) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		if x >= 0 && y >= 0 {
			plotBraillePoint(canvas, x, y, color)
		}

		// 检查是否到达终点
		if x == x2 && y == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
