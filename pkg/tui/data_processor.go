// Package tui 数据处理模块
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/core"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"go.uber.org/zap"
)

// render 一次完整的渲染：解析窗口、过滤数据、刷新所有视图
func (t *TUI) render() {
	t.refreshData()

	if t.testMode {
		return
	}

	t.status.SetText(t.statusText())
	t.updateChart()
	t.updateTable()
}

// refreshData 根据选择器当前状态重新计算窗口和过滤结果
func (t *TUI) refreshData() {
	t.resolution = t.selector.Resolve()
	t.filtered = core.FilterWindow(t.dataSource.Rows(), t.resolution.Window)
	t.summary = core.Summarize(t.filtered)

	t.logger.Debug("render pass",
		zap.String("mode", string(t.resolution.Mode)),
		zap.Time("start", t.resolution.Window.Start),
		zap.Time("end", t.resolution.Window.End),
		zap.Int("rows", len(t.filtered)),
	)
}

// applyDateText 解析两个日期输入并设置显式范围
// 无法解析的输入不计入日期个数，此时选择器保持原状态
func (t *TUI) applyDateText(startText, endText string) bool {
	dates := t.parseDates(startText, endText)
	t.selector.SetExplicitRange(dates...)

	if len(dates) != 2 {
		t.logger.Debug("explicit range ignored",
			zap.String("start", startText),
			zap.String("end", endText),
		)
		t.render()
		return false
	}

	t.logger.Debug("explicit range applied", zap.Times("range", dates))
	t.syncPresetDropDown()
	t.render()
	return true
}

// parseDates 解析日期文本，跳过空值和非法值
func (t *TUI) parseDates(texts ...string) []time.Time {
	dates := make([]time.Time, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		date, err := time.ParseInLocation(t.tuiConfig.DateFormat, text, time.Local)
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

// selectPresetOption 处理预设下拉框的选择，索引0表示不使用预设
func (t *TUI) selectPresetOption(index int) {
	if t.syncing {
		return
	}

	if index <= 0 {
		t.selector.ClearPreset()
		t.logger.Debug("preset cleared")
	} else {
		preset := picker.Preset(index - 1)
		t.selector.SetPreset(preset)
		t.logger.Debug("preset selected", zap.Stringer("preset", preset))
	}
	t.render()
}

// presetOptionIndex 返回当前状态在下拉框中对应的索引
func (t *TUI) presetOptionIndex() int {
	if preset, ok := t.selector.Preset(); ok {
		return int(preset) + 1
	}
	return 0
}

// statusText 生成带颜色的显示文本
func (t *TUI) statusText() string {
	res := t.resolution
	return fmt.Sprintf("Displaying data from [green::b](%s)[-::-]: [red::b]%s[-::-] - [red::b]%s[-::-]",
		res.Tag(),
		res.Window.Start.Format(timeLabelFormat),
		res.Window.End.Format(timeLabelFormat))
}

// summaryText 生成表格上方的汇总统计
func (t *TUI) summaryText() string {
	s := t.summary
	return fmt.Sprintf("[yellow]点数[white] %d   [yellow]平均[white] %s   [yellow]最小[white] %s   [yellow]最大[white] %s   [yellow]标准差[white] %s",
		s.Count,
		formatValue(s.Mean),
		formatValue(s.Min),
		formatValue(s.Max),
		formatValue(s.StdDev))
}
