// Package tui 布局管理模块
package tui

import (
	"fmt"

	"github.com/Kevin-Rudy/godash/pkg/core"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// noPresetOption 下拉框中表示不使用预设的选项
const noPresetOption = "(none)"

// setupUI 设置用户界面布局
func (t *TUI) setupUI() {
	start, end := t.selector.ExplicitRange()

	// 日期范围输入
	t.startInput = tview.NewInputField().
		SetLabel("开始日期 ").
		SetPlaceholder(t.tuiConfig.DateFormat).
		SetText(start.Format(t.tuiConfig.DateFormat)).
		SetFieldWidth(len(t.tuiConfig.DateFormat) + 2)
	t.endInput = tview.NewInputField().
		SetLabel("结束日期 ").
		SetPlaceholder(t.tuiConfig.DateFormat).
		SetText(end.Format(t.tuiConfig.DateFormat)).
		SetFieldWidth(len(t.tuiConfig.DateFormat) + 2)
	for _, input := range []*tview.InputField{t.startInput, t.endInput} {
		input.SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				t.applyDateText(t.startInput.GetText(), t.endInput.GetText())
			}
		})
	}

	// 预设下拉框，第一项为不使用预设
	options := append([]string{noPresetOption}, picker.PresetNames()...)
	t.presetDrop = tview.NewDropDown().
		SetLabel("相对时间 ").
		SetOptions(options, nil)
	t.syncing = true
	t.presetDrop.SetCurrentOption(t.presetOptionIndex())
	t.syncing = false
	t.presetDrop.SetSelectedFunc(func(_ string, index int) {
		t.selectPresetOption(index)
	})

	// 显示文本
	t.status = tview.NewTextView().SetDynamicColors(true)

	// 选择器面板：左列日期+显示文本，右列预设
	leftCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.startInput, 1, 0, true).
		AddItem(t.endInput, 1, 0, false).
		AddItem(t.status, 0, 1, false)
	rightCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.presetDrop, 1, 0, false)
	panel := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(leftCol, 0, 1, true).
		AddItem(rightCol, 0, 1, false)
	panel.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", t.selector.Key()))

	// 图表页
	t.chart.SetWordWrap(false)
	t.chart.SetDynamicColors(true)
	t.chart.SetText("[yellow]正在初始化...[white]")

	// 表格页
	t.table.SetFixed(1, 0)
	t.table.SetSelectable(true, false)
	t.summaryView = tview.NewTextView().SetDynamicColors(true)
	tablePage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.summaryView, 1, 0, false).
		AddItem(t.table, 0, 1, false)

	t.pages = tview.NewPages().
		AddPage(tabPlot, t.chart, true, true).
		AddPage(tabTable, tablePage, true, false)

	t.tabBar = tview.NewTextView().SetDynamicColors(true)
	t.updateTabBar()

	// 创建主垂直布局
	t.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panel, 5, 0, true).
		AddItem(t.tabBar, 1, 0, false).
		AddItem(t.pages, 0, 1, false)

	t.app.SetRoot(t.flex, true)
	t.app.SetFocus(t.startInput)

	// 终端尺寸变化后按新尺寸重绘图表
	t.app.SetAfterDrawFunc(func(screen tcell.Screen) {
		_, _, width, height := t.chart.GetInnerRect()
		if width != t.chartWidth || height != t.chartHeight {
			t.chartWidth, t.chartHeight = width, height
			go t.safeUIUpdate(t.updateChart)
		}
	})
}

// syncPresetDropDown 将下拉框同步为当前预设状态
func (t *TUI) syncPresetDropDown() {
	if t.testMode || t.presetDrop == nil {
		return
	}
	t.syncing = true
	t.presetDrop.SetCurrentOption(t.presetOptionIndex())
	t.syncing = false
}

// updateTabBar 更新标签栏高亮
func (t *TUI) updateTabBar() {
	if t.tabBar == nil {
		return
	}
	text := ""
	for i, name := range []string{tabPlot, tabTable} {
		if name == t.activeTab {
			text += fmt.Sprintf(" [black:green] F%d %s [-:-]", i+1, name)
		} else {
			text += fmt.Sprintf(" [gray] F%d %s [-]", i+1, name)
		}
	}
	t.tabBar.SetText(text)
}

// updateChart 更新图表显示
func (t *TUI) updateChart() {
	if t.testMode || t.chart == nil {
		return
	}

	width, height := t.chartWidth, t.chartHeight

	// 确保有合理的最小尺寸
	if width < 20 {
		width = 80
	}
	if height < 10 {
		height = 15
	}

	t.chart.SetText(t.drawChart(t.filtered, t.resolution.Window, width, height))
}

// updateTable 更新表格内容
func (t *TUI) updateTable() {
	if t.testMode || t.table == nil {
		return
	}

	t.summaryView.SetText(t.summaryText())

	t.table.Clear()
	t.table.SetCell(0, 0, headerCell("timestamp"))
	t.table.SetCell(0, 1, headerCell("data"))

	for i, cells := range tableRows(t.filtered) {
		t.table.SetCell(i+1, 0, tview.NewTableCell(cells[0]).
			SetTextColor(tcell.ColorWhite))
		t.table.SetCell(i+1, 1, tview.NewTableCell(cells[1]).
			SetTextColor(tcell.ColorWhite).
			SetAlign(tview.AlignRight).
			SetExpansion(1))
	}
	t.table.ScrollToBeginning()
}

// headerCell 创建表头单元格
func headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false)
}

// tableRows 将过滤结果转换为表格文本
func tableRows(rows []core.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.Timestamp.Format(tableTimeFormat), formatValue(row.Value)})
	}
	return out
}

// safeUIUpdate 安全地执行UI更新操作
func (t *TUI) safeUIUpdate(updateFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			// 如果应用已经停止，忽略panic
		}
	}()
	t.app.QueueUpdateDraw(updateFunc)
}
