// Package tui 交互控制模块
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// setupKeyBindings 设置键盘绑定
func (t *TUI) setupKeyBindings() {
	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.Stop()
			return nil
		case tcell.KeyCtrlR:
			// 手动刷新，预设窗口随当前时间前移
			t.render()
			return nil
		case tcell.KeyF1:
			t.switchTab(tabPlot)
			return nil
		case tcell.KeyF2:
			t.switchTab(tabTable)
			return nil
		case tcell.KeyTab:
			t.cycleFocus(1)
			return nil
		case tcell.KeyBacktab:
			t.cycleFocus(-1)
			return nil
		case tcell.KeyRune:
			// 输入框获得焦点时字符交给输入框
			if _, typing := t.app.GetFocus().(*tview.InputField); typing {
				return event
			}
			switch event.Rune() {
			case 'q', 'Q':
				t.Stop()
				return nil
			}
		}
		return event
	})
}

// switchTab 切换标签页
func (t *TUI) switchTab(name string) {
	if name != tabPlot && name != tabTable {
		return
	}
	t.activeTab = name
	t.logger.Debug("tab switched", zap.String("tab", name))

	if t.testMode {
		return
	}
	t.pages.SwitchToPage(name)
	t.updateTabBar()
}

// focusables 返回可获得焦点的组件，按Tab顺序
func (t *TUI) focusables() []tview.Primitive {
	items := []tview.Primitive{t.startInput, t.endInput, t.presetDrop}
	if t.activeTab == tabTable {
		items = append(items, t.table)
	}
	return items
}

// cycleFocus 在组件之间循环移动焦点
func (t *TUI) cycleFocus(step int) {
	if t.testMode {
		return
	}

	items := t.focusables()
	current := t.app.GetFocus()
	index := 0
	for i, item := range items {
		if item == current {
			index = i
			break
		}
	}

	next := (index + step + len(items)) % len(items)
	t.app.SetFocus(items[next])
}
