// Package tui 提供基于时间窗口的终端仪表盘
// 支持显式日期范围和相对预设两种选择方式，以图表和表格展示数据
package tui

import (
	"github.com/Kevin-Rudy/godash/pkg/core"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// 标签页名称
const (
	tabPlot  = "Plot"
	tabTable = "Table"
)

// TUI 主界面结构
type TUI struct {
	app  *tview.Application
	flex *tview.Flex

	// 选择器面板
	startInput *tview.InputField
	endInput   *tview.InputField
	presetDrop *tview.DropDown
	status     *tview.TextView

	// 标签页
	tabBar      *tview.TextView
	pages       *tview.Pages
	chart       *tview.TextView
	table       *tview.Table
	summaryView *tview.TextView

	dataSource core.DataSource
	selector   *picker.Selector
	logger     *zap.Logger

	// 配置信息
	tuiConfig *Config

	// 最近一次渲染的结果
	resolution picker.Resolution
	filtered   []core.Row
	summary    core.Summary

	// 界面状态
	activeTab   string
	chartWidth  int
	chartHeight int
	syncing     bool // 程序主动同步下拉框时忽略回调

	// 测试模式标志
	testMode bool
}

// NewTUI 创建新的TUI实例
func NewTUI(dataSource core.DataSource, selector *picker.Selector, tuiConfig *Config, logger *zap.Logger) *TUI {
	t := newTUI(dataSource, selector, tuiConfig, logger)
	t.app = tview.NewApplication()
	t.chart = tview.NewTextView()
	t.table = tview.NewTable()

	t.setupUI()
	t.setupKeyBindings()
	t.render()

	return t
}

// NewTUIForTest 创建用于测试的TUI实例（不初始化图形组件）
func NewTUIForTest(dataSource core.DataSource, selector *picker.Selector, tuiConfig *Config) *TUI {
	t := newTUI(dataSource, selector, tuiConfig, nil)
	t.testMode = true
	t.render()
	return t
}

func newTUI(dataSource core.DataSource, selector *picker.Selector, tuiConfig *Config, logger *zap.Logger) *TUI {
	if tuiConfig == nil {
		tuiConfig = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TUI{
		dataSource: dataSource,
		selector:   selector,
		tuiConfig:  tuiConfig,
		logger:     logger.Named("tui").With(zap.String("key", selector.Key())),
		activeTab:  tabPlot,
	}
}

// Run 启动TUI界面，阻塞直到用户退出
func (t *TUI) Run() error {
	t.logger.Info("dashboard started")
	err := t.app.Run()
	t.logger.Info("dashboard stopped", zap.Error(err))
	return err
}

// Stop 停止TUI界面
func (t *TUI) Stop() {
	if t.app != nil {
		t.app.Stop()
	}
}

// Resolution 返回最近一次渲染使用的时间窗口
func (t *TUI) Resolution() picker.Resolution {
	return t.resolution
}

// Filtered 返回最近一次渲染的过滤结果
func (t *TUI) Filtered() []core.Row {
	return t.filtered
}
