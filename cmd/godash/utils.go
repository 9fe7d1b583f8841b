package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// 程序信息常量
const (
	AppName    = "godash"
	AppVersion = "0.1.0"
	AppDesc    = "支持日期范围与相对时间预设的终端数据仪表盘"
)

var (
	titleColor = color.New(color.FgGreen, color.Bold)
	keyColor   = color.New(color.FgYellow)
)

// printRunningConfig 打印运行配置信息
func printRunningConfig(w io.Writer, config *AppConfig) {
	titleColor.Fprintln(w, "\n运行配置:")
	fmt.Fprintf(w, "  %s %s\n", keyColor.Sprint("选择器键:"), config.Key)
	fmt.Fprintf(w, "  %s %s - %s\n", keyColor.Sprint("数据范围:"),
		config.DatasetConfig.Start.Format(dateLayout),
		config.DatasetConfig.End.Format(dateLayout))
	fmt.Fprintf(w, "  %s %v\n", keyColor.Sprint("采样间隔:"), config.DatasetConfig.Interval)
	fmt.Fprintf(w, "  %s %d\n", keyColor.Sprint("数据行数:"), config.DatasetConfig.Size())
	if config.LogConfig.File != "" {
		fmt.Fprintf(w, "  %s %s\n", keyColor.Sprint("日志文件:"), config.LogConfig.File)
	}
}

// printUsageInstructions 显示TUI操作说明
func printUsageInstructions(w io.Writer) {
	titleColor.Fprintln(w, "操作说明:")
	fmt.Fprintln(w, "  Tab/Shift+Tab - 切换输入焦点")
	fmt.Fprintln(w, "  Enter         - 在日期输入框中应用日期范围")
	fmt.Fprintln(w, "  F1 / F2       - 切换图表 / 表格")
	fmt.Fprintln(w, "  Ctrl+R        - 按当前时间重新计算窗口")
	fmt.Fprintln(w, "  q 或 Ctrl+C   - 退出程序")
	fmt.Fprintln(w, "========================================")
}
