package main

import (
	"fmt"
	"io"
	"math"

	"github.com/Kevin-Rudy/godash/pkg/core"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// printTimeFormat 表格中时间戳的格式
const printTimeFormat = "2006-01-02 15:04:05"

// printWindow 解析时间窗口，输出过滤后的数据表，返回输出的行数
func printWindow(w io.Writer, source core.DataSource, selector *picker.Selector) int {
	res := selector.Resolve()
	rows := core.FilterWindow(source.Rows(), res.Window)
	summary := core.Summarize(rows)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(res.DisplayText())
	tw.AppendHeader(table.Row{"#", "timestamp", "data"})
	for i, row := range rows {
		tw.AppendRow(table.Row{i + 1, row.Timestamp.Format(printTimeFormat), formatNumber(row.Value)})
	}
	tw.AppendFooter(table.Row{"", "count", summary.Count})
	tw.AppendFooter(table.Row{"", "mean", formatNumber(summary.Mean)})
	tw.AppendFooter(table.Row{"", "min / max", fmt.Sprintf("%s / %s", formatNumber(summary.Min), formatNumber(summary.Max))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.Render()

	return len(rows)
}

// writePresets 输出所有相对时间预设
func writePresets(w io.Writer, presets []picker.Preset) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"preset", "duration"})
	for _, p := range presets {
		tw.AppendRow(table.Row{p.String(), p.Duration()})
	}
	tw.Render()
}

// formatNumber 格式化数值，整数不带小数位
func formatNumber(value float64) string {
	if math.IsNaN(value) {
		return "N/A"
	}
	if value == math.Trunc(value) {
		return fmt.Sprintf("%.0f", value)
	}
	return fmt.Sprintf("%.2f", value)
}
