package core

import (
	"math"

	"github.com/montanaflynn/stats"
)

// FilterWindow 返回时间戳严格落在窗口内的行，保持输入顺序
// 窗口两端都不包含；倒置或空窗口返回空切片。输入切片不会被修改
func FilterWindow(rows []Row, w Window) []Row {
	filtered := make([]Row, 0)
	if !w.Valid() {
		return filtered
	}

	for _, row := range rows {
		if w.Contains(row.Timestamp) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Summary 表示窗口内数据的汇总统计
type Summary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64 // 样本标准差，少于2个点时为NaN
}

// Summarize 计算一组行的汇总统计，空输入时除Count外均为NaN
func Summarize(rows []Row) Summary {
	summary := Summary{
		Count:  len(rows),
		Mean:   math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		StdDev: math.NaN(),
	}
	if len(rows) == 0 {
		return summary
	}

	data := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.Value)
	}

	if mean, err := stats.Mean(data); err == nil {
		summary.Mean = mean
	}
	if minVal, err := stats.Min(data); err == nil {
		summary.Min = minVal
	}
	if maxVal, err := stats.Max(data); err == nil {
		summary.Max = maxVal
	}
	if len(rows) > 1 {
		if stddev, err := stats.StandardDeviationSample(data); err == nil {
			summary.StdDev = stddev
		}
	}

	return summary
}
