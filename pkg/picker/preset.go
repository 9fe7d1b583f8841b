// Package picker 时间窗口选择器
// 在显式日期范围与相对预设之间进行协调，输出唯一的时间窗口
package picker

import (
	"fmt"
	"time"
)

// Preset 相对时间预设
type Preset int

const (
	Last5Minutes Preset = iota
	Last15Minutes
	Last30Minutes
	Last1Hour
	Last3Hours
	Last6Hours
	Last12Hours
	Last24Hours
	Last2Days
	Last7Days
	Last30Days
	Yesterday
)

// presetInfo 预设的显示名称和时长
type presetInfo struct {
	name     string
	duration time.Duration
}

// 顺序与下拉框中的顺序一致
var presetTable = []presetInfo{
	Last5Minutes:  {"LAST_5_MINUTES", 5 * time.Minute},
	Last15Minutes: {"LAST_15_MINUTES", 15 * time.Minute},
	Last30Minutes: {"LAST_30_MINUTES", 30 * time.Minute},
	Last1Hour:     {"LAST_1_HOUR", time.Hour},
	Last3Hours:    {"LAST_3_HOURS", 3 * time.Hour},
	Last6Hours:    {"LAST_6_HOURS", 6 * time.Hour},
	Last12Hours:   {"LAST_12_HOURS", 12 * time.Hour},
	Last24Hours:   {"LAST_24_HOURS", 24 * time.Hour},
	Last2Days:     {"LAST_2_DAYS", 48 * time.Hour},
	Last7Days:     {"LAST_7_DAYS", 7 * 24 * time.Hour},
	Last30Days:    {"LAST_30_DAYS", 30 * 24 * time.Hour},
	Yesterday:     {"YESTERDAY", 24 * time.Hour}, // 与LAST_24_HOURS相同，相对当前时刻而非日历上的昨天
}

// Presets 返回所有预设，按显示顺序
func Presets() []Preset {
	presets := make([]Preset, len(presetTable))
	for i := range presetTable {
		presets[i] = Preset(i)
	}
	return presets
}

// PresetNames 返回所有预设的显示名称
func PresetNames() []string {
	names := make([]string, len(presetTable))
	for i, info := range presetTable {
		names[i] = info.name
	}
	return names
}

// Valid 判断预设值是否已定义
func (p Preset) Valid() bool {
	return p >= 0 && int(p) < len(presetTable)
}

// Duration 返回预设对应的时长
func (p Preset) Duration() time.Duration {
	if !p.Valid() {
		return 0
	}
	return presetTable[p].duration
}

// String 返回预设的显示名称
func (p Preset) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetTable[p].name
}

// ParsePreset 根据显示名称解析预设
func ParsePreset(name string) (Preset, error) {
	for i, info := range presetTable {
		if info.name == name {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("未知的时间预设: %q", name)
}
