package picker

import (
	"fmt"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/core"
	"github.com/benbjohnson/clock"
)

// Mode 标识产生时间窗口的选择方式
type Mode string

const (
	ModeApplyDate Mode = "Apply date" // 显式日期范围
	ModeSelectBox Mode = "Selectbox"  // 相对预设
)

// displayTimeFormat 窗口边界的显示格式
const displayTimeFormat = "2006-01-02 15:04:05"

// state 选择器状态，只能是 explicitMode 或 presetMode 之一
type state interface {
	mode() Mode
}

// explicitMode 显式日期范围模式
type explicitMode struct {
	start time.Time
	end   time.Time
}

func (explicitMode) mode() Mode { return ModeApplyDate }

// presetMode 预设模式，显式范围保留但处于休眠状态
type presetMode struct {
	preset  Preset
	dormant explicitMode
}

func (presetMode) mode() Mode { return ModeSelectBox }

// Selector 时间窗口选择器
type Selector struct {
	key   string
	clock clock.Clock
	state state
}

// New 创建选择器，默认显式范围为 [今天零点, 明天零点]
func New(key string, clk clock.Clock) *Selector {
	if clk == nil {
		clk = clock.New()
	}
	today := startOfDay(clk.Now())
	return &Selector{
		key:   key,
		clock: clk,
		state: explicitMode{start: today, end: today.AddDate(0, 0, 1)},
	}
}

// Key 返回选择器的唯一键
func (s *Selector) Key() string {
	return s.key
}

// Mode 返回当前模式
func (s *Selector) Mode() Mode {
	return s.state.mode()
}

// Preset 返回当前预设，不在预设模式时第二个返回值为false
func (s *Selector) Preset() (Preset, bool) {
	if pm, ok := s.state.(presetMode); ok {
		return pm.preset, true
	}
	return 0, false
}

// ExplicitRange 返回存储的显式日期范围（预设模式下为休眠值）
func (s *Selector) ExplicitRange() (start, end time.Time) {
	r := s.explicit()
	return r.start, r.end
}

// explicit 取出当前存储的显式范围
func (s *Selector) explicit() explicitMode {
	switch st := s.state.(type) {
	case presetMode:
		return st.dormant
	case explicitMode:
		return st
	}
	return explicitMode{}
}

// SetExplicitRange 设置显式日期范围并清除预设
// 必须恰好传入两个日期，否则不做任何修改
func (s *Selector) SetExplicitRange(dates ...time.Time) {
	if len(dates) != 2 {
		return
	}
	s.state = explicitMode{start: dates[0], end: dates[1]}
}

// SetPreset 切换到预设模式，显式范围保持不变
func (s *Selector) SetPreset(p Preset) {
	if !p.Valid() {
		return
	}
	s.state = presetMode{preset: p, dormant: s.explicit()}
}

// ClearPreset 清除预设，恢复使用已存储的显式范围
func (s *Selector) ClearPreset() {
	s.state = s.explicit()
}

// SetPresetName 根据显示名称设置预设，空名称表示清除预设
func (s *Selector) SetPresetName(name string) error {
	if name == "" {
		s.ClearPreset()
		return nil
	}
	p, err := ParsePreset(name)
	if err != nil {
		return err
	}
	s.SetPreset(p)
	return nil
}

// Resolve 根据当前状态和当前时间计算时间窗口
// 每次调用都重新计算，不做缓存
func (s *Selector) Resolve() Resolution {
	switch st := s.state.(type) {
	case presetMode:
		now := s.clock.Now().Truncate(time.Minute)
		return Resolution{
			Window: core.Window{Start: now.Add(-st.preset.Duration()), End: now},
			Mode:   ModeSelectBox,
			Preset: st.preset,
		}
	case explicitMode:
		// 倒置的范围原样透传
		return Resolution{
			Window: core.Window{Start: startOfDay(st.start), End: startOfDay(st.end)},
			Mode:   ModeApplyDate,
		}
	}
	return Resolution{}
}

// Resolution 解析结果
type Resolution struct {
	Window core.Window
	Mode   Mode
	Preset Preset // 仅在 ModeSelectBox 下有意义
}

// Label 返回模式标签，预设模式下附带预设名称
func (r Resolution) Label() string {
	if r.Mode == ModeSelectBox {
		return fmt.Sprintf("%s (%s)", r.Mode, r.Preset)
	}
	return string(r.Mode)
}

// Tag 返回显示文本中括号内的标记
func (r Resolution) Tag() string {
	if r.Mode == ModeSelectBox {
		return r.Preset.String()
	}
	return "APPLY_DATE"
}

// DisplayText 返回给用户展示的窗口说明
func (r Resolution) DisplayText() string {
	return fmt.Sprintf("Displaying data from (%s): %s - %s",
		r.Tag(),
		r.Window.Start.Format(displayTimeFormat),
		r.Window.End.Format(displayTimeFormat))
}

// startOfDay 返回给定时间当天的零点
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
