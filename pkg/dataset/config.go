// Package dataset 配置定义
package dataset

import (
	"errors"
	"time"
)

// Config 合成数据集的配置结构
type Config struct {
	Start    time.Time     // 第一个采样点
	End      time.Time     // 最后一个采样点（包含）
	Interval time.Duration // 采样间隔
	MinValue int           // 取值下限（包含）
	MaxValue int           // 取值上限（不包含）
	Seed     int64         // 随机种子，0表示每个进程随机
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),  // 默认从2024年初开始
		End:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local), // 到2024年最后一天
		Interval: 15 * time.Minute,                                // 默认15分钟采样一次
		MinValue: 230,
		MaxValue: 240,
		Seed:     0,
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.Start.IsZero() || c.End.IsZero() {
		return errors.New("数据集起止时间不能为空")
	}

	if c.End.Before(c.Start) {
		return errors.New("数据集结束时间不能早于开始时间")
	}

	if c.Interval <= 0 {
		return errors.New("采样间隔必须大于0")
	}

	if c.Interval < time.Second {
		return errors.New("采样间隔不能小于1s")
	}

	if c.MaxValue <= c.MinValue {
		return errors.New("取值上限必须大于下限")
	}

	return nil
}

// Size 返回按配置生成的行数
func (c *Config) Size() int {
	return int(c.End.Sub(c.Start)/c.Interval) + 1
}
