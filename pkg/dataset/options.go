// Package dataset 选项模式支持
package dataset

import (
	"time"
)

// Option 配置选项函数类型
type Option func(*Config)

// WithRange 设置数据集的起止时间
func WithRange(start, end time.Time) Option {
	return func(c *Config) {
		c.Start = start
		c.End = end
	}
}

// WithInterval 设置采样间隔
func WithInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.Interval = interval
	}
}

// WithValueRange 设置取值范围 [minValue, maxValue)
func WithValueRange(minValue, maxValue int) Option {
	return func(c *Config) {
		c.MinValue = minValue
		c.MaxValue = maxValue
	}
}

// WithSeed 设置随机种子
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// NewGeneratorWithOptions 使用选项模式创建数据生成器
func NewGeneratorWithOptions(opts ...Option) (*Generator, error) {
	config := DefaultConfig()

	// 应用所有选项
	for _, opt := range opts {
		opt(config)
	}

	return NewGenerator(config)
}
