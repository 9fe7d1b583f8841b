// Package tui 选项模式支持
package tui

// Option TUI配置选项函数类型
type Option func(*Config)

// WithDateFormat 设置日期输入格式
func WithDateFormat(layout string) Option {
	return func(c *Config) {
		c.DateFormat = layout
	}
}

// WithChartSize 设置图表尺寸
func WithChartSize(width, height int) Option {
	return func(c *Config) {
		c.MinChartWidth = width
		c.MinChartHeight = height
	}
}

// WithValueBufferRatio 设置值缓冲比例
func WithValueBufferRatio(ratio float64) Option {
	return func(c *Config) {
		c.ValueBufferRatio = ratio
	}
}

// WithMaxChartSize 设置最大图表尺寸
func WithMaxChartSize(size int) Option {
	return func(c *Config) {
		c.MaxChartSize = size
	}
}

// NewConfigWithOptions 使用选项模式创建TUI配置
func NewConfigWithOptions(opts ...Option) *Config {
	config := DefaultConfig()

	// 应用所有选项
	for _, opt := range opts {
		opt(config)
	}

	return config
}
