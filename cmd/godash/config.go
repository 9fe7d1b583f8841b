package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/dataset"
	"github.com/Kevin-Rudy/godash/pkg/tui"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// dateLayout 命令行和配置文件中的日期格式
const dateLayout = "2006-01-02"

// AppConfig 应用层配置聚合
type AppConfig struct {
	Key           string
	DatasetConfig *dataset.Config
	TUIConfig     *tui.Config
	LogConfig     *LogConfig
}

// fileConfig 配置文件结构，未出现的字段保持默认值
type fileConfig struct {
	Key     string `yaml:"key"`
	Dataset struct {
		From     string        `yaml:"from"`
		To       string        `yaml:"to"`
		Interval time.Duration `yaml:"interval"`
		Min      *int          `yaml:"min"`
		Max      *int          `yaml:"max"`
		Seed     int64         `yaml:"seed"`
	} `yaml:"dataset"`
	TUI struct {
		DateFormat  string `yaml:"date_format"`
		ChartWidth  int    `yaml:"chart_width"`
		ChartHeight int    `yaml:"chart_height"`
	} `yaml:"tui"`
	Log LogConfig `yaml:"log"`
}

// defaultAppConfig 返回默认的应用配置
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Key:           "grafana",
		DatasetConfig: dataset.DefaultConfig(),
		TUIConfig:     tui.DefaultConfig(),
		LogConfig:     DefaultLogConfig(),
	}
}

// loadConfigFile 从YAML文件加载配置并覆盖到config上
func loadConfigFile(path string, config *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}

	if fc.Key != "" {
		config.Key = fc.Key
	}

	ds := config.DatasetConfig
	if fc.Dataset.From != "" {
		if ds.Start, err = parseDate(fc.Dataset.From); err != nil {
			return fmt.Errorf("dataset.from: %w", err)
		}
	}
	if fc.Dataset.To != "" {
		if ds.End, err = parseDate(fc.Dataset.To); err != nil {
			return fmt.Errorf("dataset.to: %w", err)
		}
	}
	if fc.Dataset.Interval != 0 {
		ds.Interval = fc.Dataset.Interval
	}
	if fc.Dataset.Min != nil {
		ds.MinValue = *fc.Dataset.Min
	}
	if fc.Dataset.Max != nil {
		ds.MaxValue = *fc.Dataset.Max
	}
	if fc.Dataset.Seed != 0 {
		ds.Seed = fc.Dataset.Seed
	}

	if fc.TUI.DateFormat != "" {
		config.TUIConfig.DateFormat = fc.TUI.DateFormat
	}
	if fc.TUI.ChartWidth != 0 {
		config.TUIConfig.MinChartWidth = fc.TUI.ChartWidth
	}
	if fc.TUI.ChartHeight != 0 {
		config.TUIConfig.MinChartHeight = fc.TUI.ChartHeight
	}

	config.LogConfig.merge(&fc.Log)
	return nil
}

// buildConfigFromCLI 从默认值、配置文件和命令行参数构建配置
func buildConfigFromCLI(c *cli.Context) (*AppConfig, error) {
	appConfig := defaultAppConfig()

	if c.IsSet("config") {
		if err := loadConfigFile(c.String("config"), appConfig); err != nil {
			return nil, err
		}
	}

	if c.IsSet("key") {
		appConfig.Key = c.String("key")
	}

	// 构建 dataset 配置
	ds := appConfig.DatasetConfig
	var err error
	if c.IsSet("from") {
		if ds.Start, err = parseDate(c.String("from")); err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
	}
	if c.IsSet("to") {
		if ds.End, err = parseDate(c.String("to")); err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
	}
	if c.IsSet("interval") {
		ds.Interval = c.Duration("interval")
	}
	if c.IsSet("min") {
		ds.MinValue = c.Int("min")
	}
	if c.IsSet("max") {
		ds.MaxValue = c.Int("max")
	}
	if c.IsSet("seed") {
		ds.Seed = c.Int64("seed")
	}

	// 构建 TUI 配置
	if c.IsSet("chart-width") {
		appConfig.TUIConfig.MinChartWidth = c.Int("chart-width")
	}
	if c.IsSet("chart-height") {
		appConfig.TUIConfig.MinChartHeight = c.Int("chart-height")
	}

	// 构建日志配置
	if c.IsSet("log-file") {
		appConfig.LogConfig.File = c.String("log-file")
	}
	if c.IsSet("log-level") {
		appConfig.LogConfig.Level = c.String("log-level")
	}

	return appConfig, nil
}

// validateConfig 验证配置的合理性
func validateConfig(config *AppConfig) error {
	if config.Key == "" {
		return errors.New("选择器键不能为空")
	}

	// 验证 dataset 配置
	if err := config.DatasetConfig.Validate(); err != nil {
		return fmt.Errorf("dataset配置错误: %w", err)
	}

	// 验证 TUI 配置
	if err := config.TUIConfig.Validate(); err != nil {
		return fmt.Errorf("tui配置错误: %w", err)
	}

	// 验证日志配置
	if err := config.LogConfig.Validate(); err != nil {
		return fmt.Errorf("日志配置错误: %w", err)
	}

	return nil
}

// parseDate 按本地时区解析日期
func parseDate(text string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期 %q 不符合 %s 格式", text, dateLayout)
	}
	return date, nil
}
