package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig 日志配置，TUI占用终端时日志只写入文件
type LogConfig struct {
	File       string `yaml:"file"`        // 日志文件路径，为空时不记录日志
	Level      string `yaml:"level"`       // 日志级别
	MaxSizeMB  int    `yaml:"max_size_mb"` // 单个日志文件的最大尺寸
	MaxBackups int    `yaml:"max_backups"` // 保留的旧日志文件数量
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		File:       "",
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// merge 用other中非零的字段覆盖当前配置
func (c *LogConfig) merge(other *LogConfig) {
	if other.File != "" {
		c.File = other.File
	}
	if other.Level != "" {
		c.Level = other.Level
	}
	if other.MaxSizeMB != 0 {
		c.MaxSizeMB = other.MaxSizeMB
	}
	if other.MaxBackups != 0 {
		c.MaxBackups = other.MaxBackups
	}
}

// Validate 验证配置的合理性
func (c *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("无效的日志级别 %q", c.Level)
	}

	if c.MaxSizeMB <= 0 {
		return errors.New("日志文件尺寸必须大于0")
	}

	if c.MaxBackups < 0 {
		return errors.New("日志备份数量不能为负数")
	}

	return nil
}

// newLogger 根据配置创建日志记录器
func newLogger(c *LogConfig) (*zap.Logger, error) {
	if c.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", c.Level, err)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level)
	return zap.New(core).Named(AppName), nil
}
