package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/dataset"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"
)

// runWithConfig 使用真实的参数定义解析args，返回构建出的配置
func runWithConfig(t *testing.T, args ...string) (*AppConfig, error) {
	t.Helper()

	var (
		captured *AppConfig
		buildErr error
	)
	app := &cli.App{
		Name:      AppName,
		Flags:     append(createCliFlags(), createSelectionFlags()...),
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
		Action: func(c *cli.Context) error {
			captured, buildErr = buildConfigFromCLI(c)
			return nil
		},
	}
	if err := app.Run(append([]string{AppName}, args...)); err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	return captured, buildErr
}

// TestBuildConfigDefaults 测试默认配置
func TestBuildConfigDefaults(t *testing.T) {
	config, err := runWithConfig(t)
	if err != nil {
		t.Fatalf("buildConfigFromCLI failed: %v", err)
	}

	if err := validateConfig(config); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if config.Key != "grafana" {
		t.Errorf("Expected key 'grafana', got %q", config.Key)
	}

	if config.DatasetConfig.Interval != 15*time.Minute {
		t.Errorf("Expected interval=15m, got %v", config.DatasetConfig.Interval)
	}

	if config.LogConfig.File != "" {
		t.Errorf("Expected logging disabled by default, got %q", config.LogConfig.File)
	}
}

// TestBuildConfigFlags 测试命令行参数覆盖默认值
func TestBuildConfigFlags(t *testing.T) {
	config, err := runWithConfig(t,
		"--key", "sensors",
		"--from", "2024-02-01",
		"--to", "2024-02-10",
		"--interval", "1h",
		"--min", "10",
		"--max", "20",
		"--seed", "5",
		"--chart-height", "8",
		"--log-file", "/tmp/godash.log",
	)
	if err != nil {
		t.Fatalf("buildConfigFromCLI failed: %v", err)
	}

	if config.Key != "sensors" {
		t.Errorf("Expected key 'sensors', got %q", config.Key)
	}

	ds := config.DatasetConfig
	if !ds.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("Unexpected start %v", ds.Start)
	}
	if !ds.End.Equal(time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)) {
		t.Errorf("Unexpected end %v", ds.End)
	}
	if ds.Interval != time.Hour || ds.MinValue != 10 || ds.MaxValue != 20 || ds.Seed != 5 {
		t.Errorf("Unexpected dataset config %+v", ds)
	}

	if config.TUIConfig.MinChartHeight != 8 {
		t.Errorf("Expected chart height 8, got %d", config.TUIConfig.MinChartHeight)
	}

	if config.LogConfig.File != "/tmp/godash.log" {
		t.Errorf("Expected log file, got %q", config.LogConfig.File)
	}
}

// TestBuildConfigBadDate 测试非法日期参数
func TestBuildConfigBadDate(t *testing.T) {
	if _, err := runWithConfig(t, "--from", "2024/01/01"); err == nil {
		t.Error("Expected error for malformed --from")
	}
}

// TestLoadConfigFile 测试YAML配置文件
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "godash.yaml")
	content := `
key: plant
dataset:
  from: "2024-05-01"
  to: "2024-05-03"
  interval: 30m
  min: 0
  max: 5
tui:
  chart_width: 40
log:
  file: dash.log
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// 命令行参数优先于配置文件
	config, err := runWithConfig(t, "--config", path, "--max", "7")
	if err != nil {
		t.Fatalf("buildConfigFromCLI failed: %v", err)
	}

	if config.Key != "plant" {
		t.Errorf("Expected key 'plant', got %q", config.Key)
	}
	ds := config.DatasetConfig
	if ds.Interval != 30*time.Minute {
		t.Errorf("Expected interval=30m, got %v", ds.Interval)
	}
	if ds.MinValue != 0 || ds.MaxValue != 7 {
		t.Errorf("Expected value range [0, 7), got [%d, %d)", ds.MinValue, ds.MaxValue)
	}
	if config.TUIConfig.MinChartWidth != 40 {
		t.Errorf("Expected chart width 40, got %d", config.TUIConfig.MinChartWidth)
	}
	if config.LogConfig.File != "dash.log" || config.LogConfig.Level != "debug" {
		t.Errorf("Unexpected log config %+v", config.LogConfig)
	}
	if config.LogConfig.MaxSizeMB != DefaultLogConfig().MaxSizeMB {
		t.Errorf("Unset log fields should keep defaults, got %+v", config.LogConfig)
	}

	if err := validateConfig(config); err != nil {
		t.Errorf("config should be valid: %v", err)
	}
}

// TestLoadConfigFileErrors 测试配置文件错误
func TestLoadConfigFileErrors(t *testing.T) {
	if err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), defaultAppConfig()); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dataset:\n  from: yesterday\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := loadConfigFile(path, defaultAppConfig()); err == nil {
		t.Error("Expected error for malformed date")
	}
}

// TestValidateConfig 测试配置验证
func TestValidateConfig(t *testing.T) {
	config := defaultAppConfig()
	config.Key = ""
	if err := validateConfig(config); err == nil {
		t.Error("Expected error for empty key")
	}

	config = defaultAppConfig()
	config.DatasetConfig.Interval = 0
	if err := validateConfig(config); err == nil {
		t.Error("Expected error for zero interval")
	}

	config = defaultAppConfig()
	config.LogConfig.Level = "loud"
	if err := validateConfig(config); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

// selectionContext 构造只带选择参数的cli上下文
func selectionContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	var ctx *cli.Context
	app := &cli.App{
		Name:      AppName,
		Flags:     createSelectionFlags(),
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
		Action: func(c *cli.Context) error {
			ctx = c
			return nil
		},
	}
	if err := app.Run(append([]string{AppName}, args...)); err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	return ctx
}

// TestApplySelection 测试命令行设置初始窗口
func TestApplySelection(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local))

	selector := picker.New("k", mock)
	if err := applySelection(selectionContext(t, "--start", "2024-02-01", "--end", "2024-02-05"), selector); err != nil {
		t.Fatalf("applySelection failed: %v", err)
	}
	res := selector.Resolve()
	if res.Mode != picker.ModeApplyDate || !res.Window.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("Unexpected resolution %+v", res)
	}

	// 预设优先
	selector = picker.New("k", mock)
	err := applySelection(selectionContext(t, "--start", "2024-02-01", "--end", "2024-02-05", "--preset", "LAST_7_DAYS"), selector)
	if err != nil {
		t.Fatalf("applySelection failed: %v", err)
	}
	if p, ok := selector.Preset(); !ok || p != picker.Last7Days {
		t.Errorf("Expected LAST_7_DAYS, got %v %v", p, ok)
	}
	if start, _ := selector.ExplicitRange(); !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("Explicit range should be stored as dormant, got %v", start)
	}
}

// TestApplySelectionErrors 测试非法的选择参数
func TestApplySelectionErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"只有开始日期", []string{"--start", "2024-02-01"}},
		{"非法结束日期", []string{"--start", "2024-02-01", "--end", "02/05"}},
		{"未知预设", []string{"--preset", "LAST_CENTURY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := applySelection(selectionContext(t, tt.args...), picker.New("k", clock.NewMock())); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

// TestPrintWindow 测试非交互输出
func TestPrintWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	source, err := dataset.NewGeneratorWithOptions(
		dataset.WithRange(start, start.AddDate(0, 0, 1)),
		dataset.WithSeed(1),
	)
	if err != nil {
		t.Fatalf("NewGeneratorWithOptions failed: %v", err)
	}

	selector := picker.New("k", clock.NewMock())
	selector.SetExplicitRange(start, start.AddDate(0, 0, 1))

	var buf bytes.Buffer
	count := printWindow(&buf, source, selector)

	// 97个点去掉两端
	if count != 95 {
		t.Errorf("Expected 95 rows, got %d", count)
	}

	out := buf.String()
	if !strings.Contains(out, "2024-01-01 00:15:00") || !strings.Contains(out, "2024-01-01 23:45:00") {
		t.Error("Output should contain the first and last rows inside the window")
	}
	if !strings.Contains(strings.ToUpper(out), "COUNT") {
		t.Error("Output should contain the summary footer")
	}
}

// TestPrintCommand 测试 print 子命令
func TestPrintCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	app := createCliApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run([]string{AppName,
		"--from", "2024-01-01", "--to", "2024-01-02", "--seed", "3",
		"print", "--preset", "LAST_5_MINUTES",
	})
	if err != nil {
		t.Fatalf("print command failed: %v", err)
	}

	// 预设窗口相对当前时间，合成数据在2024年，因此没有数据行
	if !strings.Contains(strings.ToUpper(out.String()), "COUNT") {
		t.Errorf("Expected a rendered table, got:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "运行配置") {
		t.Error("Expected the running config on the error writer")
	}
}

// TestPresetsCommand 测试 presets 子命令
func TestPresetsCommand(t *testing.T) {
	var out bytes.Buffer
	app := createCliApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	if err := app.Run([]string{AppName, "presets"}); err != nil {
		t.Fatalf("presets command failed: %v", err)
	}

	for _, name := range picker.PresetNames() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected preset %s in output", name)
		}
	}
}

// TestNewLogger 测试日志创建
func TestNewLogger(t *testing.T) {
	logger, err := newLogger(DefaultLogConfig())
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("discarded")

	path := filepath.Join(t.TempDir(), "godash.log")
	config := DefaultLogConfig()
	config.File = path
	logger, err = newLogger(config)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("Expected JSON log line, got %q", string(data))
	}
}
