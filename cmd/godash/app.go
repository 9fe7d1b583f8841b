package main

import (
	"errors"
	"fmt"

	"github.com/Kevin-Rudy/godash/pkg/dataset"
	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/Kevin-Rudy/godash/pkg/tui"
	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// runApp 主要应用逻辑处理函数
func runApp(c *cli.Context) error {
	if c.Args().Len() > 0 {
		return cli.Exit(fmt.Sprintf("错误: 未知参数 %v\n使用方法: %s [选项]", c.Args().Slice(), AppName), 1)
	}

	appConfig, source, err := prepare(c)
	if err != nil {
		return err
	}

	logger, err := newLogger(appConfig.LogConfig)
	if err != nil {
		return cli.Exit(fmt.Sprintf("无法创建日志: %v", err), 1)
	}
	defer logger.Sync()

	// 会话内同一个键只创建一次选择器
	session := picker.NewSession()
	selector := session.Picker(appConfig.Key, clock.New())
	if err := applySelection(c, selector); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger.Info("selector ready",
		zap.String("key", selector.Key()),
		zap.String("mode", string(selector.Mode())),
	)

	w := c.App.Writer
	fmt.Fprintln(w, "\n正在启动TUI界面...")

	// 显示使用说明
	printUsageInstructions(w)

	tuiInstance := tui.NewTUI(source, selector, appConfig.TUIConfig, logger)

	// 启动TUI界面 - 这会阻塞直到用户退出
	if err := tuiInstance.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("TUI运行出错: %v", err), 1)
	}

	fmt.Fprintln(w, "\n程序已退出")
	return nil
}

// runPrint 非交互输出时间窗口内的数据
func runPrint(c *cli.Context) error {
	appConfig, source, err := prepare(c)
	if err != nil {
		return err
	}

	selector := picker.New(appConfig.Key, clock.New())
	if err := applySelection(c, selector); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	printWindow(c.App.Writer, source, selector)
	return nil
}

// prepare 构建并验证配置，创建数据源
func prepare(c *cli.Context) (*AppConfig, *dataset.Generator, error) {
	appConfig, err := buildConfigFromCLI(c)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("配置加载失败: %v", err), 1)
	}

	// 验证配置
	if err := validateConfig(appConfig); err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("配置验证失败: %v", err), 1)
	}

	// 显示运行配置
	printRunningConfig(c.App.ErrWriter, appConfig)

	source, err := dataset.NewGenerator(appConfig.DatasetConfig)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("无法创建数据源: %v", err), 1)
	}

	return appConfig, source, nil
}

// applySelection 根据命令行参数设置选择器的初始状态
// 同时给出日期范围和预设时，预设优先
func applySelection(c *cli.Context, selector *picker.Selector) error {
	start, end := c.String("start"), c.String("end")
	if start != "" || end != "" {
		if start == "" || end == "" {
			return errors.New("错误: --start 和 --end 必须同时指定")
		}
		startDate, err := parseDate(start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		endDate, err := parseDate(end)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		selector.SetExplicitRange(startDate, endDate)
	}

	if preset := c.String("preset"); preset != "" {
		if err := selector.SetPresetName(preset); err != nil {
			return err
		}
	}

	return nil
}
