package main

import (
	"fmt"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/picker"
	"github.com/urfave/cli/v2"
)

// createCliApp 创建CLI应用实例
func createCliApp() *cli.App {
	app := &cli.App{
		Name:    AppName,
		Version: AppVersion,
		Usage:   AppDesc,
		Flags:   append(createCliFlags(), createSelectionFlags()...),
		Action:  runApp,
		Before: func(c *cli.Context) error {
			// 显示启动信息
			fmt.Fprintf(c.App.ErrWriter, "正在启动 %s v%s...\n", AppName, AppVersion)
			return nil
		},
	}

	// 添加子命令
	app.Commands = createCommands()

	return app
}

// createCliFlags 创建CLI参数定义
func createCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Value:   "grafana",
			Usage:   "选择器的唯一键",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML配置文件路径",
		},
		&cli.StringFlag{
			Name:  "from",
			Value: "2024-01-01",
			Usage: "合成数据的开始日期 (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "to",
			Value: "2024-12-31",
			Usage: "合成数据的结束日期，包含在内 (YYYY-MM-DD)",
		},
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Value:   15 * time.Minute,
			Usage:   "采样间隔 (例如: 15m, 1h)",
		},
		&cli.IntFlag{
			Name:  "min",
			Value: 230,
			Usage: "数据取值下限（包含）",
		},
		&cli.IntFlag{
			Name:  "max",
			Value: 240,
			Usage: "数据取值上限（不包含）",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "随机种子，0表示每次运行随机",
		},
		&cli.IntFlag{
			Name:  "chart-width",
			Value: 20,
			Usage: "最小图表宽度",
		},
		&cli.IntFlag{
			Name:  "chart-height",
			Value: 5,
			Usage: "最小图表高度",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "日志文件路径，为空时不记录日志",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "日志级别 (debug, info, warn, error)",
		},
	}
}

// createSelectionFlags 创建初始时间窗口的参数定义
func createSelectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "相对时间预设，见 presets 子命令",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "显式范围的开始日期 (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "显式范围的结束日期 (YYYY-MM-DD)",
		},
	}
}

// createCommands 创建子命令
func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "print",
			Usage:  "以非交互方式输出时间窗口内的数据表",
			Flags:  createSelectionFlags(),
			Action: runPrint,
		},
		{
			Name:  "presets",
			Usage: "列出所有相对时间预设",
			Action: func(c *cli.Context) error {
				writePresets(c.App.Writer, picker.Presets())
				return nil
			},
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "显示详细版本信息",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s v%s\n", AppName, AppVersion)
				fmt.Fprintf(c.App.Writer, "描述: %s\n", AppDesc)
				return nil
			},
		},
	}
}
