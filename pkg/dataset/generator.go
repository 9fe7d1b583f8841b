// Package dataset 实现了core.DataSource接口，提供合成的传感器数据
// 数据只在第一次访问时生成，之后从内存缓存返回
package dataset

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Kevin-Rudy/godash/pkg/core"
)

// Generator 合成数据生成器
type Generator struct {
	config *Config

	once sync.Once
	rows []core.Row
}

// NewGenerator 创建数据生成器
func NewGenerator(config *Config) (*Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("数据集配置错误: %w", err)
	}

	return &Generator{config: config}, nil
}

// Rows 实现core.DataSource接口
func (g *Generator) Rows() []core.Row {
	g.once.Do(func() {
		g.rows = g.generate()
	})
	return g.rows
}

// Config 返回生成器使用的配置
func (g *Generator) Config() *Config {
	return g.config
}

// generate 按固定间隔生成整段数据
func (g *Generator) generate() []core.Row {
	seed := g.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	span := g.config.MaxValue - g.config.MinValue

	rows := make([]core.Row, 0, g.config.Size())
	for ts := g.config.Start; !ts.After(g.config.End); ts = ts.Add(g.config.Interval) {
		rows = append(rows, core.Row{
			Timestamp: ts,
			Value:     float64(g.config.MinValue + rng.Intn(span)),
		})
	}
	return rows
}
