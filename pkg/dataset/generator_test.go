package dataset

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// TestDefaultConfig 测试默认配置
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if err := config.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if config.Interval != 15*time.Minute {
		t.Errorf("Expected interval=15m, got %v", config.Interval)
	}

	if config.MinValue != 230 || config.MaxValue != 240 {
		t.Errorf("Expected value range [230, 240), got [%d, %d)", config.MinValue, config.MaxValue)
	}
}

// TestConfigValidation 测试配置验证
func TestConfigValidation(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		opts []Option
	}{
		{"结束早于开始", []Option{WithRange(start, start.Add(-time.Hour))}},
		{"零间隔", []Option{WithInterval(0)}},
		{"间隔过小", []Option{WithInterval(time.Millisecond)}},
		{"取值范围为空", []Option{WithValueRange(10, 10)}},
		{"起止时间为空", []Option{WithRange(time.Time{}, start)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGeneratorWithOptions(tt.opts...); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

// TestGeneratorRows 测试生成的数据行
func TestGeneratorRows(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	gen, err := NewGeneratorWithOptions(
		WithRange(start, end),
		WithInterval(15*time.Minute),
		WithSeed(42),
	)
	if err != nil {
		t.Fatalf("NewGeneratorWithOptions failed: %v", err)
	}

	rows := gen.Rows()

	// 起止时间都包含在内
	if len(rows) != 9 {
		t.Fatalf("Expected 9 rows, got %d", len(rows))
	}
	if !rows[0].Timestamp.Equal(start) {
		t.Errorf("Expected first row at %v, got %v", start, rows[0].Timestamp)
	}
	if !rows[len(rows)-1].Timestamp.Equal(end) {
		t.Errorf("Expected last row at %v, got %v", end, rows[len(rows)-1].Timestamp)
	}

	for i, row := range rows {
		if row.Value < 230 || row.Value >= 240 {
			t.Errorf("row %d value %.0f out of range [230, 240)", i, row.Value)
		}
		if row.Value != float64(int(row.Value)) {
			t.Errorf("row %d value %f should be an integer", i, row.Value)
		}
		if i > 0 && rows[i].Timestamp.Sub(rows[i-1].Timestamp) != 15*time.Minute {
			t.Errorf("row %d not spaced by the sampling interval", i)
		}
	}
}

// TestGeneratorCached 测试数据只生成一次
func TestGeneratorCached(t *testing.T) {
	gen, err := NewGeneratorWithOptions(WithSeed(7))
	if err != nil {
		t.Fatalf("NewGeneratorWithOptions failed: %v", err)
	}

	first := gen.Rows()
	second := gen.Rows()

	if len(first) == 0 {
		t.Fatal("Expected generated rows")
	}
	if &first[0] != &second[0] {
		t.Error("Rows() should return the cached snapshot")
	}
	if len(first) != gen.Config().Size() {
		t.Errorf("Expected %d rows, got %d", gen.Config().Size(), len(first))
	}
}

// TestGeneratorDeterministicSeed 测试固定种子结果一致
func TestGeneratorDeterministicSeed(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	opts := []Option{WithRange(start, start.Add(24*time.Hour)), WithSeed(99)}

	a, err := NewGeneratorWithOptions(opts...)
	if err != nil {
		t.Fatalf("NewGeneratorWithOptions failed: %v", err)
	}
	b, err := NewGeneratorWithOptions(opts...)
	if err != nil {
		t.Fatalf("NewGeneratorWithOptions failed: %v", err)
	}

	if diff := cmp.Diff(a.Rows(), b.Rows()); diff != "" {
		t.Errorf("same seed produced different rows (-a +b):\n%s", diff)
	}
}

// TestNewGeneratorNilConfig 测试空配置使用默认值
func TestNewGeneratorNilConfig(t *testing.T) {
	gen, err := NewGenerator(nil)
	if err != nil {
		t.Fatalf("NewGenerator(nil) failed: %v", err)
	}
	if gen.Config().Interval != DefaultConfig().Interval {
		t.Errorf("Expected default interval, got %v", gen.Config().Interval)
	}
}
