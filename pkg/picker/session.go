package picker

import (
	"sync"

	"github.com/benbjohnson/clock"
)

// Session 会话级的选择器注册表
// 同一个键在会话期间只创建一次选择器，之后复用已有状态
type Session struct {
	mu        sync.Mutex
	selectors map[string]*Selector
}

// NewSession 创建新的会话
func NewSession() *Session {
	return &Session{
		selectors: make(map[string]*Selector),
	}
}

// Picker 获取或创建指定键的选择器
// 键已存在时忽略clk参数，返回原有选择器
func (s *Session) Picker(key string, clk clock.Clock) *Selector {
	s.mu.Lock()
	defer s.mu.Unlock()

	if selector, exists := s.selectors[key]; exists {
		return selector
	}
	selector := New(key, clk)
	s.selectors[key] = selector
	return selector
}

// Len 返回会话中已创建的选择器数量
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selectors)
}
