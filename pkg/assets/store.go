// Package assets 提供共享资产（网格、材质）的句柄式存储
//
// 资产一经注册便不会被修改或移除，实体只保存轻量句柄，
// 多个实体可以共享同一个句柄（例如所有方块共享同一个"普通"材质）。
package assets

import "fmt"

// Handle 指向 Store[T] 中某个资产的句柄
// 零值表示无效句柄，Store 分配的句柄从 1 开始
type Handle[T any] struct {
	id uint32
}

// IsValid 判断句柄是否由 Store 分配
func (h Handle[T]) IsValid() bool {
	return h.id != 0
}

// ID 返回句柄的数值标识，仅用于日志和调试输出
func (h Handle[T]) ID() uint32 {
	return h.id
}

// String 实现 fmt.Stringer
func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle(%d)", h.id)
}

// Store 是某一类资产的追加式存储
//
// 非线程安全：与 EntityManager 一样，只在游戏主循环中访问
type Store[T any] struct {
	items []T
}

// NewStore 创建一个空的资产存储
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items: make([]T, 0),
	}
}

// Add 注册一个新资产并返回它的句柄
func (s *Store[T]) Add(item T) Handle[T] {
	s.items = append(s.items, item)
	return Handle[T]{id: uint32(len(s.items))}
}

// Get 根据句柄取回资产，句柄无效或越界时返回 false
func (s *Store[T]) Get(h Handle[T]) (T, bool) {
	var zero T
	if h.id == 0 || int(h.id) > len(s.items) {
		return zero, false
	}
	return s.items[h.id-1], true
}

// Len 返回已注册的资产数量
func (s *Store[T]) Len() int {
	return len(s.items)
}
