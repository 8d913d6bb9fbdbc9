package ecs

// Pool 按插入顺序持有同一类实体
//
// 删除有两种方式：
//   - 倒序遍历时调用 RemoveAt（当前下标之后的元素不受影响）
//   - 遍历结束后调用 Retain 统一压缩
type Pool[T any] struct {
	items []T
}

// NewPool 创建指定初始容量的实体集合
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{items: make([]T, 0, capacity)}
}

// Add 追加一个实体
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Len 返回实体数量
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At 返回下标 i 处的实体
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Items 返回底层切片视图
// 调用方不得在遍历期间通过 Add 之外的方式修改集合
func (p *Pool[T]) Items() []T {
	return p.items
}

// RemoveAt 删除下标 i 处的实体，保持其余元素顺序
func (p *Pool[T]) RemoveAt(i int) {
	var zero T
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
}

// Retain 只保留 keep 返回 true 的实体，返回被删除的数量
func (p *Pool[T]) Retain(keep func(T) bool) int {
	n := 0
	for _, item := range p.items {
		if keep(item) {
			p.items[n] = item
			n++
		}
	}
	removed := len(p.items) - n

	// 清空尾部引用，避免被删除的实体继续被持有
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
	return removed
}

// Clear 删除所有实体，保留容量
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
}
