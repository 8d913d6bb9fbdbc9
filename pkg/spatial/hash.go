// Package spatial 提供碰撞粗检测用的均匀网格空间哈希
package spatial

import "math"

// cellKey 量化后的网格坐标
type cellKey struct {
	X, Y int
}

// Hash 是以网格坐标为键的空间哈希
//
// 每帧由调用方 Clear 后整体重建，不做增量维护。
// QueryRadius 返回的是候选集合，可能包含半径之外的实体，
// 调用方必须再做一次精确的距离判定。
type Hash[T any] struct {
	cellSize float64
	cells    map[cellKey][]T
	count    int
}

// NewHash 创建指定格子边长的空间哈希
// cellSize <= 0 时使用 64
func NewHash[T any](cellSize float64) *Hash[T] {
	if cellSize <= 0 {
		cellSize = 64
	}
	return &Hash[T]{
		cellSize: cellSize,
		cells:    make(map[cellKey][]T),
	}
}

// CellSize 返回格子边长
func (h *Hash[T]) CellSize() float64 {
	return h.cellSize
}

// Len 返回当前已插入的实体数
func (h *Hash[T]) Len() int {
	return h.count
}

// Clear 清空所有格子，保留已分配的切片容量
func (h *Hash[T]) Clear() {
	for k, items := range h.cells {
		var zero T
		for i := range items {
			items[i] = zero
		}
		h.cells[k] = items[:0]
	}
	h.count = 0
}

// Insert 把实体按中心点放入对应格子
func (h *Hash[T]) Insert(item T, x, y float64) {
	k := h.key(x, y)
	h.cells[k] = append(h.cells[k], item)
	h.count++
}

// QueryRadius 返回中心点可能落在 (x, y) 半径 r 内的所有实体
//
// 扫描以 (x, y) 所在格为中心、向外 ceil(r/cellSize) 圈的格子。
// 只要实体中心与查询点距离 <= r，就一定会出现在结果中。
func (h *Hash[T]) QueryRadius(x, y, r float64) []T {
	return h.AppendQueryRadius(nil, x, y, r)
}

// AppendQueryRadius 与 QueryRadius 相同，但把结果追加到 dst 上以复用内存
func (h *Hash[T]) AppendQueryRadius(dst []T, x, y, r float64) []T {
	if h.count == 0 {
		return dst
	}
	if r < 0 {
		r = 0
	}

	rings := int(math.Ceil(r / h.cellSize))
	center := h.key(x, y)

	for cy := center.Y - rings; cy <= center.Y+rings; cy++ {
		for cx := center.X - rings; cx <= center.X+rings; cx++ {
			if items, ok := h.cells[cellKey{cx, cy}]; ok {
				dst = append(dst, items...)
			}
		}
	}
	return dst
}

// key 计算坐标所在格子
func (h *Hash[T]) key(x, y float64) cellKey {
	return cellKey{
		X: int(math.Floor(x / h.cellSize)),
		Y: int(math.Floor(y / h.cellSize)),
	}
}
