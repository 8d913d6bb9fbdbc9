// Package ecs 提供模拟内核的实体标识分配与实体集合
//
// 每一类实体（敌人、子弹、粒子、道具）由且仅由一个 Pool 持有。
// 从 Pool 中移除的实体立即丢弃，之后不再被更新或绘制。
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 负责分配实体ID
// 一局游戏内ID单调递增，0保留为无效ID
type EntityManager struct {
	nextID uint64
	// 本局创建过的实体总数
	created int
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1, // ID从1开始,0保留为无效ID
	}
}

// CreateEntity 分配一个新的实体ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.created++
	return id
}

// Created 返回已分配的实体数量
func (em *EntityManager) Created() int {
	return em.created
}
