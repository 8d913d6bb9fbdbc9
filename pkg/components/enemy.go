package components

import (
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// EnforcerState 精英敌人的冲刺状态
type EnforcerState int

const (
	EnforcerSeeking  EnforcerState = iota // 正常追踪
	EnforcerCharging                      // 蓄力（原地抖动预警）
	EnforcerDashing                       // 沿锁定方向冲刺
)

// EnemyComponent 普通敌人
//
// 参数在创建时从配置表复制，之后不再查表。
type EnemyComponent struct {
	ID     ecs.EntityID
	Type   types.EnemyType
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64

	HP    int
	MaxHP int

	ContactDamage int
	Score         int
	Currency      int
	Experience    int
	AlwaysDrops   bool

	// HasEnteredScreen 进入过可见区域后才能造成伤害、被击中或被剔除
	HasEnteredScreen bool

	// Dead 已结算死亡，等待本帧末从集合中移除
	Dead bool

	// Summoned 由 Boss 召唤，不计入本波生成数
	Summoned bool

	// 射手
	ShootCooldown float64

	// 精英
	EnforcerState EnforcerState
	StateTimer    float64
	DashCooldown  float64
	DashDirX      float64
	DashDirY      float64
}

// Alive 是否仍可被命中
func (e *EnemyComponent) Alive() bool {
	return !e.Dead && e.HP > 0
}
