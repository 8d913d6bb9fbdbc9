package components

import (
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

// MovePattern Boss 移动模式
type MovePattern int

const (
	MoveStrafe   MovePattern = iota // 在上方横向环绕扫射
	MoveApproach                    // 缓慢逼近玩家
	MoveDash                        // 蓄力后向玩家冲撞
	MoveJitter                      // 随机抖动
)

func (m MovePattern) String() string {
	switch m {
	case MoveStrafe:
		return "strafe"
	case MoveApproach:
		return "approach"
	case MoveDash:
		return "dash"
	case MoveJitter:
		return "jitter"
	}
	return "unknown"
}

// VolleyShape 一次齐射的形状
type VolleyShape int

const (
	VolleyRing VolleyShape = iota // 均匀环形
	VolleyFan                     // 以 Angle 为中心的扇形
	VolleyLine                    // 沿 Angle 方向、速度递增的一列子弹
)

// Volley 一次齐射的参数
// 发射位置取发射时刻的 Boss 位置
type Volley struct {
	Shape  VolleyShape
	Count  int
	Speed  float64
	Angle  float64 // 基准角（弧度）
	Spread float64 // 扇形总张角
	Aimed  bool    // 为 true 时发射时刻以玩家方向为基准角，Angle 作为偏移
	Color  string
}

// PendingVolley 延迟齐射
// 由 Boss 自己的更新步骤在 Clock >= FireAt 时发射
type PendingVolley struct {
	FireAt float64
	Volley Volley
}

// MaxAttackSlots 每个 Boss 独立攻击计时器的数量
const MaxAttackSlots = 8

// BossComponent Boss 实体
type BossComponent struct {
	ID     ecs.EntityID
	Type   types.BossType
	X, Y   float64
	Radius float64
	Speed  float64

	HP    int
	MaxHP int

	// Phase 当前阶段（0 起），只增不减
	Phase int
	// Thresholds 阶段血量比例阈值（严格递减）
	Thresholds []float64

	MovePattern MovePattern
	MoveTimer   float64 // 当前移动模式剩余时间
	// 冲撞模式：蓄力剩余时间、冲撞剩余时间与方向
	ChargeTime float64
	LungeTime  float64
	LungeDirX  float64
	LungeDirY  float64
	// 抖动模式的目标点
	JitterX, JitterY float64
	// 横移相位
	StrafePhase float64

	// 独立攻击冷却，每个变体自行分配槽位
	Cooldowns [MaxAttackSlots]float64
	// 螺旋弹幕当前角度
	SpiralAngle float64

	// Clock Boss 自身的累计时间，Pending 的 FireAt 以此为基准
	Clock   float64
	Pending []PendingVolley

	// Terminated 死亡后置位，阻止任何尚未发射的延迟齐射
	Terminated bool

	Score       int
	Currency    int
	Experience  int
	BulletSpeed float64
	AttackScale float64
	PatternTime float64 // 移动模式切换间隔
}

// Alive Boss 是否存活
func (b *BossComponent) Alive() bool {
	return b != nil && !b.Terminated && b.HP > 0
}

// HPRatio 当前血量比例
func (b *BossComponent) HPRatio() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}

// Schedule 追加一次延迟齐射
func (b *BossComponent) Schedule(delay float64, v Volley) {
	b.Pending = append(b.Pending, PendingVolley{FireAt: b.Clock + delay, Volley: v})
}
