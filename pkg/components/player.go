package components

// PlayerComponent 玩家实体
//
// 一局只创建一次，由输入和道具修改，HP <= 0 时本局结束。
// 所有计时器都是剩余时间（秒），<= 0 即视为未激活，允许为负值。
type PlayerComponent struct {
	X, Y   float64
	Radius float64

	HP    int
	MaxHP int
	Speed float64 // 由速度升级等级决定的基础速度

	// 冷却与增益计时器
	FireCooldown   float64 // 开火冷却
	InvulnTime     float64 // 冲刺无敌剩余时间
	ShieldTime     float64 // 护盾剩余时间
	SpeedBoostTime float64 // 加速剩余时间
	PierceTime     float64 // 穿透剩余时间
	ExplosiveTime  float64 // 爆炸剩余时间

	WeaponTier int // 武器等级 1-3
	MaxHPTier  int // 永久升级：生命上限等级 1-3
	SpeedTier  int // 永久升级：速度等级 1-3

	// 冲刺状态
	DashCooldown float64
	DashTime     float64
	DashDirX     float64
	DashDirY     float64

	// 最近一次瞄准方向（单位向量）
	AimX, AimY float64

	// Boss 接触伤害冷却，防止每帧重复扣血
	BossContactCooldown float64
}

// Alive 返回玩家是否存活
func (p *PlayerComponent) Alive() bool {
	return p != nil && p.HP > 0
}

// Dashing 是否处于冲刺中
func (p *PlayerComponent) Dashing() bool {
	return p.DashTime > 0
}

// Invulnerable 冲刺无敌期间不受任何伤害
func (p *PlayerComponent) Invulnerable() bool {
	return p.InvulnTime > 0
}

// Shielded 护盾期间伤害被吸收
func (p *PlayerComponent) Shielded() bool {
	return p.ShieldTime > 0
}

// Piercing 穿透增益是否激活
func (p *PlayerComponent) Piercing() bool {
	return p.PierceTime > 0
}

// Explosive 爆炸增益是否激活
func (p *PlayerComponent) Explosive() bool {
	return p.ExplosiveTime > 0
}

// Heal 回复生命值，不超过上限
func (p *PlayerComponent) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}
