// Package types 定义共享的基础类型
package types

// EnemyType 定义普通敌人的类型
// 每种类型对应配置表中的一组固定参数（半径、速度、血量、奖励、行为标志）
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota

	EnemyNormal   // 普通
	EnemyFast     // 快速
	EnemyTank     // 重甲
	EnemyShooter  // 射手：保持距离并发射子弹
	EnemyMiniboss // 小头目
	EnemyEnforcer // 精英：蓄力后冲刺（第16波起）
)

// 配置文件中的敌人类型键
const (
	EnemyKeyNormal   = "normal"
	EnemyKeyFast     = "fast"
	EnemyKeyTank     = "tank"
	EnemyKeyShooter  = "shooter"
	EnemyKeyMiniboss = "miniboss"
	EnemyKeyEnforcer = "enforcer"
)

var enemyKeys = map[EnemyType]string{
	EnemyNormal:   EnemyKeyNormal,
	EnemyFast:     EnemyKeyFast,
	EnemyTank:     EnemyKeyTank,
	EnemyShooter:  EnemyKeyShooter,
	EnemyMiniboss: EnemyKeyMiniboss,
	EnemyEnforcer: EnemyKeyEnforcer,
}

// AllEnemyTypes 按枚举顺序返回所有有效敌人类型
func AllEnemyTypes() []EnemyType {
	return []EnemyType{EnemyNormal, EnemyFast, EnemyTank, EnemyShooter, EnemyMiniboss, EnemyEnforcer}
}

// String 返回配置键
func (t EnemyType) String() string {
	if key, ok := enemyKeys[t]; ok {
		return key
	}
	return "unknown"
}

// ParseEnemyType 把配置键转换为 EnemyType
// 未知键返回 EnemyUnknown 和 false
func ParseEnemyType(key string) (EnemyType, bool) {
	for t, k := range enemyKeys {
		if k == key {
			return t, true
		}
	}
	return EnemyUnknown, false
}
