package types

// BossType 定义 Boss 变体，按难度递增
type BossType int

const (
	BossNone BossType = iota
	BossBase
	BossMega
	BossUltra
	BossLegendary
)

// 配置文件中的 Boss 变体键
const (
	BossKeyBase      = "base"
	BossKeyMega      = "mega"
	BossKeyUltra     = "ultra"
	BossKeyLegendary = "legendary"
)

var bossKeys = map[BossType]string{
	BossBase:      BossKeyBase,
	BossMega:      BossKeyMega,
	BossUltra:     BossKeyUltra,
	BossLegendary: BossKeyLegendary,
}

// AllBossTypes 返回所有 Boss 变体
func AllBossTypes() []BossType {
	return []BossType{BossBase, BossMega, BossUltra, BossLegendary}
}

// String 返回配置键
func (t BossType) String() string {
	if key, ok := bossKeys[t]; ok {
		return key
	}
	return "none"
}

// ParseBossType 把配置键转换为 BossType
func ParseBossType(key string) (BossType, bool) {
	for t, k := range bossKeys {
		if k == key {
			return t, true
		}
	}
	return BossNone, false
}

// Terminable 两个最难的变体在死亡时设置 Terminated 标志
func (t BossType) Terminable() bool {
	return t == BossUltra || t == BossLegendary
}
