package config

import (
	"math"

	"github.com/gonewx/horde/pkg/types"
)

// Enemy 获取指定敌人类型的参数
// 类型不存在时返回普通敌人的参数
func (t *Tuning) Enemy(et types.EnemyType) EnemyStats {
	if stats, ok := t.Enemies[et.String()]; ok {
		return stats
	}
	return t.Enemies[types.EnemyKeyNormal]
}

// Boss 获取指定 Boss 变体的参数
func (t *Tuning) Boss(bt types.BossType) BossStats {
	return t.Bosses[bt.String()]
}

// SpawnTableFor 返回指定波次生效的生成概率表（FromWave <= wave 的最后一张）
func (t *Tuning) SpawnTableFor(wave int) *SpawnTable {
	var table *SpawnTable
	for i := range t.SpawnTables {
		if t.SpawnTables[i].FromWave <= wave {
			table = &t.SpawnTables[i]
		}
	}
	return table
}

// SpawnInterval 计算生成间隔
// 公式: max(MinInterval, BaseInterval - wave * IntervalPerWave)
func (w WaveConfig) SpawnInterval(wave int) float64 {
	return math.Max(w.MinInterval, w.BaseInterval-float64(wave)*w.IntervalPerWave)
}

// KillTarget 计算本波需要的击杀数
// 公式: wave * KillsPerWave + KillsBase
func (w WaveConfig) KillTarget(wave int) int {
	return wave*w.KillsPerWave + w.KillsBase
}

// MaxHP 返回永久升级等级（1-3）对应的最大生命值
func (p PlayerConfig) MaxHP(tier int) int {
	return p.MaxHPTiers[clampTier(tier, len(p.MaxHPTiers))-1]
}

// Speed 返回永久升级等级（1-3）对应的移动速度
func (p PlayerConfig) Speed(tier int) float64 {
	return p.SpeedTiers[clampTier(tier, len(p.SpeedTiers))-1]
}

// Spread 返回武器等级（1-3）的散射角偏移
func (w WeaponConfig) Spread(tier int) []float64 {
	return w.TierSpreads[clampTier(tier, len(w.TierSpreads))-1]
}

// MaxEnemyRadius 返回所有敌人和 Boss 中的最大半径，用于确定碰撞查询半径
func (t *Tuning) MaxEnemyRadius() float64 {
	r := 0.0
	for _, stats := range t.Enemies {
		r = math.Max(r, stats.Radius)
	}
	for _, stats := range t.Bosses {
		r = math.Max(r, stats.Radius)
	}
	return r
}

func clampTier(tier, n int) int {
	if tier < 1 {
		return 1
	}
	if tier > n {
		return n
	}
	return tier
}
