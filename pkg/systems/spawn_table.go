package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

// PickEnemyType 按波次从累积概率表中选择敌人类型
//
// 表中各层按顺序累加概率，未达到 MinWave 的层概率为 0，
// 剩余概率落在普通敌人上。
//
// 参数:
//   - t: 调优参数
//   - wave: 当前波次
//   - roll: [0,1) 的随机数
func PickEnemyType(t *config.Tuning, wave int, roll float64) types.EnemyType {
	table := t.SpawnTableFor(wave)
	if table == nil {
		return types.EnemyNormal
	}

	acc := 0.0
	for _, entry := range table.Entries {
		if wave < entry.MinWave {
			continue
		}
		acc += entry.Chance
		if roll < acc {
			if et, ok := types.ParseEnemyType(entry.Type); ok {
				return et
			}
		}
	}
	return types.EnemyNormal
}

// spawnPoint 在场地四边之外随机选取一个生成点
// 距离边界 margin + radius，保证生成时完全不可见
func spawnPoint(rng *rand.Rand, arena config.ArenaConfig, radius float64) (float64, float64) {
	off := arena.SpawnMargin + radius
	switch rng.Intn(4) {
	case 0: // 上
		return rng.Float64() * arena.Width, -off
	case 1: // 下
		return rng.Float64() * arena.Width, arena.Height + off
	case 2: // 左
		return -off, rng.Float64() * arena.Height
	default: // 右
		return arena.Width + off, rng.Float64() * arena.Height
	}
}

// bossRoll 按波次决定是否出现 Boss 以及变体
//
// 传说 Boss 只在 wave > legendaryAfterWave 时以极小概率出现，
// 否则依次检查 ultraEvery、megaEvery、bossEvery 的整除关系。
func bossRoll(w config.WaveConfig, wave int, roll float64) types.BossType {
	switch {
	case wave > w.LegendaryAfterWave && roll < w.LegendaryChance:
		return types.BossLegendary
	case wave%w.UltraEvery == 0:
		return types.BossUltra
	case wave%w.MegaEvery == 0:
		return types.BossMega
	case wave%w.BossEvery == 0:
		return types.BossBase
	}
	return types.BossNone
}

// healAmount 波次结束时的回复量
func healAmount(maxHP int, fraction float64) int {
	return int(math.Round(float64(maxHP) * fraction))
}
