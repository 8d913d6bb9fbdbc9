package game

import (
	"math/rand"
	"time"
)

// RunOptions 开局参数
type RunOptions struct {
	MaxHPTier int // 生命上限永久升级等级（1-3）
	SpeedTier int // 速度永久升级等级（1-3）

	// StartWave 起始波次，<= 0 时使用调优表中的值
	StartWave int

	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Source 显式随机源，优先于 Seed（测试用）
	Source rand.Source
}

// DefaultRunOptions 返回全部基础等级的开局参数
func DefaultRunOptions() RunOptions {
	return RunOptions{MaxHPTier: 1, SpeedTier: 1}
}

func (o RunOptions) newRand() *rand.Rand {
	if o.Source != nil {
		return rand.New(o.Source)
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
