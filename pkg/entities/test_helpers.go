package entities

import (
	"math/rand"

	"github.com/gonewx/horde/pkg/config"
)

// newTestRand 返回固定种子的随机源，保证测试可重复
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newTestTuning 返回默认调优参数
func newTestTuning() *config.Tuning {
	return config.DefaultTuning()
}
