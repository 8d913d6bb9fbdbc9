package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		boss  types.BossType
		ratio float64
		want  int
	}{
		{types.BossBase, 1.0, 0},
		{types.BossBase, 0.51, 0},
		{types.BossBase, 0.5, 1},
		{types.BossBase, 0.1, 1},
		{types.BossMega, 0.66, 1},
		{types.BossMega, 0.2, 2},
		{types.BossUltra, 0.76, 0},
		{types.BossUltra, 0.75, 1},
		{types.BossUltra, 0.3, 2},
		{types.BossUltra, 0.25, 3},
		{types.BossLegendary, 0.5, 2},
		{types.BossLegendary, 0.19, 4},
	}

	for _, tt := range tests {
		_, state, _ := newTestSim(t, game.RunOptions{})
		b := newTestBoss(state, tt.boss)
		b.HP = int(float64(b.MaxHP) * tt.ratio)
		if got := PhaseFor(b); got != tt.want {
			t.Errorf("%s boss at ratio %v: phase = %d, want %d", tt.boss, tt.ratio, got, tt.want)
		}
	}
}

// TestBossPhaseNeverDecreases 阶段只增不减，每次跨越阈值只触发一次事件
func TestBossPhaseNeverDecreases(t *testing.T) {
	for _, bt := range types.AllBossTypes() {
		t.Run(bt.String(), func(t *testing.T) {
			sim, state, hooks := newTestSim(t, game.RunOptions{})
			movePlayerToCorner(state)
			b := newTestBoss(state, bt)

			prev := 0
			for hp := b.MaxHP; hp > 0; hp -= 7 {
				b.HP = hp
				sim.bosses.Update(0.016)
				if b.Phase < prev {
					t.Fatalf("phase decreased from %d to %d at hp %d", prev, b.Phase, hp)
				}
				if b.Phase != PhaseFor(b) {
					t.Fatalf("phase %d does not match hp ratio %.3f", b.Phase, b.HPRatio())
				}
				prev = b.Phase
			}

			wantPhases := len(b.Thresholds)
			if b.Phase != wantPhases {
				t.Errorf("expected final phase %d, got %d", wantPhases, b.Phase)
			}
			if got := hooks.cueCount(game.CueBossPhase); got != wantPhases {
				t.Errorf("expected %d phase cues, got %d", wantPhases, got)
			}

			// 回血不会降低阶段
			b.HP = b.MaxHP
			sim.bosses.Update(0.016)
			if b.Phase != wantPhases {
				t.Errorf("phase should not drop after healing, got %d", b.Phase)
			}
			if got := hooks.cueCount(game.CueBossPhase); got != wantPhases {
				t.Errorf("healing should not emit phase cues, got %d", got)
			}
		})
	}
}

// TestBossBehaviorTables 移动模式集合随阶段扩大，攻击表不超过槽位数
func TestBossBehaviorTables(t *testing.T) {
	_, state, _ := newTestSim(t, game.RunOptions{})

	for _, bt := range types.AllBossTypes() {
		beh, ok := bossBehaviors[bt]
		if !ok {
			t.Fatalf("missing behavior for %s boss", bt)
		}
		phases := len(state.Tuning.Boss(bt).PhaseThresholds)

		for phase := 0; phase < phases; phase++ {
			cur, next := beh.patterns(phase), beh.patterns(phase+1)
			if len(cur) == 0 {
				t.Errorf("%s boss has no movement patterns in phase %d", bt, phase)
			}
			for _, mp := range cur {
				if !containsPattern(next, mp) {
					t.Errorf("%s boss loses pattern %s entering phase %d", bt, mp, phase+1)
				}
			}
		}

		attacks := beh.attacks()
		if len(attacks) > components.MaxAttackSlots {
			t.Errorf("%s boss has %d attacks, only %d slots", bt, len(attacks), components.MaxAttackSlots)
		}
		seen := map[string]bool{}
		opening := 0
		for _, a := range attacks {
			if seen[a.name] {
				t.Errorf("%s boss has duplicate attack %s", bt, a.name)
			}
			seen[a.name] = true
			if a.minPhase == 0 {
				opening++
			}
			if a.minPhase > phases {
				t.Errorf("%s boss attack %s unlocks in unreachable phase %d", bt, a.name, a.minPhase)
			}
		}
		if opening == 0 {
			t.Errorf("%s boss has no phase 0 attack", bt)
		}
	}
}

func containsPattern(patterns []components.MovePattern, mp components.MovePattern) bool {
	for _, p := range patterns {
		if p == mp {
			return true
		}
	}
	return false
}

// TestPendingVolleyFiresOnBossClock 延迟齐射按 Boss 自己的时钟到期发射
func TestPendingVolleyFiresOnBossClock(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	b := newTestBoss(state, types.BossBase)
	b.Schedule(0.5, components.Volley{Shape: components.VolleyRing, Count: 8})

	sim.bosses.Update(0.3)
	if state.EnemyBullets.Len() != 0 {
		t.Fatalf("volley fired early: %d bullets", state.EnemyBullets.Len())
	}
	if len(b.Pending) != 1 {
		t.Fatalf("expected 1 pending volley, got %d", len(b.Pending))
	}

	sim.bosses.Update(0.3)
	if state.EnemyBullets.Len() != 8 {
		t.Errorf("expected 8 bullets after FireAt, got %d", state.EnemyBullets.Len())
	}
	if len(b.Pending) != 0 {
		t.Errorf("fired volley should leave the queue, %d pending", len(b.Pending))
	}
}

// TestDefeatedBossFiresNothingMore Boss 死亡后已排队的齐射不再发射
func TestDefeatedBossFiresNothingMore(t *testing.T) {
	tests := []struct {
		boss           types.BossType
		wantTerminated bool
	}{
		{types.BossBase, false},
		{types.BossMega, false},
		{types.BossUltra, true},
		{types.BossLegendary, true},
	}

	for _, tt := range tests {
		t.Run(tt.boss.String(), func(t *testing.T) {
			sim, state, _ := newTestSim(t, game.RunOptions{})
			movePlayerToCorner(state)
			state.Wave.BreakTimer = 100
			b := newTestBoss(state, tt.boss)

			sim.bosses.multiBurst(b, 3, 18, 0.25)
			if state.EnemyBullets.Len() != 18 || len(b.Pending) != 2 {
				t.Fatalf("expected first ring fired and 2 queued, got %d bullets %d pending",
					state.EnemyBullets.Len(), len(b.Pending))
			}

			b.HP = 1
			addBullet(state, b.X, b.Y)
			sim.Step(0.016, game.Input{})

			if state.Boss != nil {
				t.Fatal("boss should be removed on death")
			}
			if b.Terminated != tt.wantTerminated {
				t.Errorf("terminated = %v, want %v", b.Terminated, tt.wantTerminated)
			}
			if len(b.Pending) != 0 {
				t.Errorf("pending volleys should be cleared, %d left", len(b.Pending))
			}

			limit := state.EnemyBullets.Len()
			for i := 0; i < 40; i++ {
				sim.Step(0.016, game.Input{})
				if n := state.EnemyBullets.Len(); n > limit {
					t.Fatalf("frame %d: enemy bullets grew from %d to %d after boss death", i, limit, n)
				}
			}
		})
	}
}

func TestFirePendingDropsTerminatedVolleys(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	b := newTestBoss(state, types.BossUltra)
	b.Schedule(0, components.Volley{Shape: components.VolleyRing, Count: 12})
	b.Terminated = true

	sim.bosses.firePending(b)

	if state.EnemyBullets.Len() != 0 {
		t.Errorf("terminated boss fired %d bullets", state.EnemyBullets.Len())
	}
	if b.Pending != nil {
		t.Error("terminated boss should drop its queue")
	}
}

func TestBossUpdateRemovesDeadBoss(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	b := newTestBoss(state, types.BossMega)
	b.Schedule(1, components.Volley{Shape: components.VolleyRing, Count: 4})
	b.HP = 0

	sim.bosses.Update(0.016)

	if state.Boss != nil {
		t.Error("dead boss should be cleared")
	}
	if len(b.Pending) != 0 {
		t.Error("dead boss should drop its queue")
	}
}

func TestBossAttacksOverTime(t *testing.T) {
	for _, bt := range types.AllBossTypes() {
		t.Run(bt.String(), func(t *testing.T) {
			sim, state, _ := newTestSim(t, game.RunOptions{Source: rand.NewSource(11)})
			b := newTestBoss(state, bt)
			for i := range b.Cooldowns {
				b.Cooldowns[i] = 0.5
			}
			// 最后阶段，全部攻击启用
			b.HP = 1

			arena := state.Tuning.Arena
			for i := 0; i < 200; i++ {
				sim.bosses.Update(0.05)
				if b.X < b.Radius || b.X > arena.Width-b.Radius || b.Y < b.Radius || b.Y > arena.Height-b.Radius {
					t.Fatalf("boss left the arena at (%.1f,%.1f)", b.X, b.Y)
				}
			}

			if state.EnemyBullets.Len() == 0 {
				t.Error("boss should have fired during 10 seconds")
			}
			for i, a := range bossBehaviors[bt].attacks() {
				if b.Cooldowns[i] <= 0 {
					t.Errorf("attack %s cooldown not rearmed: %v", a.name, b.Cooldowns[i])
				}
			}
		})
	}
}

func TestMegaBossSummonsOnPhase(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	b := newTestBoss(state, types.BossMega)
	b.HP = b.MaxHP / 2

	sim.bosses.Update(0.016)

	if state.Enemies.Len() != 2 {
		t.Fatalf("expected 2 summoned minions, got %d", state.Enemies.Len())
	}
	for _, e := range state.Enemies.Items() {
		if !e.Summoned {
			t.Error("boss minions should be marked as summoned")
		}
	}
	if state.Wave.Spawned != 0 {
		t.Errorf("summons should not count as spawned, got %d", state.Wave.Spawned)
	}
}

func TestAimedFanTargetsPlayer(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	b := newTestBoss(state, types.BossBase)
	p := state.Player
	p.X, p.Y = b.X, b.Y+300

	sim.bosses.aimedFan(b, 1, 0)

	if state.EnemyBullets.Len() != 1 {
		t.Fatalf("expected 1 bullet, got %d", state.EnemyBullets.Len())
	}
	bullet := state.EnemyBullets.At(0)
	if bullet.VY <= 0 || bullet.VX > 1e-6 || bullet.VX < -1e-6 {
		t.Errorf("bullet should fly straight down toward the player, got v=(%v,%v)", bullet.VX, bullet.VY)
	}
}
