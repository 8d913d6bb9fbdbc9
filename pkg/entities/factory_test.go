package entities

import (
	"testing"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/ecs"
	"github.com/gonewx/horde/pkg/types"
)

func TestNewPlayerTiers(t *testing.T) {
	tuning := newTestTuning()

	tests := []struct {
		name      string
		hpTier    int
		speedTier int
		wantHP    int
		wantSpeed float64
	}{
		{"base tiers", 1, 1, 100, 240},
		{"max tiers", 3, 3, 150, 300},
		{"clamped tiers", 0, 9, 100, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tuning, tt.hpTier, tt.speedTier)
			if p.HP != tt.wantHP || p.MaxHP != tt.wantHP {
				t.Errorf("HP = %d/%d, want %d", p.HP, p.MaxHP, tt.wantHP)
			}
			if p.Speed != tt.wantSpeed {
				t.Errorf("Speed = %v, want %v", p.Speed, tt.wantSpeed)
			}
			if p.WeaponTier != 1 {
				t.Errorf("WeaponTier = %d, want 1", p.WeaponTier)
			}
			if p.X != tuning.Arena.Width/2 || p.Y != tuning.Arena.Height/2 {
				t.Errorf("player should start at arena center, got (%v,%v)", p.X, p.Y)
			}
		})
	}
}

func TestNewEnemyCopiesStats(t *testing.T) {
	tuning := newTestTuning()
	em := ecs.NewEntityManager()

	for _, et := range types.AllEnemyTypes() {
		e := NewEnemy(em, tuning, et, -10, -10)
		stats := tuning.Enemy(et)
		if e.HP != stats.HP || e.MaxHP != stats.HP {
			t.Errorf("%s: HP = %d, want %d", et, e.HP, stats.HP)
		}
		if e.Radius != stats.Radius || e.Score != stats.Score {
			t.Errorf("%s: stats not copied: %+v", et, e)
		}
		if e.HasEnteredScreen {
			t.Errorf("%s: new enemy should not have entered screen", et)
		}
		if e.ID == 0 {
			t.Errorf("%s: expected non-zero ID", et)
		}
	}
}

func TestNewEnemyBehaviorState(t *testing.T) {
	tuning := newTestTuning()
	em := ecs.NewEntityManager()

	shooter := NewEnemy(em, tuning, types.EnemyShooter, 0, 0)
	if shooter.ShootCooldown <= 0 {
		t.Error("shooter should start with a positive cooldown")
	}
	enforcer := NewEnemy(em, tuning, types.EnemyEnforcer, 0, 0)
	if enforcer.EnforcerState != components.EnforcerSeeking {
		t.Errorf("enforcer should start seeking, got %v", enforcer.EnforcerState)
	}
	if !NewEnemy(em, tuning, types.EnemyMiniboss, 0, 0).AlwaysDrops {
		t.Error("miniboss should always drop a power-up")
	}
}

func TestNewBoss(t *testing.T) {
	tuning := newTestTuning()
	em := ecs.NewEntityManager()

	for _, bt := range types.AllBossTypes() {
		b := NewBoss(em, tuning, bt, 640, 120)
		stats := tuning.Boss(bt)
		if b.HP != stats.HP || b.MaxHP != stats.HP {
			t.Errorf("%s: HP = %d, want %d", bt, b.HP, stats.HP)
		}
		if b.Phase != 0 || b.Terminated || len(b.Pending) != 0 {
			t.Errorf("%s: unexpected initial state %+v", bt, b)
		}
		if len(b.Thresholds) != len(stats.PhaseThresholds) {
			t.Errorf("%s: thresholds not copied", bt)
		}
	}

	// 阈值是副本，修改不影响调优表
	b := NewBoss(em, tuning, types.BossBase, 0, 0)
	b.Thresholds[0] = 0.1
	if tuning.Boss(types.BossBase).PhaseThresholds[0] == 0.1 {
		t.Error("boss thresholds must not alias tuning data")
	}
}

func TestNewParticleBurst(t *testing.T) {
	tuning := newTestTuning()
	rng := newTestRand()

	if got := NewParticleBurst(rng, tuning.Simulation, 0, 0, "red", 0); got != nil {
		t.Errorf("zero count should create nothing, got %d", len(got))
	}

	particles := NewParticleBurst(rng, tuning.Simulation, 5, 6, "gold", 12)
	if len(particles) != 12 {
		t.Fatalf("expected 12 particles, got %d", len(particles))
	}
	for _, p := range particles {
		if p.Life <= 0 || p.Life != p.MaxLife {
			t.Errorf("particle should start at full life, got %v/%v", p.Life, p.MaxLife)
		}
		if p.Life > tuning.Simulation.ParticleLife {
			t.Errorf("particle life %v exceeds configured %v", p.Life, tuning.Simulation.ParticleLife)
		}
		if p.Color != "gold" || p.X != 5 || p.Y != 6 {
			t.Errorf("unexpected particle %+v", p)
		}
	}
}

func TestNewPowerUp(t *testing.T) {
	tuning := newTestTuning()
	p := NewPowerUp(ecs.NewEntityManager(), tuning, types.PowerUpShield, 3, 4)
	if p.Life != tuning.PowerUps.Lifetime || p.Radius != tuning.PowerUps.Radius {
		t.Errorf("unexpected power-up %+v", p)
	}

	rng := newTestRand()
	for i := 0; i < 50; i++ {
		pt := RandomPowerUpType(rng)
		if pt.String() == "unknown" {
			t.Fatalf("RandomPowerUpType returned invalid type %d", pt)
		}
	}
}
