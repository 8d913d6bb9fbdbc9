package config

import (
	"fmt"
	"math"

	"github.com/gonewx/horde/pkg/types"
)

// validateTuning 验证调优参数的完整性和合法性
func validateTuning(t *Tuning) error {
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %vx%v", t.Arena.Width, t.Arena.Height)
	}
	if t.Arena.BulletMargin < 0 || t.Arena.CullMargin < 0 || t.Arena.SpawnMargin < 0 {
		return fmt.Errorf("arena margins cannot be negative")
	}

	if t.Simulation.MaxDeltaTime <= 0 {
		return fmt.Errorf("simulation.maxDeltaTime must be positive, got %v", t.Simulation.MaxDeltaTime)
	}
	if t.Simulation.SpatialCellSize <= 0 {
		return fmt.Errorf("simulation.spatialCellSize must be positive, got %v", t.Simulation.SpatialCellSize)
	}
	if t.Simulation.MaxParticles < 0 {
		return fmt.Errorf("simulation.maxParticles cannot be negative, got %d", t.Simulation.MaxParticles)
	}

	if err := validatePlayer(&t.Player); err != nil {
		return err
	}

	if len(t.Weapon.TierSpreads) != 3 {
		return fmt.Errorf("weapon.tierSpreads must have 3 tiers, got %d", len(t.Weapon.TierSpreads))
	}
	for i, spread := range t.Weapon.TierSpreads {
		if len(spread) == 0 {
			return fmt.Errorf("weapon tier %d must fire at least one bullet", i+1)
		}
	}
	if t.Weapon.FireCooldown <= 0 || t.Weapon.BulletSpeed <= 0 {
		return fmt.Errorf("weapon fireCooldown and bulletSpeed must be positive")
	}

	if t.Combat.SplashRadius < 0 || t.Combat.SplashDamage < 0 {
		return fmt.Errorf("combat splash values cannot be negative")
	}

	if t.Combo.Window <= 0 {
		return fmt.Errorf("combo.window must be positive, got %v", t.Combo.Window)
	}

	if t.PowerUps.DropChance < 0 || t.PowerUps.DropChance > 1 {
		return fmt.Errorf("powerUps.dropChance must be within [0,1], got %v", t.PowerUps.DropChance)
	}

	if err := validateEnemies(t.Enemies); err != nil {
		return err
	}
	if err := validateSpawnTables(t.SpawnTables); err != nil {
		return err
	}
	if err := validateWave(&t.Wave); err != nil {
		return err
	}
	return validateBosses(t.Bosses)
}

func validatePlayer(p *PlayerConfig) error {
	if p.Radius <= 0 {
		return fmt.Errorf("player.radius must be positive, got %v", p.Radius)
	}
	if len(p.MaxHPTiers) != 3 {
		return fmt.Errorf("player.maxHPTiers must have 3 entries, got %d", len(p.MaxHPTiers))
	}
	if len(p.SpeedTiers) != 3 {
		return fmt.Errorf("player.speedTiers must have 3 entries, got %d", len(p.SpeedTiers))
	}
	for i, hp := range p.MaxHPTiers {
		if hp <= 0 {
			return fmt.Errorf("player.maxHPTiers[%d] must be positive, got %d", i, hp)
		}
	}
	for i, speed := range p.SpeedTiers {
		if speed <= 0 {
			return fmt.Errorf("player.speedTiers[%d] must be positive, got %v", i, speed)
		}
	}
	return nil
}

func validateEnemies(enemies map[string]EnemyStats) error {
	for key, stats := range enemies {
		if _, ok := types.ParseEnemyType(key); !ok {
			return fmt.Errorf("unknown enemy type %q", key)
		}
		if stats.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %v", key, stats.Radius)
		}
		if stats.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %d", key, stats.HP)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative, got %v", key, stats.Speed)
		}
	}
	for _, et := range types.AllEnemyTypes() {
		if _, ok := enemies[et.String()]; !ok {
			return fmt.Errorf("missing stats for enemy type %s", et)
		}
	}

	if s := enemies[types.EnemyKeyShooter]; s.ShootCooldown <= 0 {
		return fmt.Errorf("enemy shooter: shootCooldown must be positive")
	}
	if s := enemies[types.EnemyKeyEnforcer]; s.ChargeTime <= 0 || s.DashDuration <= 0 {
		return fmt.Errorf("enemy enforcer: chargeTime and dashDuration must be positive")
	}
	return nil
}

func validateSpawnTables(tables []SpawnTable) error {
	if len(tables) == 0 {
		return fmt.Errorf("spawnTables cannot be empty")
	}
	if tables[0].FromWave > 1 {
		return fmt.Errorf("first spawn table must start at wave 1, got %d", tables[0].FromWave)
	}

	for i, table := range tables {
		if i > 0 && table.FromWave <= tables[i-1].FromWave {
			return fmt.Errorf("spawnTables must be sorted by fromWave, table %d starts at %d", i, table.FromWave)
		}
		total := 0.0
		for _, entry := range table.Entries {
			if _, ok := types.ParseEnemyType(entry.Type); !ok {
				return fmt.Errorf("spawn table %d: unknown enemy type %q", i, entry.Type)
			}
			if entry.Chance < 0 {
				return fmt.Errorf("spawn table %d: chance for %s cannot be negative", i, entry.Type)
			}
			total += entry.Chance
		}
		if total > 1 {
			return fmt.Errorf("spawn table %d: chances sum to %.3f, must be <= 1", i, total)
		}
	}
	return nil
}

func validateWave(w *WaveConfig) error {
	if w.StartWave < 1 {
		return fmt.Errorf("wave.startWave must be >= 1, got %d", w.StartWave)
	}
	if w.MinInterval <= 0 || w.BaseInterval < w.MinInterval {
		return fmt.Errorf("wave intervals invalid: base=%v min=%v", w.BaseInterval, w.MinInterval)
	}
	if w.KillsBase < 1 || w.KillsPerWave < 0 {
		return fmt.Errorf("wave kill target invalid: base=%d perWave=%d", w.KillsBase, w.KillsPerWave)
	}
	if w.UltraEvery <= 0 || w.MegaEvery <= 0 || w.BossEvery <= 0 {
		return fmt.Errorf("boss wave periods must be positive")
	}
	if w.LegendaryChance < 0 || w.LegendaryChance > 1 {
		return fmt.Errorf("wave.legendaryChance must be within [0,1], got %v", w.LegendaryChance)
	}
	if w.HealFraction < 0 || w.HealFraction > 1 {
		return fmt.Errorf("wave.healFraction must be within [0,1], got %v", w.HealFraction)
	}
	return nil
}

func validateBosses(bosses map[string]BossStats) error {
	for _, bt := range types.AllBossTypes() {
		stats, ok := bosses[bt.String()]
		if !ok {
			return fmt.Errorf("missing stats for boss %s", bt)
		}
		if stats.HP <= 0 || stats.Radius <= 0 {
			return fmt.Errorf("boss %s: hp and radius must be positive", bt)
		}
		if stats.PatternDuration <= 0 || stats.AttackScale <= 0 {
			return fmt.Errorf("boss %s: patternDuration and attackScale must be positive", bt)
		}
		prev := 1.0
		for i, th := range stats.PhaseThresholds {
			if th <= 0 || th >= prev || math.IsNaN(th) {
				return fmt.Errorf("boss %s: phaseThresholds[%d]=%v must be strictly decreasing within (0,1)", bt, i, th)
			}
			prev = th
		}
	}
	for key := range bosses {
		if _, ok := types.ParseBossType(key); !ok {
			return fmt.Errorf("unknown boss variant %q", key)
		}
	}
	return nil
}
