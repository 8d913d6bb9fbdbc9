package config

import "github.com/gonewx/horde/pkg/types"

// DefaultTuning 返回与 data/tuning.yaml 一致的默认参数
func DefaultTuning() *Tuning {
	return &Tuning{
		Arena: ArenaConfig{
			Width:        1280,
			Height:       720,
			BulletMargin: 50,
			CullMargin:   100,
			SpawnMargin:  40,
		},
		Simulation: SimulationConfig{
			MaxDeltaTime:    0.05,
			GameOverGrace:   1.5,
			SpatialCellSize: 64,
			MaxParticles:    600,
			ParticleLife:    0.6,
			ParticleSpeed:   220,
		},
		Player: PlayerConfig{
			Radius:               14,
			MaxHPTiers:           []int{100, 125, 150},
			SpeedTiers:           []float64{240, 270, 300},
			DashCooldown:         1.2,
			DashDuration:         0.18,
			DashSpeedMultiplier:  3.0,
			SpeedBoostMultiplier: 1.4,
		},
		Weapon: WeaponConfig{
			FireCooldown:   0.15,
			BulletSpeed:    650,
			BulletRadius:   4,
			BulletLifetime: 1.6,
			BulletDamage:   1,
			TierSpreads: [][]float64{
				{0},
				{-0.06, 0.06},
				{-0.24, -0.12, 0, 0.12, 0.24},
			},
		},
		Combat: CombatConfig{
			EnemyBulletDamage:   10,
			EnemyBulletSpeed:    240,
			EnemyBulletRadius:   5,
			EnemyBulletLifetime: 6,
			BossContactDamage:   20,
			BossContactCooldown: 0.5,
			SplashRadius:        80,
			SplashDamage:        2,
		},
		Combo: ComboConfig{
			Window: 3,
		},
		PowerUps: PowerUpConfig{
			DropChance:        0.08,
			Radius:            11,
			Lifetime:          8,
			HealAmount:        25,
			ShieldDuration:    5,
			SpeedDuration:     6,
			PierceDuration:    6,
			ExplosiveDuration: 6,
			WeaponMaxedScore:  250,
		},
		Enemies: map[string]EnemyStats{
			types.EnemyKeyNormal:   {Radius: 12, Speed: 90, HP: 2, ContactDamage: 10, Score: 10, Currency: 1, Experience: 1},
			types.EnemyKeyFast:     {Radius: 9, Speed: 170, HP: 1, ContactDamage: 8, Score: 15, Currency: 1, Experience: 1},
			types.EnemyKeyTank:     {Radius: 20, Speed: 55, HP: 6, ContactDamage: 20, Score: 30, Currency: 3, Experience: 3},
			types.EnemyKeyShooter:  {Radius: 13, Speed: 70, HP: 3, ContactDamage: 10, Score: 25, Currency: 2, Experience: 2, ShootCooldown: 2.2, PreferredRange: 260},
			types.EnemyKeyMiniboss: {Radius: 28, Speed: 60, HP: 25, ContactDamage: 30, Score: 150, Currency: 10, Experience: 15, AlwaysDrops: true},
			types.EnemyKeyEnforcer: {Radius: 16, Speed: 80, HP: 12, ContactDamage: 25, Score: 80, Currency: 6, Experience: 8, ChargeTime: 0.7, DashSpeed: 520, DashDuration: 0.45, DashCooldown: 3},
		},
		SpawnTables: []SpawnTable{
			{
				FromWave: 1,
				Entries: []SpawnEntry{
					{Type: types.EnemyKeyMiniboss, MinWave: 3, Chance: 0.03},
					{Type: types.EnemyKeyShooter, MinWave: 4, Chance: 0.10},
					{Type: types.EnemyKeyTank, MinWave: 2, Chance: 0.12},
					{Type: types.EnemyKeyFast, MinWave: 1, Chance: 0.18},
				},
			},
			{
				FromWave: 16,
				Entries: []SpawnEntry{
					{Type: types.EnemyKeyMiniboss, MinWave: 3, Chance: 0.05},
					{Type: types.EnemyKeyEnforcer, MinWave: 16, Chance: 0.10},
					{Type: types.EnemyKeyShooter, MinWave: 4, Chance: 0.14},
					{Type: types.EnemyKeyTank, MinWave: 2, Chance: 0.15},
					{Type: types.EnemyKeyFast, MinWave: 1, Chance: 0.18},
				},
			},
		},
		Wave: WaveConfig{
			StartWave:              1,
			BaseInterval:           1.0,
			IntervalPerWave:        0.05,
			MinInterval:            0.25,
			KillsBase:              12,
			KillsPerWave:           5,
			BreakDuration:          3,
			BossCountdown:          3,
			LegendaryChance:        0.001,
			LegendaryAfterWave:     3,
			UltraEvery:             20,
			MegaEvery:              10,
			BossEvery:              5,
			BonusScorePerWave:      100,
			BonusCurrencyPerWave:   5,
			BonusExperiencePerWave: 10,
			HealFraction:           0.2,
			BossSpawnY:             120,
		},
		Bosses: map[string]BossStats{
			types.BossKeyBase:      {Radius: 40, Speed: 90, HP: 150, Score: 1000, Currency: 50, Experience: 100, PhaseThresholds: []float64{0.5}, PatternDuration: 4, AttackScale: 1, BulletSpeed: 200},
			types.BossKeyMega:      {Radius: 50, Speed: 100, HP: 320, Score: 2500, Currency: 120, Experience: 250, PhaseThresholds: []float64{0.66, 0.33}, PatternDuration: 3.5, AttackScale: 0.9, BulletSpeed: 220},
			types.BossKeyUltra:     {Radius: 58, Speed: 110, HP: 600, Score: 6000, Currency: 300, Experience: 600, PhaseThresholds: []float64{0.75, 0.5, 0.25}, PatternDuration: 3, AttackScale: 0.8, BulletSpeed: 240},
			types.BossKeyLegendary: {Radius: 64, Speed: 120, HP: 1000, Score: 15000, Currency: 1000, Experience: 1500, PhaseThresholds: []float64{0.8, 0.6, 0.4, 0.2}, PatternDuration: 2.5, AttackScale: 0.7, BulletSpeed: 260},
		},
	}
}
