package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gonewx/horde/pkg/types"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := validateTuning(DefaultTuning()); err != nil {
		t.Fatalf("DefaultTuning() should be valid, got: %v", err)
	}
}

// TestShippedTuningMatchesDefaults data/tuning.yaml 必须与 DefaultTuning() 保持一致
func TestShippedTuningMatchesDefaults(t *testing.T) {
	path := filepath.Join("..", "..", DefaultTuningPath)
	loaded, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning(%s) failed: %v", path, err)
	}

	if !reflect.DeepEqual(loaded, DefaultTuning()) {
		t.Errorf("%s drifted from DefaultTuning()", path)
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Tuning)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *Tuning) {
				if cfg.Arena.Width != 1280 {
					t.Errorf("expected default width 1280, got %v", cfg.Arena.Width)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
wave:
  startWave: 4
combat:
  splashRadius: 120
`,
			validate: func(t *testing.T, cfg *Tuning) {
				if cfg.Wave.StartWave != 4 {
					t.Errorf("expected startWave = 4, got %d", cfg.Wave.StartWave)
				}
				if cfg.Combat.SplashRadius != 120 {
					t.Errorf("expected splashRadius = 120, got %v", cfg.Combat.SplashRadius)
				}
				// 未覆盖的字段保持默认值
				if cfg.Wave.KillsBase != 12 {
					t.Errorf("expected killsBase = 12, got %d", cfg.Wave.KillsBase)
				}
			},
		},
		{
			name: "enemy entry override keeps other enemies",
			yamlContent: `
enemies:
  tank: { radius: 24, speed: 50, hp: 10, contactDamage: 25, score: 40, currency: 4, experience: 4 }
`,
			validate: func(t *testing.T, cfg *Tuning) {
				if cfg.Enemy(types.EnemyTank).HP != 10 {
					t.Errorf("expected tank hp = 10, got %d", cfg.Enemy(types.EnemyTank).HP)
				}
				if cfg.Enemy(types.EnemyFast).HP != 1 {
					t.Errorf("expected fast hp to keep default 1, got %d", cfg.Enemy(types.EnemyFast).HP)
				}
			},
		},
		{
			name: "unknown enemy type",
			yamlContent: `
enemies:
  zombie: { radius: 10, speed: 10, hp: 1 }
`,
			wantErr:     true,
			errContains: `unknown enemy type "zombie"`,
		},
		{
			name: "spawn table chances exceed one",
			yamlContent: `
spawnTables:
  - fromWave: 1
    entries:
      - { type: fast, minWave: 1, chance: 0.7 }
      - { type: tank, minWave: 1, chance: 0.5 }
`,
			wantErr:     true,
			errContains: "must be <= 1",
		},
		{
			name: "spawn tables out of order",
			yamlContent: `
spawnTables:
  - fromWave: 1
    entries: []
  - fromWave: 1
    entries: []
`,
			wantErr:     true,
			errContains: "sorted by fromWave",
		},
		{
			name: "boss thresholds not decreasing",
			yamlContent: `
bosses:
  mega: { radius: 50, speed: 100, hp: 320, phaseThresholds: [0.3, 0.6], patternDuration: 3, attackScale: 1 }
`,
			wantErr:     true,
			errContains: "strictly decreasing",
		},
		{
			name: "non-positive delta clamp",
			yamlContent: `
simulation:
  maxDeltaTime: 0
`,
			wantErr:     true,
			errContains: "maxDeltaTime",
		},
		{
			name:        "malformed yaml",
			yamlContent: "arena: [",
			wantErr:     true,
			errContains: "failed to parse tuning YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTuning([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestWaveFormulas(t *testing.T) {
	w := DefaultTuning().Wave

	tests := []struct {
		wave         int
		wantInterval float64
		wantKills    int
	}{
		{1, 0.95, 17},
		{4, 0.8, 32},
		{10, 0.5, 62},
		{15, 0.25, 87},
		{30, 0.25, 162},
	}

	for _, tt := range tests {
		if got := w.SpawnInterval(tt.wave); got < tt.wantInterval-1e-9 || got > tt.wantInterval+1e-9 {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.wave, got, tt.wantInterval)
		}
		if got := w.KillTarget(tt.wave); got != tt.wantKills {
			t.Errorf("KillTarget(%d) = %d, want %d", tt.wave, got, tt.wantKills)
		}
	}
}

func TestSpawnTableFor(t *testing.T) {
	cfg := DefaultTuning()

	if got := cfg.SpawnTableFor(1).FromWave; got != 1 {
		t.Errorf("wave 1 should use table from wave 1, got %d", got)
	}
	if got := cfg.SpawnTableFor(15).FromWave; got != 1 {
		t.Errorf("wave 15 should use table from wave 1, got %d", got)
	}
	if got := cfg.SpawnTableFor(16).FromWave; got != 16 {
		t.Errorf("wave 16 should use table from wave 16, got %d", got)
	}
}

func TestPlayerTiers(t *testing.T) {
	p := DefaultTuning().Player

	if p.MaxHP(1) != 100 || p.MaxHP(3) != 150 {
		t.Errorf("unexpected max HP tiers: %d, %d", p.MaxHP(1), p.MaxHP(3))
	}
	// 越界等级被夹到合法范围
	if p.MaxHP(0) != 100 || p.MaxHP(9) != 150 {
		t.Error("out of range tiers should clamp")
	}
	if p.Speed(2) != 270 {
		t.Errorf("expected tier 2 speed 270, got %v", p.Speed(2))
	}
}

func TestMaxEnemyRadiusIncludesBosses(t *testing.T) {
	if got := DefaultTuning().MaxEnemyRadius(); got != 64 {
		t.Errorf("expected legendary boss radius 64, got %v", got)
	}
}
