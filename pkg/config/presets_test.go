package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/horde/pkg/embedded"
)

// TestShippedPresets 仓库自带的预设都能通过校验，且确实改动了默认值
func TestShippedPresets(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))

	names, err := ListPresets()
	if err != nil {
		t.Fatalf("ListPresets failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"hard", "rush"}) {
		t.Errorf("ListPresets() = %v, want [hard rush]", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			tuning, err := LoadEmbeddedPreset(name)
			if err != nil {
				t.Fatalf("LoadEmbeddedPreset(%q) failed: %v", name, err)
			}
			if reflect.DeepEqual(tuning, DefaultTuning()) {
				t.Errorf("preset %q does not change anything", name)
			}
		})
	}
}

func TestLoadEmbeddedPreset(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/tuning.yaml":         {Data: []byte("wave:\n  startWave: 1\n")},
		"data/presets/late.yaml":   {Data: []byte("wave:\n  startWave: 12\n")},
		"data/presets/broken.yaml": {Data: []byte("wave:\n  startWave: 0\n")},
	})

	tests := []struct {
		name    string
		preset  string
		wantErr string
	}{
		{"known preset", "late", ""},
		{"unknown preset lists available", "nightmare", "available: broken, late"},
		{"empty name", "", "unknown preset"},
		{"path traversal", "../tuning", "unknown preset"},
		{"invalid values", "broken", "startWave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, err := LoadEmbeddedPreset(tt.preset)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tuning.Wave.StartWave != 12 {
				t.Errorf("StartWave = %d, want 12", tuning.Wave.StartWave)
			}
			// 预设未写的字段保留默认值
			if tuning.Wave.KillsBase != DefaultTuning().Wave.KillsBase {
				t.Errorf("KillsBase = %d, want default", tuning.Wave.KillsBase)
			}
		})
	}
}
