package systems

import (
	"testing"

	"github.com/gonewx/horde/pkg/game"
)

func TestComboDecay(t *testing.T) {
	tests := []struct {
		name      string
		kills     int
		idle      float64
		wantCount int
	}{
		{"single kill survives just under window", 1, 2.95, 1},
		{"single kill decays after window", 1, 3.05, 0},
		{"long combo decays after window", 50, 3.05, 0},
		{"long combo survives short pause", 50, 1.0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, state, _ := newTestSim(t, game.RunOptions{})
			cs := NewComboSystem(state)
			for i := 0; i < tt.kills; i++ {
				cs.Register()
			}

			for elapsed := 0.0; elapsed < tt.idle-1e-9; elapsed += 0.05 {
				cs.Update(0.05)
			}

			if state.Combo.Count != tt.wantCount {
				t.Errorf("combo = %d, want %d", state.Combo.Count, tt.wantCount)
			}
			if state.Combo.Best != tt.kills {
				t.Errorf("best combo = %d, want %d", state.Combo.Best, tt.kills)
			}
		})
	}
}

func TestComboRegisterRestartsWindow(t *testing.T) {
	_, state, _ := newTestSim(t, game.RunOptions{})
	cs := NewComboSystem(state)

	cs.Register()
	cs.Update(2.5)
	cs.Register()
	cs.Update(2.5)

	if state.Combo.Count != 2 {
		t.Errorf("each kill should restart the window, combo = %d", state.Combo.Count)
	}
}

func TestComboBreakKeepsBest(t *testing.T) {
	_, state, _ := newTestSim(t, game.RunOptions{})
	cs := NewComboSystem(state)

	for i := 0; i < 7; i++ {
		cs.Register()
	}
	cs.Break()
	cs.Register()

	if state.Combo.Count != 1 {
		t.Errorf("combo after break = %d, want 1", state.Combo.Count)
	}
	if state.Combo.Best != 7 {
		t.Errorf("best combo = %d, want 7", state.Combo.Best)
	}
}
