package systems

import (
	"testing"

	"github.com/gonewx/horde/pkg/game"
)

func TestParticleBurstRespectsToggle(t *testing.T) {
	tests := []struct {
		name          string
		enabled       bool
		wantParticles int
		wantBursts    int
	}{
		{"enabled", true, 12, 1},
		{"disabled", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, state, hooks := newTestSim(t, game.RunOptions{})
			hooks.particles = tt.enabled

			sim.particles.Burst(100, 100, "red", 12)

			if state.Particles.Len() != tt.wantParticles {
				t.Errorf("particles = %d, want %d", state.Particles.Len(), tt.wantParticles)
			}
			if hooks.bursts != tt.wantBursts {
				t.Errorf("bursts = %d, want %d", hooks.bursts, tt.wantBursts)
			}
		})
	}
}

func TestParticleCap(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	limit := state.Tuning.Simulation.MaxParticles

	for i := 0; i < 100; i++ {
		sim.particles.Burst(100, 100, "red", 40)
	}

	if state.Particles.Len() != limit {
		t.Errorf("particles = %d, want capped at %d", state.Particles.Len(), limit)
	}
}

func TestParticlesExpire(t *testing.T) {
	sim, state, _ := newTestSim(t, game.RunOptions{})
	sim.particles.Burst(100, 100, "red", 20)

	for i := 0; i < 20; i++ {
		sim.particles.Update(0.05)
	}

	if state.Particles.Len() != 0 {
		t.Errorf("particles should expire within their max life, %d left", state.Particles.Len())
	}
}

func TestScreenShake(t *testing.T) {
	sim, state, hooks := newTestSim(t, game.RunOptions{})

	sim.particles.Shake(5, 0.3)
	sim.particles.Shake(3, 0.5)
	if state.ShakeMagnitude != 5 || state.ShakeTime != 0.5 {
		t.Errorf("shake should keep the stronger and longer request, got %v/%v", state.ShakeMagnitude, state.ShakeTime)
	}

	sim.particles.Update(0.6)
	if state.ShakeTime != 0 || state.ShakeMagnitude != 0 {
		t.Error("shake should reset after it expires")
	}

	hooks.shake = false
	sim.particles.Shake(5, 0.3)
	if state.ShakeTime != 0 {
		t.Error("disabled shake should not write state")
	}
}
