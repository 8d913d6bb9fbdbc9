package components

import "testing"

func TestPlayerHealClamps(t *testing.T) {
	p := &PlayerComponent{HP: 90, MaxHP: 100}
	p.Heal(25)
	if p.HP != 100 {
		t.Errorf("Expected HP clamped to 100, got %d", p.HP)
	}
}

func TestPlayerAliveNilSafe(t *testing.T) {
	var p *PlayerComponent
	if p.Alive() {
		t.Error("nil player should not be alive")
	}
}

func TestBulletHasHit(t *testing.T) {
	b := &BulletComponent{}
	if b.HasHit(3) {
		t.Error("fresh bullet should not have hits")
	}
	b.Hits = append(b.Hits, 3)
	if !b.HasHit(3) || b.HasHit(4) {
		t.Error("HasHit should report only recorded targets")
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life, maxLife, want float64
	}{
		{1, 2, 0.5},
		{2, 2, 1},
		{0, 2, 0},
		{-0.1, 2, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := &ParticleComponent{Life: tt.life, MaxLife: tt.maxLife}
		if got := p.Alpha(); got != tt.want {
			t.Errorf("Alpha(life=%v,max=%v) = %v, want %v", tt.life, tt.maxLife, got, tt.want)
		}
	}
}

func TestBossScheduleUsesBossClock(t *testing.T) {
	b := &BossComponent{Clock: 10}
	b.Schedule(0.2, Volley{Shape: VolleyRing, Count: 8})
	if len(b.Pending) != 1 || b.Pending[0].FireAt != 10.2 {
		t.Errorf("Expected pending volley at 10.2, got %+v", b.Pending)
	}
}

func TestBossAliveAndRatio(t *testing.T) {
	b := &BossComponent{HP: 50, MaxHP: 200}
	if !b.Alive() {
		t.Error("Boss with HP should be alive")
	}
	if b.HPRatio() != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", b.HPRatio())
	}
	b.Terminated = true
	if b.Alive() {
		t.Error("Terminated boss should not be alive")
	}
}
