package app

import (
	"encoding/binary"
	"testing"

	"github.com/gonewx/horde/pkg/game"
)

func TestSynthToneLength(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    int
	}{
		{"short", 0.05, 2400 * 4},
		{"one second", 1, SampleRate * 4},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := synthTone(tone{Freq: 440, EndFreq: 440, Seconds: tt.seconds, Gain: 0.5}, SampleRate)
			if len(pcm) != tt.want {
				t.Errorf("expected %d bytes, got %d", tt.want, len(pcm))
			}
		})
	}
}

func TestSynthToneShape(t *testing.T) {
	gain := 0.5
	pcm := synthTone(tone{Freq: 440, EndFreq: 440, Seconds: 0.1, Gain: gain}, SampleRate)

	limit := int16(gain*32767) + 1
	peak := int16(0)
	for i := 0; i+3 < len(pcm); i += 4 {
		left := int16(binary.LittleEndian.Uint16(pcm[i:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if left != right {
			t.Fatalf("sample %d: channels differ (%d, %d)", i/4, left, right)
		}
		if left > limit || left < -limit {
			t.Fatalf("sample %d: %d exceeds gain limit %d", i/4, left, limit)
		}
		if left > peak {
			peak = left
		}
	}

	// 淡入淡出：首尾样本接近静音
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if first != 0 {
		t.Errorf("first sample should be silent, got %d", first)
	}
	if last > 500 || last < -500 {
		t.Errorf("last sample should fade out, got %d", last)
	}
	if peak < limit/2 {
		t.Errorf("tone too quiet, peak %d", peak)
	}
}

func TestEveryCueHasTone(t *testing.T) {
	cues := []string{
		game.CueShoot, game.CueHit, game.CueKill, game.CuePlayerHurt,
		game.CuePowerUp, game.CueWaveClear, game.CueBossWarn, game.CueBossSpawn,
		game.CueBossPhase, game.CueBossDeath, game.CueGameOver, game.CueEnforcerDash,
	}
	for _, cue := range cues {
		tn, ok := cueTones[cue]
		if !ok {
			t.Errorf("cue %q has no tone", cue)
			continue
		}
		if tn.Seconds <= 0 || tn.Gain <= 0 || tn.Gain > 1 {
			t.Errorf("cue %q has invalid tone %+v", cue, tn)
		}
	}
}
