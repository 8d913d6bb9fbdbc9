package app

import (
	"log"
	"math"

	"github.com/gonewx/horde/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// tone 一个合成音效：从 Freq 滑到 EndFreq 的正弦波
type tone struct {
	Freq    float64
	EndFreq float64
	Seconds float64
	Gain    float64
}

// cueTones 音效标签 -> 合成参数
var cueTones = map[string]tone{
	game.CueShoot:        {Freq: 950, EndFreq: 800, Seconds: 0.05, Gain: 0.15},
	game.CueHit:          {Freq: 420, EndFreq: 380, Seconds: 0.04, Gain: 0.2},
	game.CueKill:         {Freq: 240, EndFreq: 120, Seconds: 0.12, Gain: 0.3},
	game.CuePlayerHurt:   {Freq: 180, EndFreq: 90, Seconds: 0.2, Gain: 0.4},
	game.CuePowerUp:      {Freq: 600, EndFreq: 1200, Seconds: 0.18, Gain: 0.3},
	game.CueWaveClear:    {Freq: 520, EndFreq: 1040, Seconds: 0.35, Gain: 0.3},
	game.CueBossWarn:     {Freq: 110, EndFreq: 110, Seconds: 0.6, Gain: 0.35},
	game.CueBossSpawn:    {Freq: 80, EndFreq: 160, Seconds: 0.5, Gain: 0.4},
	game.CueBossPhase:    {Freq: 300, EndFreq: 150, Seconds: 0.3, Gain: 0.35},
	game.CueBossDeath:    {Freq: 400, EndFreq: 40, Seconds: 0.9, Gain: 0.45},
	game.CueGameOver:     {Freq: 330, EndFreq: 55, Seconds: 1.2, Gain: 0.4},
	game.CueEnforcerDash: {Freq: 150, EndFreq: 450, Seconds: 0.15, Gain: 0.3},
}

// synthTone 生成 16 位小端双声道 PCM
// 首尾各有一小段线性淡入淡出，避免爆音
func synthTone(t tone, sampleRate int) []byte {
	n := int(float64(sampleRate) * t.Seconds)
	if n <= 0 {
		return nil
	}
	pcm := make([]byte, n*4)
	fade := sampleRate / 200

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}

		s := int16(math.Sin(phase) * t.Gain * env * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		pcm[4*i] = lo
		pcm[4*i+1] = hi
		pcm[4*i+2] = lo
		pcm[4*i+3] = hi
	}
	return pcm
}

// CuePlayer 用合成音效播放模拟内核发出的音效标签
//
// 每个标签对应一个预先合成的 audio.Player，
// 重复触发时从头重播。音量和开关实时读取 SettingsManager。
type CuePlayer struct {
	players  map[string]*audio.Player
	settings *game.SettingsManager
	unknown  map[string]bool
}

// NewCuePlayer 合成全部音效
//
// 参数:
//   - ctx: 音频上下文，采样率必须为 SampleRate
//   - settings: 设置管理器，可为 nil（始终以满音量播放）
func NewCuePlayer(ctx *audio.Context, settings *game.SettingsManager) *CuePlayer {
	cp := &CuePlayer{
		players:  make(map[string]*audio.Player, len(cueTones)),
		settings: settings,
		unknown:  map[string]bool{},
	}
	for tag, t := range cueTones {
		cp.players[tag] = ctx.NewPlayerFromBytes(synthTone(t, SampleRate))
	}
	log.Printf("[CuePlayer] Synthesized %d cues", len(cp.players))
	return cp
}

// PlayCue 播放一个音效标签，未知标签只记录一次日志
func (cp *CuePlayer) PlayCue(tag string) {
	volume := 1.0
	if cp.settings != nil {
		s := cp.settings.GetSettings()
		if !s.SoundEnabled {
			return
		}
		volume = s.SoundVolume
	}

	p, ok := cp.players[tag]
	if !ok {
		if !cp.unknown[tag] {
			cp.unknown[tag] = true
			log.Printf("[CuePlayer] Warning: no sound for cue %q", tag)
		}
		return
	}

	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		log.Printf("[CuePlayer] Warning: failed to rewind %q: %v", tag, err)
		return
	}
	p.Play()
}
