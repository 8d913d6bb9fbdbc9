package game

// Snapshot 某一帧结束时的只读状态副本
// 桌面 HUD 每帧读取，无头模式通过 websocket 广播
type Snapshot struct {
	Score            int     `json:"score"`
	Wave             int     `json:"wave"`
	PlayerHP         int     `json:"playerHP"`
	PlayerMaxHP      int     `json:"playerMaxHP"`
	WeaponTier       int     `json:"weaponTier"`
	Combo            int     `json:"combo"`
	BestCombo        int     `json:"bestCombo"`
	RemainingEnemies int     `json:"remainingEnemies"`
	Kills            int     `json:"kills"`
	BossesDefeated   int     `json:"bossesDefeated"`
	Elapsed          float64 `json:"elapsed"`

	Enemies      int `json:"enemies"`
	EnemyBullets int `json:"enemyBullets"`

	BreakTime     float64 `json:"breakTime,omitempty"`
	BossCountdown float64 `json:"bossCountdown,omitempty"`

	Boss      string `json:"boss,omitempty"`
	BossHP    int    `json:"bossHP,omitempty"`
	BossMaxHP int    `json:"bossMaxHP,omitempty"`
	BossPhase int    `json:"bossPhase,omitempty"`

	GameOver bool `json:"gameOver"`
}
