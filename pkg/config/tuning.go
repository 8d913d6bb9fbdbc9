package config

import (
	"fmt"
	"os"

	"github.com/gonewx/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultTuningPath 内置调优文件路径
const DefaultTuningPath = "data/tuning.yaml"

// Tuning 模拟内核的全部调优参数
//
// 配置文件位置: data/tuning.yaml
// 解析时以 DefaultTuning() 为底，文件中未出现的字段保留默认值。
type Tuning struct {
	Arena       ArenaConfig           `yaml:"arena"`       // 场地边界
	Simulation  SimulationConfig      `yaml:"simulation"`  // 步进与资源上限
	Player      PlayerConfig          `yaml:"player"`      // 玩家属性
	Weapon      WeaponConfig          `yaml:"weapon"`      // 玩家武器
	Combat      CombatConfig          `yaml:"combat"`      // 伤害与碰撞
	Combo       ComboConfig           `yaml:"combo"`       // 连击
	PowerUps    PowerUpConfig         `yaml:"powerUps"`    // 道具
	Enemies     map[string]EnemyStats `yaml:"enemies"`     // 敌人类型 -> 参数
	SpawnTables []SpawnTable          `yaml:"spawnTables"` // 按波次分层的生成概率表
	Wave        WaveConfig            `yaml:"wave"`        // 波次导演
	Bosses      map[string]BossStats  `yaml:"bosses"`      // Boss 变体 -> 参数
}

// ArenaConfig 场地尺寸与边界余量（像素）
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BulletMargin float64 `yaml:"bulletMargin"` // 子弹离开场地超过该距离后删除
	CullMargin   float64 `yaml:"cullMargin"`   // 敌人离开场地超过该距离后剔除
	SpawnMargin  float64 `yaml:"spawnMargin"`  // 敌人在场地外多远处生成
}

// SimulationConfig 步进参数
type SimulationConfig struct {
	MaxDeltaTime    float64 `yaml:"maxDeltaTime"`    // 单步最大时间（秒）
	GameOverGrace   float64 `yaml:"gameOverGrace"`   // 玩家死亡后继续播放粒子的时间（秒）
	SpatialCellSize float64 `yaml:"spatialCellSize"` // 空间哈希格子边长
	MaxParticles    int     `yaml:"maxParticles"`    // 粒子数量上限
	ParticleLife    float64 `yaml:"particleLife"`    // 粒子基础寿命（秒）
	ParticleSpeed   float64 `yaml:"particleSpeed"`   // 粒子最大初速度
}

// PlayerConfig 玩家属性，三个永久升级等级分别对应数组的三个元素
type PlayerConfig struct {
	Radius               float64   `yaml:"radius"`
	MaxHPTiers           []int     `yaml:"maxHPTiers"`
	SpeedTiers           []float64 `yaml:"speedTiers"`
	DashCooldown         float64   `yaml:"dashCooldown"`
	DashDuration         float64   `yaml:"dashDuration"`
	DashSpeedMultiplier  float64   `yaml:"dashSpeedMultiplier"`
	SpeedBoostMultiplier float64   `yaml:"speedBoostMultiplier"`
}

// WeaponConfig 玩家子弹参数
type WeaponConfig struct {
	FireCooldown   float64 `yaml:"fireCooldown"`
	BulletSpeed    float64 `yaml:"bulletSpeed"`
	BulletRadius   float64 `yaml:"bulletRadius"`
	BulletLifetime float64 `yaml:"bulletLifetime"`
	BulletDamage   int     `yaml:"bulletDamage"`
	// TierSpreads 每个武器等级的散射角偏移（弧度），长度即子弹数
	TierSpreads [][]float64 `yaml:"tierSpreads"`
}

// CombatConfig 伤害相关参数
type CombatConfig struct {
	EnemyBulletDamage   int     `yaml:"enemyBulletDamage"`
	EnemyBulletSpeed    float64 `yaml:"enemyBulletSpeed"`
	EnemyBulletRadius   float64 `yaml:"enemyBulletRadius"`
	EnemyBulletLifetime float64 `yaml:"enemyBulletLifetime"`
	BossContactDamage   int     `yaml:"bossContactDamage"`
	BossContactCooldown float64 `yaml:"bossContactCooldown"`
	SplashRadius        float64 `yaml:"splashRadius"`
	SplashDamage        int     `yaml:"splashDamage"`
}

// ComboConfig 连击参数
type ComboConfig struct {
	Window float64 `yaml:"window"` // 连击衰减时间（秒）
}

// PowerUpConfig 道具参数
type PowerUpConfig struct {
	DropChance        float64 `yaml:"dropChance"`
	Radius            float64 `yaml:"radius"`
	Lifetime          float64 `yaml:"lifetime"`
	HealAmount        int     `yaml:"healAmount"`
	ShieldDuration    float64 `yaml:"shieldDuration"`
	SpeedDuration     float64 `yaml:"speedDuration"`
	PierceDuration    float64 `yaml:"pierceDuration"`
	ExplosiveDuration float64 `yaml:"explosiveDuration"`
	WeaponMaxedScore  int     `yaml:"weaponMaxedScore"` // 武器已满级时拾取升级改为加分
}

// EnemyStats 单个敌人类型的固定参数
type EnemyStats struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	HP            int     `yaml:"hp"`
	ContactDamage int     `yaml:"contactDamage"`
	Score         int     `yaml:"score"`
	Currency      int     `yaml:"currency"`
	Experience    int     `yaml:"experience"`
	AlwaysDrops   bool    `yaml:"alwaysDrops"` // 击杀必掉道具

	// 射手
	ShootCooldown  float64 `yaml:"shootCooldown,omitempty"`
	PreferredRange float64 `yaml:"preferredRange,omitempty"`

	// 精英（enforcer）
	ChargeTime   float64 `yaml:"chargeTime,omitempty"`
	DashSpeed    float64 `yaml:"dashSpeed,omitempty"`
	DashDuration float64 `yaml:"dashDuration,omitempty"`
	DashCooldown float64 `yaml:"dashCooldown,omitempty"`
}

// SpawnTable 从 FromWave 起生效的生成概率表
type SpawnTable struct {
	FromWave int          `yaml:"fromWave"`
	Entries  []SpawnEntry `yaml:"entries"` // 按顺序累加概率，剩余概率为普通敌人
}

// SpawnEntry 概率表中的一层
type SpawnEntry struct {
	Type    string  `yaml:"type"`
	MinWave int     `yaml:"minWave"` // 早于该波次时本层概率为0
	Chance  float64 `yaml:"chance"`
}

// WaveConfig 波次导演参数
type WaveConfig struct {
	StartWave              int     `yaml:"startWave"`
	BaseInterval           float64 `yaml:"baseInterval"`
	IntervalPerWave        float64 `yaml:"intervalPerWave"`
	MinInterval            float64 `yaml:"minInterval"`
	KillsBase              int     `yaml:"killsBase"`
	KillsPerWave           int     `yaml:"killsPerWave"`
	BreakDuration          float64 `yaml:"breakDuration"`
	BossCountdown          float64 `yaml:"bossCountdown"`
	LegendaryChance        float64 `yaml:"legendaryChance"`
	LegendaryAfterWave     int     `yaml:"legendaryAfterWave"`
	UltraEvery             int     `yaml:"ultraEvery"`
	MegaEvery              int     `yaml:"megaEvery"`
	BossEvery              int     `yaml:"bossEvery"`
	BonusScorePerWave      int     `yaml:"bonusScorePerWave"`
	BonusCurrencyPerWave   int     `yaml:"bonusCurrencyPerWave"`
	BonusExperiencePerWave int     `yaml:"bonusExperiencePerWave"`
	HealFraction           float64 `yaml:"healFraction"`
	BossSpawnY             float64 `yaml:"bossSpawnY"`
}

// BossStats 单个 Boss 变体的参数
type BossStats struct {
	Radius          float64   `yaml:"radius"`
	Speed           float64   `yaml:"speed"`
	HP              int       `yaml:"hp"`
	Score           int       `yaml:"score"`
	Currency        int       `yaml:"currency"`
	Experience      int       `yaml:"experience"`
	PhaseThresholds []float64 `yaml:"phaseThresholds"` // 血量比例阈值，严格递减
	PatternDuration float64   `yaml:"patternDuration"` // 移动模式切换间隔（秒）
	AttackScale     float64   `yaml:"attackScale"`     // 攻击冷却倍率，越小越快
	BulletSpeed     float64   `yaml:"bulletSpeed"`
}

// LoadTuning 从磁盘加载调优文件
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// LoadEmbeddedTuning 从嵌入文件系统加载调优文件
func LoadEmbeddedTuning(path string) (*Tuning, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded tuning %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning 解析 YAML 并校验
// 未出现的字段保留 DefaultTuning() 的值
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := validateTuning(t); err != nil {
		return nil, err
	}
	return t, nil
}
