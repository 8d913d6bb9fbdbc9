package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Profile 跨局保存的玩家进度
type Profile struct {
	Currency   int            `yaml:"currency"`   // 累计货币
	Experience map[string]int `yaml:"experience"` // 按类型累计的经验（kill / wave / boss）

	BestScore  int `yaml:"bestScore"`
	BestWave   int `yaml:"bestWave"`
	TotalKills int `yaml:"totalKills"`
	Runs       int `yaml:"runs"`

	// 永久升级等级（1-3）
	MaxHPTier int `yaml:"maxHPTier"`
	SpeedTier int `yaml:"speedTier"`
}

// DefaultProfile 返回新玩家的进度
func DefaultProfile() *Profile {
	return &Profile{
		Experience: map[string]int{},
		MaxHPTier:  1,
		SpeedTier:  1,
	}
}

// maxUpgradeTier 永久升级的最高等级
func maxUpgradeTier() int {
	return len(upgradeCosts) + 1
}

// normalize 修正存档中越界的数值
func (p *Profile) normalize() {
	if p.Experience == nil {
		p.Experience = map[string]int{}
	}
	p.MaxHPTier = clampUpgradeTier(p.MaxHPTier)
	p.SpeedTier = clampUpgradeTier(p.SpeedTier)
}

func clampUpgradeTier(tier int) int {
	switch {
	case tier < 1:
		return 1
	case tier > maxUpgradeTier():
		return maxUpgradeTier()
	default:
		return tier
	}
}

// StorageName gdata 存储目录名，设置和进度共用
const StorageName = "horde"

// 存储路径常量
const (
	profileObject   = "profile"
	profileProperty = "progress"
)

// upgradeCosts 从等级 n 升到 n+1 的货币价格，下标为当前等级-1
var upgradeCosts = []int{200, 600}

// ProfileManager 进度管理器
//
// 作为模拟内核的 RewardSink 和 RunObserver：
//   - 奖励在内存中累加
//   - 一局结束时更新最佳记录并写入 gdata
type ProfileManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	profile      *Profile
}

// NewProfileManager 创建进度管理器并尝试加载已有进度
func NewProfileManager(gdataManager *gdata.Manager) *ProfileManager {
	pm := &ProfileManager{
		gdataManager: gdataManager,
		profile:      DefaultProfile(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[ProfileManager] Warning: Failed to load profile: %v (starting fresh)", err)
	}
	return pm
}

// Load 从 gdata 加载进度
func (pm *ProfileManager) Load() error {
	if pm.gdataManager == nil || !pm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		pm.profile = DefaultProfile()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		pm.profile = DefaultProfile()
		return fmt.Errorf("failed to load profile: %w", err)
	}

	loaded := DefaultProfile()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.profile = DefaultProfile()
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	loaded.normalize()
	pm.profile = loaded
	log.Printf("[ProfileManager] Profile loaded: currency=%d, bestScore=%d, bestWave=%d",
		loaded.Currency, loaded.BestScore, loaded.BestWave)
	return nil
}

// Save 写入 gdata，降级模式下直接返回 nil
func (pm *ProfileManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Profile 返回当前进度
func (pm *ProfileManager) Profile() *Profile {
	return pm.profile
}

// RunOptions 根据永久升级等级生成开局参数
func (pm *ProfileManager) RunOptions() RunOptions {
	opts := DefaultRunOptions()
	opts.MaxHPTier = pm.profile.MaxHPTier
	opts.SpeedTier = pm.profile.SpeedTier
	return opts
}

// UpgradeStat 可购买的永久升级
type UpgradeStat string

const (
	UpgradeMaxHP UpgradeStat = "maxhp"
	UpgradeSpeed UpgradeStat = "speed"
)

// PurchaseUpgrade 花费货币提升一级永久升级
//
// 返回：
//   - error: 未知升级、等级非法、已满级或货币不足
func (pm *ProfileManager) PurchaseUpgrade(stat UpgradeStat) error {
	var tier *int
	switch stat {
	case UpgradeMaxHP:
		tier = &pm.profile.MaxHPTier
	case UpgradeSpeed:
		tier = &pm.profile.SpeedTier
	default:
		return fmt.Errorf("unknown upgrade %q", stat)
	}

	if *tier < 1 {
		return fmt.Errorf("upgrade %s has invalid tier %d", stat, *tier)
	}
	if *tier >= maxUpgradeTier() {
		return fmt.Errorf("upgrade %s already at max tier %d", stat, *tier)
	}
	cost := upgradeCosts[*tier-1]
	if pm.profile.Currency < cost {
		return fmt.Errorf("upgrade %s costs %d, have %d", stat, cost, pm.profile.Currency)
	}

	pm.profile.Currency -= cost
	*tier++
	log.Printf("[ProfileManager] Upgraded %s to tier %d", stat, *tier)
	return pm.Save()
}

// AwardCurrency 实现 RewardSink
func (pm *ProfileManager) AwardCurrency(amount int) {
	pm.profile.Currency += amount
}

// AwardExperience 实现 RewardSink
func (pm *ProfileManager) AwardExperience(amount int, kind string) {
	pm.profile.Experience[kind] += amount
}

// OnRunEnded 实现 RunObserver，更新最佳记录并持久化
func (pm *ProfileManager) OnRunEnded(finalScore, finalWave, totalKills int) {
	p := pm.profile
	p.Runs++
	p.TotalKills += totalKills
	if finalScore > p.BestScore {
		p.BestScore = finalScore
	}
	if finalWave > p.BestWave {
		p.BestWave = finalWave
	}
	log.Printf("[ProfileManager] Run ended: score=%d wave=%d kills=%d", finalScore, finalWave, totalKills)

	if err := pm.Save(); err != nil {
		log.Printf("[ProfileManager] Warning: Failed to save profile: %v", err)
	}
}
