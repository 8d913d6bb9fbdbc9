package types

// PowerUpType 道具类型
type PowerUpType int

const (
	PowerUpHealth    PowerUpType = iota // 回复生命
	PowerUpShield                       // 护盾：期间免疫伤害
	PowerUpSpeed                        // 加速
	PowerUpPierce                       // 穿透：子弹命中后不消失
	PowerUpExplosive                    // 爆炸：命中时范围伤害
	PowerUpWeapon                       // 武器升级
)

var powerUpNames = [...]string{"health", "shield", "speed", "pierce", "explosive", "weapon"}

// AllPowerUpTypes 返回所有道具类型
func AllPowerUpTypes() []PowerUpType {
	return []PowerUpType{PowerUpHealth, PowerUpShield, PowerUpSpeed, PowerUpPierce, PowerUpExplosive, PowerUpWeapon}
}

func (t PowerUpType) String() string {
	if int(t) >= 0 && int(t) < len(powerUpNames) {
		return powerUpNames[t]
	}
	return "unknown"
}
