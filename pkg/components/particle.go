package components

// ParticleComponent 纯视觉粒子
// 模拟内核只负责其生命周期（创建和过期），不参与碰撞
type ParticleComponent struct {
	X, Y    float64
	VX, VY  float64
	Color   string
	Size    float64
	Life    float64 // 剩余寿命
	MaxLife float64 // 总寿命
}

// Alpha 返回淡出透明度 [0,1]
func (p *ParticleComponent) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a > 1 {
		return 1
	}
	return a
}
