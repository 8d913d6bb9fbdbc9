package game

// Input 一帧的玩家输入
// 由桌面场景从键盘鼠标采集，或由无头机器人生成
type Input struct {
	// MoveX, MoveY 移动方向，各分量在 [-1, 1]，斜向移动由玩家系统归一化
	MoveX, MoveY float64

	// AimX, AimY 瞄准点的世界坐标
	AimX, AimY float64
	// HasAim 为 false 时沿用上一次瞄准方向
	HasAim bool

	// Fire 按住开火
	Fire bool
	// AutoAim 自动瞄准最近的敌人并持续开火
	AutoAim bool

	// Dash 本帧请求冲刺（边沿触发）
	Dash bool
}
