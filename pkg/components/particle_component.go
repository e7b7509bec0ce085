package components

import "image/color"

// ParticleComponent 单个装饰粒子（爆散碎片或雪花）
//
// 粒子由 ParticleSystem 创建和管理，每帧按速度移动并衰减生命值，
// 生命值耗尽或离开可见区域（含容差）后被移除。
// 纯数据组件，不包含逻辑。
type ParticleComponent struct {
	Position Vector2D
	Velocity Vector2D // 像素/帧
	Life     float64  // 剩余生命 (0, 1]，同时作为渲染透明度
	Color    color.RGBA
	Size     float64 // 半径（像素）
}
