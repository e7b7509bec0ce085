package systems

import (
	"math"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
)

// JumpResult 跳跃请求的处理结果
type JumpResult int

const (
	// JumpIgnored 已用完两次跳跃，请求被忽略
	JumpIgnored JumpResult = iota
	// JumpSingle 地面起跳
	JumpSingle
	// JumpDouble 空中二段跳
	JumpDouble
)

// PhysicsSystem 处理玩家纵向运动、滚动速度曲线和碰撞检测
//
// 系统本身无状态，所有状态都保存在调用方传入的组件中，
// 因此同一个实例可以被重复用于多局游戏。
type PhysicsSystem struct {
	physics config.PhysicsConfig
	speed   config.SpeedConfig
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - physics: 重力、跳跃初速度、旋转速率和碰撞收缩量
//   - speed: 滚动速度的初始值、增量和上限
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(physics config.PhysicsConfig, speed config.SpeedConfig) *PhysicsSystem {
	return &PhysicsSystem{
		physics: physics,
		speed:   speed,
	}
}

// Jump 处理一次跳跃请求
//
// 在地面上时施加一段跳初速度；空中且尚未二段跳时施加较弱的二段跳初速度；
// 已经二段跳则不产生任何效果（没有三段跳）。
// 调用方负责只在 Playing 状态下调用，并在返回 JumpDouble 时生成粒子爆散。
func (ps *PhysicsSystem) Jump(p *components.PlayerComponent) JumpResult {
	if p.OnGround {
		p.VelocityY = ps.physics.JumpForce
		p.OnGround = false
		p.JumpsUsed = 1
		return JumpSingle
	}

	if p.JumpsUsed < components.MaxJumps {
		p.VelocityY = ps.physics.DoubleJumpForce
		p.JumpsUsed = components.MaxJumps
		return JumpDouble
	}

	return JumpIgnored
}

// Integrate 推进玩家一帧的纵向运动
//
// 先把重力加到速度上再积分位置。越过地面时贴地、速度清零，
// 若此前在空中则重置跳跃次数并把旋转角对齐到最近的 90° 整数倍。
// 空中时按固定速率累加旋转角（二段跳后更快），旋转不影响物理。
func (ps *PhysicsSystem) Integrate(p *components.PlayerComponent) {
	groundY := config.PlayerGroundY()

	p.VelocityY += ps.physics.Gravity
	p.Y += p.VelocityY

	if p.Y >= groundY {
		p.Y = groundY
		p.VelocityY = 0
		if !p.OnGround {
			p.OnGround = true
			p.JumpsUsed = 0
			p.Rotation = math.Mod(math.Round(p.Rotation/90)*90, 360)
		}
		return
	}

	if p.JumpsUsed == components.MaxJumps {
		p.Rotation += ps.physics.DoubleJumpSpinRate
	} else {
		p.Rotation += ps.physics.SpinRate
	}
}

// InitialSpeed 返回新一局的滚动速度
func (ps *PhysicsSystem) InitialSpeed() float64 {
	return ps.speed.Initial
}

// AdvanceSpeed 返回增加一帧增量后的滚动速度（不超过上限）
// 难度曲线只与时间有关，与得分无关
func (ps *PhysicsSystem) AdvanceSpeed(speed float64) float64 {
	return math.Min(ps.speed.Max, speed+ps.speed.Increment)
}

// ScrollObstacles 将所有障碍物向左移动 speed 像素
func (ps *PhysicsSystem) ScrollObstacles(obstacles []components.ObstacleComponent, speed float64) {
	for i := range obstacles {
		obstacles[i].Position.X -= speed
	}
}

// PlayerBounds 返回玩家在给定 Y 坐标时的碰撞矩形
func PlayerBounds(y float64) components.Rect {
	return components.Rect{
		X: config.PlayerX,
		Y: y,
		W: config.PlayerSize,
		H: config.PlayerSize,
	}
}

// FirstCollision 返回第一个与玩家碰撞的障碍物下标，无碰撞返回 -1
//
// 玩家和障碍物的碰撞盒都先向内收缩 HitboxMargin，再做严格的 AABB 重叠检测，
// 用于宽容擦边。找到第一个碰撞即返回（一次碰撞立即结束本局）。
func (ps *PhysicsSystem) FirstCollision(p components.PlayerComponent, obstacles []components.ObstacleComponent) int {
	playerBox := PlayerBounds(p.Y).Shrink(ps.physics.HitboxMargin)

	for i := range obstacles {
		if playerBox.Overlaps(obstacles[i].Bounds().Shrink(ps.physics.HitboxMargin)) {
			return i
		}
	}

	return -1
}
