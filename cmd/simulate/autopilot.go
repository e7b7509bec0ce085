package main

import (
	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/samber/lo"
)

// Autopilot 简单的自动驾驶：在障碍物进入提前量范围时起跳
//
// 只看最近的一个会挡住玩家当前高度的障碍物。
// 地面上直接起跳；一段跳下落途中仍被挡住时补一次二段跳。
type Autopilot struct {
	LeadFrames float64 // 提前起跳的帧数，按当前速度换算成距离
}

// NewAutopilot 创建默认提前量的自动驾驶
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadFrames: 9}
}

// Decide 返回本帧是否应该跳跃
//
// 参数:
//   - player: 玩家当前状态
//   - obstacles: 当前障碍物
//   - speed: 当前滚动速度
//
// 返回:
//   - bool: true 表示本帧输入跳跃
func (a *Autopilot) Decide(player components.PlayerComponent, obstacles []components.ObstacleComponent, speed float64) bool {
	front := config.PlayerX + config.PlayerSize
	reach := speed * a.LeadFrames

	threats := lo.Filter(obstacles, func(o components.ObstacleComponent, _ int) bool {
		return o.Right() > config.PlayerX &&
			o.Position.X-front <= reach &&
			blocksHeight(o, player.Y)
	})
	if len(threats) == 0 {
		return false
	}

	if player.OnGround {
		return true
	}
	return player.JumpsUsed == 1 && player.VelocityY > 0
}

// blocksHeight 判断障碍物是否与玩家在 y 处的纵向范围重叠
func blocksHeight(o components.ObstacleComponent, y float64) bool {
	return o.Position.Y < y+config.PlayerSize && o.Position.Y+o.Size.Y > y
}
