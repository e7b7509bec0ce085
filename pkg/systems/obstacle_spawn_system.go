package systems

import (
	"math"

	"github.com/samber/lo"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
)

// RandSource 随机数来源
// *rand.Rand 满足该接口；测试中可以注入固定序列以锁定生成结果
type RandSource interface {
	Float64() float64
}

// ObstacleSpawnSystem 程序化生成障碍物
//
// 职责：
//   - 根据累计阈值图案表随机选择障碍物组
//   - 计算新一组的生成 X（首个固定偏移，之后相对最右障碍物加随机间距）
//   - 保证活跃障碍物数量不低于下限
//   - 移除已经滚出左侧的障碍物
type ObstacleSpawnSystem struct {
	cfg config.SpawnConfig
	rng RandSource
}

// NewObstacleSpawnSystem 创建障碍物生成系统
func NewObstacleSpawnSystem(cfg config.SpawnConfig, rng RandSource) *ObstacleSpawnSystem {
	return &ObstacleSpawnSystem{
		cfg: cfg,
		rng: rng,
	}
}

// NextSpawnX 计算下一组障碍物的生成 X 坐标
//
// 没有障碍物时使用固定的初始偏移；否则在最右障碍物之后加上
// 基础间距与 [0, GapJitter) 的随机间距，且不小于可见跑道宽度，
// 保证补充生成的障碍物不会直接出现在屏幕内。
func (s *ObstacleSpawnSystem) NextSpawnX(obstacles []components.ObstacleComponent) float64 {
	if len(obstacles) == 0 {
		return s.cfg.InitialX
	}

	rightmost := lo.MaxBy(obstacles, func(a, b components.ObstacleComponent) bool {
		return a.Position.X > b.Position.X
	})

	gap := s.cfg.GapBase + s.rng.Float64()*s.cfg.GapJitter
	return math.Max(rightmost.Position.X+gap, config.PlayfieldWidth)
}

// SelectPattern 根据 [0,1) 随机值选择图案
// r 落在 [上一个阈值, Threshold) 时选中该图案；越界时返回最后一个图案
func (s *ObstacleSpawnSystem) SelectPattern(r float64) config.ObstaclePattern {
	for _, pattern := range s.cfg.Patterns {
		if r < pattern.Threshold {
			return pattern
		}
	}
	return s.cfg.Patterns[len(s.cfg.Patterns)-1]
}

// SpawnGroup 生成一组障碍物并追加到列表末尾
//
// 随机数消耗顺序：先间距（若有已存在障碍物），后图案。
func (s *ObstacleSpawnSystem) SpawnGroup(obstacles []components.ObstacleComponent) []components.ObstacleComponent {
	spawnX := s.NextSpawnX(obstacles)
	pattern := s.SelectPattern(s.rng.Float64())

	for _, piece := range pattern.Pieces {
		obstacles = append(obstacles, buildObstacle(piece, spawnX))
	}

	return obstacles
}

// Replenish 在活跃数量低于下限时持续补充障碍物组
func (s *ObstacleSpawnSystem) Replenish(obstacles []components.ObstacleComponent) []components.ObstacleComponent {
	for len(obstacles) < s.cfg.MinActive {
		obstacles = s.SpawnGroup(obstacles)
	}
	return obstacles
}

// SpawnInitial 为新一局预生成 InitialGroups 组障碍物
func (s *ObstacleSpawnSystem) SpawnInitial() []components.ObstacleComponent {
	obstacles := make([]components.ObstacleComponent, 0, s.cfg.MinActive+2)
	for i := 0; i < s.cfg.InitialGroups; i++ {
		obstacles = s.SpawnGroup(obstacles)
	}
	return obstacles
}

// Prune 移除右边缘已越过左侧容差线的障碍物
func (s *ObstacleSpawnSystem) Prune(obstacles []components.ObstacleComponent) []components.ObstacleComponent {
	limit := -s.cfg.PruneMargin
	return lo.Filter(obstacles, func(o components.ObstacleComponent, _ int) bool {
		return o.Right() > limit
	})
}

func buildObstacle(piece config.ObstaclePiece, spawnX float64) components.ObstacleComponent {
	kind := components.ObstacleBlock
	if piece.Kind == config.PieceKindSpike {
		kind = components.ObstacleSpike
	}

	return components.ObstacleComponent{
		Position: components.Vector2D{X: spawnX + piece.OffsetX, Y: config.GroundY - piece.Top},
		Size:     components.Vector2D{X: piece.Width, Y: piece.Height},
		Kind:     kind,
	}
}
