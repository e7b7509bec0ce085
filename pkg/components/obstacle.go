package components

// ObstacleKind 障碍物类型
type ObstacleKind int

const (
	// ObstacleSpike 尖刺（矮）
	ObstacleSpike ObstacleKind = iota
	// ObstacleBlock 方块（含高方块和悬空方块）
	ObstacleBlock
)

// String 返回障碍物类型名称
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "SPIKE"
	case ObstacleBlock:
		return "BLOCK"
	default:
		return "UNKNOWN"
	}
}

// ObstacleComponent 障碍物
//
// 生成后只有 Position.X 会变化（每帧减去当前滚动速度）。
// 完全滚出左侧可见区域（含容差）后被移除。
type ObstacleComponent struct {
	Position Vector2D // 左上角
	Size     Vector2D
	Kind     ObstacleKind
}

// Bounds 返回障碍物的碰撞矩形
func (o ObstacleComponent) Bounds() Rect {
	return Rect{X: o.Position.X, Y: o.Position.Y, W: o.Size.X, H: o.Size.Y}
}

// Right 返回障碍物右边缘 X 坐标
func (o ObstacleComponent) Right() float64 {
	return o.Position.X + o.Size.X
}
