package components

// MaxJumps 落地前允许的最大跳跃次数（一段跳 + 二段跳）
const MaxJumps = 2

// PlayerComponent 玩家的纵向运动状态
//
// 玩家的 X 坐标固定（config.PlayerX），世界向左滚动。
// 不变量：
//   - JumpsUsed <= MaxJumps
//   - OnGround 为 true 时 VelocityY == 0 且 Y == GroundY - PlayerSize
type PlayerComponent struct {
	Y         float64 // 玩家方块顶边 Y 坐标
	VelocityY float64 // 纵向速度（像素/帧，负值向上）
	Rotation  float64 // 视觉旋转角度（度），不参与物理
	OnGround  bool
	JumpsUsed int // 0、1 或 2
}

// NewPlayerComponent 创建站在地面上的玩家
func NewPlayerComponent(groundY float64) PlayerComponent {
	return PlayerComponent{
		Y:        groundY,
		OnGround: true,
	}
}
