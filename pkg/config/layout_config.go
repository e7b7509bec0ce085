package config

// 布局配置常量
// 本文件定义了跑道场景的逻辑尺寸、地面高度以及玩家的固定位置。
// 所有坐标使用逻辑屏幕坐标（像素），左上角为原点，Y 轴向下。
const (
	// GameWindowWidth 是游戏逻辑屏幕宽度，也是可见跑道的宽度
	GameWindowWidth = 1200

	// GameWindowHeight 是游戏逻辑屏幕高度
	GameWindowHeight = 600

	// PlayfieldWidth 是可见跑道宽度（浮点形式，供物理与生成逻辑使用）
	PlayfieldWidth = float64(GameWindowWidth)

	// PlayfieldHeight 是可见跑道高度
	PlayfieldHeight = float64(GameWindowHeight)

	// GroundY 是地面顶边的 Y 坐标
	GroundY = 500.0

	// PlayerX 是玩家的固定 X 坐标（世界滚动，玩家不动）
	PlayerX = 100.0

	// PlayerSize 是玩家方块的边长
	PlayerSize = 44.0
)

// PlayerGroundY 返回玩家站在地面上时的 Y 坐标
func PlayerGroundY() float64 {
	return GroundY - PlayerSize
}

// PlayerCenter 返回玩家在给定 Y 坐标时的中心点
func PlayerCenter(y float64) (float64, float64) {
	return PlayerX + PlayerSize/2, y + PlayerSize/2
}
