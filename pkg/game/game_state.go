package game

// State 游戏状态
//
// 状态转换：
//
//	Start    --开始--> Playing
//	Playing  --碰撞--> GameOver
//	Playing  --集齐字母--> Win
//	GameOver --开始--> Playing
//	Win      --开始--> Playing（Win 对本局是终态，只能通过新一局离开）
type State int

const (
	// StateStart 标题画面，等待第一次开始
	StateStart State = iota
	// StatePlaying 正在奔跑
	StatePlaying
	// StateGameOver 撞上障碍物
	StateGameOver
	// StateWin 集齐目标单词
	StateWin
	// StatePaused 预留，当前没有任何转换进入该状态
	StatePaused
)

// String 返回状态名称，用于日志
func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAMEOVER"
	case StateWin:
		return "WIN"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Idle 返回该状态下是否只运行环境动画（不推进物理、滚动和碰撞）
func (s State) Idle() bool {
	return s != StatePlaying
}

// CanStart 返回该状态下是否接受开始新一局
func (s State) CanStart() bool {
	return s == StateStart || s == StateGameOver || s == StateWin
}

// Metrics 本局和跨局的计分数据
type Metrics struct {
	Score     int     // floor(Distance / DistancePerPoint)
	HighScore int     // 跨局保持，只在一局结束且超过时更新
	Attempts  int     // 当前是第几次尝试，从 1 开始
	Distance  float64 // 本局累计滚动距离
}
