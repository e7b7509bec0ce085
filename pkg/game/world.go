package game

import (
	"log"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/systems"
)

// Parallax 背景视差层的偏移量
// 纯视觉数据，与玩法无关；取模由渲染端负责
type Parallax struct {
	Mountains float64 // 每帧 -speed*0.1
	Forest    float64 // 每帧 -speed*0.3
	Aurora    float64 // 每帧 +0.2，与速度无关
}

const (
	mountainsParallaxRate = 0.1
	forestParallaxRate    = 0.3
	auroraDrift           = 0.2
)

// World 一次游戏会话的模拟上下文
//
// 保存玩家、障碍物、粒子、计分和状态机。World 是状态的唯一写入者，
// 所有修改都发生在 Tick / Start / Jump 中，且只在游戏循环所在的 goroutine 调用。
// 随机数来源可注入，相同的种子和输入序列会得到完全相同的结果。
type World struct {
	State     State
	Player    components.PlayerComponent
	Obstacles []components.ObstacleComponent
	Metrics   Metrics
	Letters   []rune
	Speed     float64
	Parallax  Parallax
	Frame     uint64 // 自创建以来的总帧数

	cfg       *config.TuningConfig
	rng       systems.RandSource
	score     ScoreModel
	physics   *systems.PhysicsSystem
	spawner   *systems.ObstacleSpawnSystem
	particles *systems.ParticleSystem
}

// NewWorld 创建处于 Start 状态的模拟上下文
//
// 参数:
//   - cfg: 已校验的调参配置
//   - rng: 随机数来源（生成、粒子和胜利庆祝共用，消耗顺序是确定的）
//
// 返回:
//   - *World: 尝试次数为 1、玩家站在地面上、没有障碍物的模拟上下文
func NewWorld(cfg *config.TuningConfig, rng systems.RandSource) *World {
	w := &World{
		State:     StateStart,
		Player:    components.NewPlayerComponent(config.PlayerGroundY()),
		Metrics:   Metrics{Attempts: 1},
		Letters:   make([]rune, 0, len(cfg.Prize.TargetWord)),
		cfg:       cfg,
		rng:       rng,
		score:     NewScoreModel(cfg.Prize),
		physics:   systems.NewPhysicsSystem(cfg.Physics, cfg.Speed),
		spawner:   systems.NewObstacleSpawnSystem(cfg.Spawn, rng),
		particles: systems.NewParticleSystem(cfg.Particles, rng),
	}
	w.Speed = w.physics.InitialSpeed()
	return w
}

// Start 开始新一局
//
// 重置玩家、障碍物、粒子、距离、分数、速度、字母和视差，
// 预生成 InitialGroups 组障碍物并进入 Playing。
// 只在 Start / GameOver / Win 状态下生效，返回是否真的开始了新一局。
func (w *World) Start() bool {
	if !w.State.CanStart() {
		return false
	}

	w.Player = components.NewPlayerComponent(config.PlayerGroundY())
	w.particles.Reset()
	w.Metrics.Distance = 0
	w.Metrics.Score = 0
	w.Speed = w.physics.InitialSpeed()
	w.Letters = w.Letters[:0]
	w.Parallax = Parallax{}
	w.Obstacles = w.spawner.SpawnInitial()
	w.State = StatePlaying

	log.Printf("[World] Run started (attempt #%d, %d obstacles pre-spawned)", w.Metrics.Attempts, len(w.Obstacles))
	return true
}

// Jump 立即处理一次跳跃请求
// 非 Playing 状态下忽略；二段跳时在玩家中心生成一次白色粒子爆散
func (w *World) Jump() systems.JumpResult {
	if w.State != StatePlaying {
		return systems.JumpIgnored
	}

	result := w.physics.Jump(&w.Player)
	if result == systems.JumpDouble {
		cx, cy := config.PlayerCenter(w.Player.Y)
		w.particles.Explode(cx, cy, config.ColorDoubleJump, w.cfg.Particles.DoubleJumpBurst)
	}
	return result
}

// Crash 强制触发碰撞结果（在玩家位置爆散并进入 GameOver）
// 非 Playing 状态下忽略，特别是 Win 不会被降级为 GameOver
func (w *World) Crash() Events {
	var ev Events
	w.crash(&ev)
	return ev
}

// Particles 返回活跃粒子的只读视图
func (w *World) Particles() []components.ParticleComponent {
	return w.particles.Particles()
}

// NextLetterAt 返回收集下一个字母所需的分数，已集齐时返回 -1
func (w *World) NextLetterAt() int {
	return w.score.NextLetterAt(len(w.Letters))
}

// TargetWord 返回目标单词
func (w *World) TargetWord() string {
	return w.score.Word()
}

func (w *World) crash(ev *Events) {
	if w.State != StatePlaying {
		return
	}

	w.particles.Explode(config.PlayerX+20, w.Player.Y+20, config.ColorPlayer, w.cfg.Particles.CrashBurst)
	w.State = StateGameOver

	ev.GameOver = true
	ev.FinalScore = w.Metrics.Score
	ev.FinishedAttempt = w.Metrics.Attempts
	ev.NewHighScore = w.recordHighScore()
	w.Metrics.Attempts++

	log.Printf("[World] Crashed: score=%d attempt=%d highScore=%d", ev.FinalScore, ev.FinishedAttempt, w.Metrics.HighScore)
}

func (w *World) win(ev *Events) {
	w.State = StateWin

	ev.Won = true
	ev.FinalScore = w.Metrics.Score
	ev.FinishedAttempt = w.Metrics.Attempts
	ev.NewHighScore = w.recordHighScore()

	log.Printf("[World] Word %q complete: score=%d", w.score.Word(), ev.FinalScore)
}

func (w *World) recordHighScore() bool {
	if w.Metrics.Score > w.Metrics.HighScore {
		w.Metrics.HighScore = w.Metrics.Score
		return true
	}
	return false
}
