package game

import (
	"context"
	"log"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/systems"
)

// 文案占位文字
const (
	WelcomePlaceholder = "Loading festive greetings..."
	RoastPlaceholder   = "Checking the Naughty List..."
)

// FlavorSource 祝福语/吐槽文案来源
// 实现必须可并发调用，且自行处理失败（返回兜底文字，不返回错误）
type FlavorSource interface {
	WelcomeMessage(ctx context.Context) string
	Roast(ctx context.Context, score, attempts int) string
}

// ScoreStore 最高分持久化
type ScoreStore interface {
	Load() int
	Save(score int) error
}

// Session 游戏会话
//
// 持有模拟上下文和外部协作方（最高分存储、文案来源、偏好设置），
// 把模拟事件转换成副作用：保存最高分、请求吐槽文案、切换静音。
// 输入在帧之间排队，在下一次 Update 开始时应用。
type Session struct {
	ctx      context.Context
	world    *World
	store    ScoreStore
	flavor   FlavorSource
	settings *SettingsManager
	message  *FlavorText

	jumpsQueued int // 不超过 components.MaxJumps
}

// NewSession 创建游戏会话
//
// 参数:
//   - ctx: 会话生命周期，取消后进行中的文案请求被放弃
//   - cfg: 已校验的调参配置
//   - rng: 模拟使用的随机数来源
//   - store: 最高分存储，启动时读取一次
//   - flavor: 文案来源
//   - settings: 偏好设置，可为 nil（使用内存默认设置）
//
// 返回:
//   - *Session: 处于 Start 状态、已开始请求欢迎语的会话
func NewSession(ctx context.Context, cfg *config.TuningConfig, rng systems.RandSource,
	store ScoreStore, flavor FlavorSource, settings *SettingsManager) *Session {
	if settings == nil {
		settings = NewSettingsManager(nil)
	}

	s := &Session{
		ctx:      ctx,
		world:    NewWorld(cfg, rng),
		store:    store,
		flavor:   flavor,
		settings: settings,
		message:  NewFlavorText(WelcomePlaceholder),
	}

	s.world.Metrics.HighScore = store.Load()
	s.message.Request(ctx, WelcomePlaceholder, flavor.WelcomeMessage)

	return s
}

// Start 开始新一局（Start / GameOver / Win 状态下有效）
func (s *Session) Start() bool {
	s.jumpsQueued = 0
	return s.world.Start()
}

// Jump 排队一次跳跃，在下一帧开始时应用
// 同一帧内的多次按键都会生效，超过可用跳跃次数的部分丢弃；非 Playing 状态下忽略
func (s *Session) Jump() {
	if s.world.State == StatePlaying && s.jumpsQueued < components.MaxJumps {
		s.jumpsQueued++
	}
}

// Update 推进一帧并处理本帧事件
func (s *Session) Update() Events {
	s.message.Poll()

	ev := s.world.Tick(Input{Jumps: s.jumpsQueued})
	s.jumpsQueued = 0

	if ev.Ended() && ev.NewHighScore {
		if err := s.store.Save(ev.FinalScore); err != nil {
			log.Printf("[Session] Warning: %v (high score kept in memory)", err)
		}
	}

	if ev.GameOver {
		score, attempt := ev.FinalScore, ev.FinishedAttempt
		s.message.Request(s.ctx, RoastPlaceholder, func(ctx context.Context) string {
			return s.flavor.Roast(ctx, score, attempt)
		})
	}

	return ev
}

// Snapshot 返回当前帧的渲染数据
func (s *Session) Snapshot() Snapshot {
	snap := s.world.Snapshot()
	snap.Message = s.message.Text()
	snap.Muted = s.Muted()
	return snap
}

// ToggleMute 切换静音并持久化偏好，返回新的静音状态
func (s *Session) ToggleMute() bool {
	muted := !s.settings.GetSettings().Muted
	s.settings.SetMuted(muted)
	if err := s.settings.Save(); err != nil {
		log.Printf("[Session] Warning: Failed to persist mute setting: %v", err)
	}
	return muted
}

// Muted 返回当前是否静音
func (s *Session) Muted() bool {
	return s.settings.GetSettings().Muted
}

// MusicVolume 返回背景音乐音量
func (s *Session) MusicVolume() float64 {
	return s.settings.GetSettings().MusicVolume
}

// State 返回当前游戏状态
func (s *Session) State() State {
	return s.world.State
}

// World 返回模拟上下文（只读使用）
func (s *Session) World() *World {
	return s.world
}
