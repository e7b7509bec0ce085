package scenes

import (
	"context"
	"log"

	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// inputActions 一帧内采集到的玩家操作
type inputActions struct {
	Jump       bool // 空格 / 上方向键 / 左键 / 触摸
	Start      bool // 回车，或任意跳跃键
	ToggleMute bool // M
}

// RunScene 奔跑场景
//
// 唯一的游戏场景：采集输入交给 Session，推进一帧模拟，
// 再根据快照绘制背景、障碍物、粒子、玩家和 HUD。
// 标题、撞车、胜利画面都是叠加在同一场景上的浮层。
type RunScene struct {
	session *game.Session
	audio   *AudioManager
	cancel  context.CancelFunc

	face  *text.GoXFace
	snap  game.Snapshot
	white *ebiten.Image // 1x1 白色纹理，用于填充多边形
	santa *ebiten.Image // 预渲染的玩家精灵，绘制时整体旋转

	// 最近一次状态切换，用于浮层淡入
	lastState  game.State
	stateSince uint64
}

// NewRunScene 创建奔跑场景
//
// 参数:
//   - session: 游戏会话
//   - audioManager: 音频管理器（可为无音频上下文的空实现）
//   - cancel: 会话上下文的取消函数，场景关闭时调用，可为 nil
//
// 返回:
//   - *RunScene: 已持有首帧快照的场景
func NewRunScene(session *game.Session, audioManager *AudioManager, cancel context.CancelFunc) *RunScene {
	s := &RunScene{
		session: session,
		audio:   audioManager,
		cancel:  cancel,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	s.observe(session.Snapshot())
	return s
}

// Update 采集输入并推进一帧
func (s *RunScene) Update(deltaTime float64) {
	s.applyInput(readInput())

	ev := s.session.Update()
	muted := s.session.Muted()
	s.audio.PlayEvents(ev, muted)
	s.audio.Sync(s.session.State(), muted)

	if ev.Won {
		log.Printf("[RunScene] Target word complete, final score %d", ev.FinalScore)
	}

	s.observe(s.session.Snapshot())
}

// observe 保存快照并记录状态切换的帧号
func (s *RunScene) observe(snap game.Snapshot) {
	if snap.State != s.lastState {
		s.lastState = snap.State
		s.stateSince = snap.Frame
	}
	s.snap = snap
}

// Draw 按快照绘制一帧
func (s *RunScene) Draw(screen *ebiten.Image) {
	snap := s.snap

	s.drawSky(screen, snap.Parallax)
	s.drawGround(screen)
	for _, o := range snap.Obstacles {
		s.drawObstacle(screen, o)
	}
	drawParticles(screen, snap.Particles)
	if snap.State != game.StateGameOver {
		s.drawPlayer(screen, snap.Player)
	}

	if snap.State == game.StatePlaying {
		s.drawHUD(screen, snap)
	} else {
		s.drawOverlay(screen, snap)
	}
	s.drawFooter(screen, snap)
}

// Close 取消会话上下文，放弃进行中的文案请求
func (s *RunScene) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// applyInput 把一帧的操作转交给会话
func (s *RunScene) applyInput(in inputActions) {
	if in.ToggleMute {
		muted := s.session.ToggleMute()
		s.audio.Sync(s.session.State(), muted)
		log.Printf("[RunScene] Muted: %v", muted)
	}

	state := s.session.State()
	switch {
	case state == game.StatePlaying:
		if in.Jump {
			s.session.Jump()
		}
	case state.CanStart():
		if in.Start && s.session.Start() {
			log.Printf("[RunScene] Run started (attempt #%d)", s.session.World().Metrics.Attempts)
		}
	}
}

// readInput 读取本帧刚按下的按键、鼠标和触摸
func readInput() inputActions {
	jump := utils.AnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp) || utils.IsPointerJustPressed()

	return inputActions{
		Jump:       jump,
		Start:      jump || utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		ToggleMute: utils.AnyKeyJustPressed(ebiten.KeyM),
	}
}
