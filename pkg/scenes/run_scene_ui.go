package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 布局常量（逻辑像素）
const (
	hudMargin     = 20.0
	hudLineHeight = 26.0

	overlayWidth  = 640.0
	overlayHeight = 300.0

	buttonWidth  = 220.0
	buttonHeight = 44.0

	messageScale = 1.5
	messageWidth = overlayWidth - 60 // 浮层文案换行宽度（缩放后）

	overlayFadeFrames = 20.0 // 浮层淡入帧数

	footerY = config.GroundY + 40
)

var (
	colorHUDText     = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	colorHUDDim      = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	colorFooterText  = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	colorOverlayBack = color.RGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xd0}
)

// overlayContent 非奔跑状态下浮层的文字内容
type overlayContent struct {
	Title  string
	Button string
	Lines  []string
}

// scoreLine 返回奔跑时左上角的分数文字
func scoreLine(snap game.Snapshot) string {
	line := fmt.Sprintf("SCORE: %d", snap.Metrics.Score)
	if snap.NextLetterAt >= 0 {
		line += fmt.Sprintf(" (Next letter at %d)", snap.NextLetterAt)
	}
	return line
}

// overlayFor 根据状态生成浮层内容
//
// 参数:
//   - snap: 当前帧快照
//   - wrap: 把文案折成多行的函数
//
// 返回:
//   - overlayContent: 标题、按钮文字和正文行
func overlayFor(snap game.Snapshot, wrap func(string) []string) overlayContent {
	record := fmt.Sprintf("Score: %d   Best: %d", snap.Metrics.Score, snap.Metrics.HighScore)

	switch snap.State {
	case game.StateGameOver:
		return overlayContent{
			Title:  "CRASHED!",
			Button: "TRY AGAIN",
			Lines:  append(wrap(snap.Message), record),
		}
	case game.StateWin:
		return overlayContent{
			Title:  "YOU WON!",
			Button: "PLAY AGAIN",
			Lines:  []string{"HO HO HO! CHRISTMAS IS SAVED!", record},
		}
	default:
		return overlayContent{
			Title:  "SLEIGH DASH",
			Button: "START RUN",
			Lines:  wrap(snap.Message),
		}
	}
}

// drawText 绘制文字
//
// 参数:
//   - dst: 目标图像
//   - str: 文字
//   - x, y: 锚点（左上角，居中对齐时为顶边中点）
//   - scale: 相对 7x13 点阵字体的缩放
//   - align: 水平对齐方式
//   - c: 文字颜色
func (s *RunScene) drawText(dst *ebiten.Image, str string, x, y, scale float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, str, s.face, op)
}

// drawHUD 绘制奔跑中的分数、尝试次数和字母槽
func (s *RunScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	s.drawText(screen, scoreLine(snap), hudMargin, hudMargin, 2, text.AlignStart, colorHUDText)
	s.drawText(screen, fmt.Sprintf("Attempt #%d", snap.Metrics.Attempts), hudMargin, hudMargin+hudLineHeight+4, 1.5, text.AlignStart, colorHUDDim)
	s.drawText(screen, "Collect letters to save Rudolph!", config.GameWindowWidth/2, hudMargin, 1.5, text.AlignCenter, colorHUDDim)
	s.drawLetterTray(screen, snap)
}

// drawLetterTray 在右上角绘制目标单词，已收集的字母高亮
func (s *RunScene) drawLetterTray(screen *ebiten.Image, snap game.Snapshot) {
	const slot = 26.0

	word := []rune(snap.TargetWord)
	collected := len([]rune(snap.Letters))
	x := config.GameWindowWidth - hudMargin - slot*float64(len(word))

	for i, r := range word {
		c := colorHUDDim
		if i < collected {
			c = config.ColorGold
		}
		vector.StrokeRect(screen, float32(x+float64(i)*slot), hudMargin, slot-4, slot, 1.5, c, false)
		s.drawText(screen, string(r), x+float64(i)*slot+(slot-4)/2, hudMargin+3, 1.5, text.AlignCenter, c)
	}
}

// drawOverlay 绘制标题 / 撞车 / 胜利浮层
func (s *RunScene) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	content := overlayFor(snap, s.wrapMessage)

	// 状态切换后浮层从上方滑入并淡入
	alpha := utils.EaseOutCubic(utils.Clamp01(float64(snap.Frame-s.stateSince) / overlayFadeFrames))

	left := (config.PlayfieldWidth - overlayWidth) / 2
	top := (config.GroundY-overlayHeight)/2 - (1-alpha)*30
	vector.DrawFilledRect(screen, float32(left), float32(top), overlayWidth, overlayHeight, fade(colorOverlayBack, alpha), false)

	titleColor := colorHUDText
	if snap.State == game.StateGameOver {
		titleColor = config.ColorPlayer
	} else if snap.State == game.StateWin {
		titleColor = config.ColorGold
	}

	cx := config.PlayfieldWidth / 2
	s.drawText(screen, content.Title, cx, top+24, 4, text.AlignCenter, fade(titleColor, alpha))

	y := top + 90
	for _, line := range content.Lines {
		s.drawText(screen, line, cx, y, messageScale, text.AlignCenter, fade(colorHUDText, alpha))
		y += hudLineHeight
	}

	bx := cx - buttonWidth/2
	by := top + overlayHeight - buttonHeight - 24
	vector.DrawFilledRect(screen, float32(bx), float32(by), buttonWidth, buttonHeight, fade(config.ColorPlayer, alpha), false)
	s.drawText(screen, content.Button, cx, by+12, 2, text.AlignCenter, fade(colorHUDText, alpha))
}

// wrapMessage 按浮层宽度折行
func (s *RunScene) wrapMessage(msg string) []string {
	return utils.WrapText(msg, s.face, messageWidth/messageScale)
}

// drawFooter 绘制地面上的操作提示和最高分
func (s *RunScene) drawFooter(screen *ebiten.Image, snap game.Snapshot) {
	s.drawText(screen, "SPACE / CLICK / UP to Jump", hudMargin, footerY, 1.5, text.AlignStart, colorFooterText)
	s.drawText(screen, "Collect all letters to WIN!", config.PlayfieldWidth/2, footerY, 1.5, text.AlignCenter, colorFooterText)
	s.drawText(screen, fmt.Sprintf("High Score: %d", snap.Metrics.HighScore), config.PlayfieldWidth-hudMargin, footerY, 1.5, text.AlignEnd, colorFooterText)

	mute := "M: Mute"
	if snap.Muted {
		mute = "M: Unmute"
	}
	s.drawText(screen, mute, config.PlayfieldWidth-hudMargin, footerY+hudLineHeight, 1.2, text.AlignEnd, colorFooterText)
}
