package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (the run scene, a debug view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在被替换或窗口关闭时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager.SwitchTo 切换到其他场景
//   - 游戏窗口关闭
type Closer interface {
	Close()
}

// RunScene 需要在切换时释放会话资源
var _ Closer = (*RunScene)(nil)
