package game

import (
	"slices"

	"github.com/decker502/sleighdash/pkg/components"
)

// Snapshot 一帧的只读渲染数据
// 所有切片都是副本，渲染端可以在下一次 Tick 之后继续持有
type Snapshot struct {
	State        State
	Player       components.PlayerComponent
	Obstacles    []components.ObstacleComponent
	Particles    []components.ParticleComponent
	Metrics      Metrics
	Letters      string
	TargetWord   string
	NextLetterAt int // -1 表示已集齐
	Speed        float64
	Parallax     Parallax
	Frame        uint64

	// 由 Session 填充的展示数据
	Message string
	Muted   bool
}

// Snapshot 复制当前模拟状态
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		State:        w.State,
		Player:       w.Player,
		Obstacles:    slices.Clone(w.Obstacles),
		Particles:    slices.Clone(w.particles.Particles()),
		Metrics:      w.Metrics,
		Letters:      string(w.Letters),
		TargetWord:   w.score.Word(),
		NextLetterAt: w.NextLetterAt(),
		Speed:        w.Speed,
		Parallax:     w.Parallax,
		Frame:        w.Frame,
	}
}
