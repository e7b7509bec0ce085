package game

import (
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/systems"
)

// Input 一帧内收集到的玩家输入
type Input struct {
	Jumps int // 本帧开始时依次应用的跳跃次数
}

// Events 一帧内发生的、需要外部协作方响应的事件
type Events struct {
	Jump             systems.JumpResult // 本帧最后一次生效的跳跃
	Jumps            int                // 本帧生效的跳跃次数
	LettersCollected []rune
	Won              bool
	GameOver         bool

	// 以下字段只在 Won 或 GameOver 时有效
	FinalScore      int
	FinishedAttempt int
	NewHighScore    bool
}

// Ended 返回本帧是否结束了一局
func (ev Events) Ended() bool {
	return ev.Won || ev.GameOver
}

// Tick 推进一帧模拟
//
// Start / GameOver：只有飘雪和粒子动画。
// Win：额外以低概率在随机位置放出金色庆祝粒子。
// Playing 按固定顺序执行：
//  1. 依次应用本帧排队的跳跃（同一帧两次按键即跳起并二段跳）
//  2. 推进速度、积分玩家运动、滚动视差层
//  3. 障碍物左移、清理、补充
//  4. 更新距离和分数，检查字母里程碑（集齐则进入 Win）
//  5. 碰撞检测（本帧刚进入 Win 时跳过）
//  6. 飘雪和粒子更新
func (w *World) Tick(in Input) Events {
	var ev Events

	switch w.State {
	case StatePlaying:
		w.tickPlaying(in, &ev)
	case StateWin:
		w.celebrate()
	}

	w.particles.MaybeSnow(config.PlayfieldWidth)
	w.particles.Update(config.PlayfieldWidth, config.PlayfieldHeight)
	w.Frame++

	return ev
}

func (w *World) tickPlaying(in Input, ev *Events) {
	for i := 0; i < in.Jumps; i++ {
		if result := w.Jump(); result != systems.JumpIgnored {
			ev.Jump = result
			ev.Jumps++
		}
	}

	w.Speed = w.physics.AdvanceSpeed(w.Speed)
	speed := w.Speed

	w.physics.Integrate(&w.Player)

	w.Parallax.Mountains -= speed * mountainsParallaxRate
	w.Parallax.Forest -= speed * forestParallaxRate
	w.Parallax.Aurora += auroraDrift

	w.physics.ScrollObstacles(w.Obstacles, speed)
	w.Obstacles = w.spawner.Prune(w.Obstacles)
	w.Obstacles = w.spawner.Replenish(w.Obstacles)

	w.Metrics.Distance += speed
	w.Metrics.Score = w.score.ScoreForDistance(w.Metrics.Distance)

	w.collectLetters(ev)
	if w.State == StateWin {
		return
	}

	if w.physics.FirstCollision(w.Player, w.Obstacles) >= 0 {
		w.crash(ev)
	}
}

// collectLetters 补齐当前分数应得的字母，每个字母一次金色爆散
func (w *World) collectLetters(ev *Events) {
	due := w.score.LettersDue(w.Metrics.Score)
	for len(w.Letters) < due {
		letter := w.score.Letter(len(w.Letters))
		w.Letters = append(w.Letters, letter)
		ev.LettersCollected = append(ev.LettersCollected, letter)

		cx, cy := config.PlayerCenter(w.Player.Y)
		w.particles.Explode(cx, cy, config.ColorGold, w.cfg.Particles.LetterBurst)
	}

	if len(w.Letters) == w.score.WordLength() {
		w.win(ev)
	}
}

// celebrate Win 状态下的随机庆祝爆散
func (w *World) celebrate() {
	pc := w.cfg.Particles
	if w.rng.Float64() >= pc.WinBurstChance {
		return
	}
	x := w.rng.Float64() * config.PlayfieldWidth
	y := w.rng.Float64() * config.PlayfieldHeight / 2
	w.particles.Explode(x, y, config.ColorGold, pc.WinBurst)
}
