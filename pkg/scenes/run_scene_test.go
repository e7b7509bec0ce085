package scenes

import (
	"context"
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/game"
)

type stubFlavor struct{}

func (stubFlavor) WelcomeMessage(context.Context) string { return "Dash through the snow!" }

func (stubFlavor) Roast(context.Context, int, int) string { return "Coal again?" }

type memoryStore struct{ best int }

func (m *memoryStore) Load() int { return m.best }

func (m *memoryStore) Save(score int) error {
	m.best = score
	return nil
}

func newTestScene(t *testing.T) *RunScene {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	session := game.NewSession(ctx, config.DefaultTuning(), rand.New(rand.NewSource(7)), &memoryStore{}, stubFlavor{}, nil)
	return NewRunScene(session, NewAudioManager(nil, 0.4), cancel)
}

func TestRunScene_ApplyInput(t *testing.T) {
	s := newTestScene(t)

	// 标题画面：跳跃键不会触发跳跃，只有开始键生效
	s.applyInput(inputActions{Jump: true})
	if s.session.State() != game.StateStart {
		t.Fatalf("jump alone should not start a run, state=%v", s.session.State())
	}

	s.applyInput(inputActions{Jump: true, Start: true})
	if s.session.State() != game.StatePlaying {
		t.Fatalf("start input should begin a run, state=%v", s.session.State())
	}

	s.applyInput(inputActions{Jump: true, Start: true})
	s.session.Update()
	if s.session.World().Player.OnGround {
		t.Error("jump input while playing should lift the player")
	}
}

func TestRunScene_ToggleMute(t *testing.T) {
	s := newTestScene(t)

	s.applyInput(inputActions{ToggleMute: true})
	if !s.session.Muted() {
		t.Fatal("M should mute")
	}
	s.applyInput(inputActions{ToggleMute: true})
	if s.session.Muted() {
		t.Fatal("second M should unmute")
	}
}

func TestRunScene_CloseCancelsSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	session := game.NewSession(ctx, config.DefaultTuning(), rand.New(rand.NewSource(1)), &memoryStore{}, stubFlavor{}, nil)
	s := NewRunScene(session, NewAudioManager(nil, 0.4), cancel)

	s.Close()
	if ctx.Err() == nil {
		t.Error("Close() should cancel the session context")
	}

	// 无取消函数时 Close 也安全
	NewRunScene(session, NewAudioManager(nil, 0.4), nil).Close()
}

func TestScoreLine(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want string
	}{
		{"有下一个字母", game.Snapshot{Metrics: game.Metrics{Score: 12}, NextLetterAt: 50}, "SCORE: 12 (Next letter at 50)"},
		{"已集齐", game.Snapshot{Metrics: game.Metrics{Score: 400}, NextLetterAt: -1}, "SCORE: 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreLine(tt.snap); got != tt.want {
				t.Errorf("scoreLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

// oneLine 不折行，整段文案作为一行
func oneLine(s string) []string { return []string{s} }

func TestOverlayFor(t *testing.T) {
	metrics := game.Metrics{Score: 42, HighScore: 99}

	tests := []struct {
		name      string
		state     game.State
		title     string
		button    string
		firstLine string
	}{
		{"标题画面", game.StateStart, "SLEIGH DASH", "START RUN", "Ready to Dash?"},
		{"撞车", game.StateGameOver, "CRASHED!", "TRY AGAIN", "Ready to Dash?"},
		{"胜利", game.StateWin, "YOU WON!", "PLAY AGAIN", "HO HO HO! CHRISTMAS IS SAVED!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlayFor(game.Snapshot{State: tt.state, Metrics: metrics, Message: "Ready to Dash?"}, oneLine)
			if got.Title != tt.title || got.Button != tt.button {
				t.Errorf("overlay = %+v", got)
			}
			if len(got.Lines) == 0 || got.Lines[0] != tt.firstLine {
				t.Errorf("first line = %v, want %q", got.Lines, tt.firstLine)
			}
			if tt.state != game.StateStart && got.Lines[len(got.Lines)-1] != "Score: 42   Best: 99" {
				t.Errorf("record line missing: %v", got.Lines)
			}
		})
	}
}

func TestRunScene_ObserveTracksStateChanges(t *testing.T) {
	s := newTestScene(t)

	s.observe(game.Snapshot{State: game.StateStart, Frame: 10})
	if s.stateSince != 0 {
		t.Errorf("unchanged state should keep stateSince, got %d", s.stateSince)
	}

	s.observe(game.Snapshot{State: game.StatePlaying, Frame: 12})
	if s.lastState != game.StatePlaying || s.stateSince != 12 {
		t.Errorf("state change not recorded: %v since %d", s.lastState, s.stateSince)
	}

	s.observe(game.Snapshot{State: game.StatePlaying, Frame: 40})
	if s.stateSince != 12 {
		t.Errorf("stateSince should stay at 12, got %d", s.stateSince)
	}
}

func TestRunScene_WrapMessageFitsOverlay(t *testing.T) {
	s := newTestScene(t)
	msg := "Ho ho oh no! Santa's sleigh has more dents than a reindeer's dinner plate after that tumble."

	lines := s.wrapMessage(msg)
	if len(lines) < 2 {
		t.Fatalf("long message should wrap, got %q", lines)
	}
	for _, line := range lines {
		if w := float64(len(line) * 7); w > messageWidth/messageScale {
			t.Errorf("line %q is %v px wide", line, w)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		period float64
		want   float64
	}{
		{"正数", 250, 200, 50},
		{"负数", -50, 1800, 1750},
		{"整周期", -1800, 1800, 0},
		{"零", 0, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.v, tt.period); got != tt.want {
				t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.period, got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := fade(c, 1); got != c {
		t.Errorf("fade(c, 1) = %v, want %v", got, c)
	}
	if got := fade(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 127}) {
		t.Errorf("fade(c, 0.5) = %v", got)
	}
	if got := fade(c, -1); got != (color.RGBA{}) {
		t.Errorf("negative alpha should clamp to transparent, got %v", got)
	}
}
