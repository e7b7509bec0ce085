package scenes

import (
	"testing"

	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/systems"
)

func TestMusicShouldPlay(t *testing.T) {
	tests := []struct {
		name  string
		state game.State
		muted bool
		want  bool
	}{
		{"奔跑中", game.StatePlaying, false, true},
		{"奔跑中静音", game.StatePlaying, true, false},
		{"标题画面", game.StateStart, false, false},
		{"撞车", game.StateGameOver, false, false},
		{"胜利", game.StateWin, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := musicShouldPlay(tt.state, tt.muted); got != tt.want {
				t.Errorf("musicShouldPlay(%v, %v) = %v, want %v", tt.state, tt.muted, got, tt.want)
			}
		})
	}
}

// TestAudioManager_NilContext 无音频上下文时所有操作都是空操作
func TestAudioManager_NilContext(t *testing.T) {
	am := NewAudioManager(nil, 2)

	am.Sync(game.StatePlaying, false)
	am.Sync(game.StateGameOver, false)
	am.PlayEvents(game.Events{Jump: systems.JumpDouble, GameOver: true, LettersCollected: []rune{'R'}}, false)
	am.SetVolume(-1)

	if am.volume != 0 {
		t.Errorf("volume should be clamped to 0, got %v", am.volume)
	}
	if am.lastState != game.StateGameOver {
		t.Errorf("lastState should track the synced state, got %v", am.lastState)
	}
}

func TestSynthesizedPCM(t *testing.T) {
	tone := synthTone(440, 0.1, 5)
	if len(tone) != 4800*4 {
		t.Errorf("tone length = %d bytes, want %d", len(tone), 4800*4)
	}

	melody := synthMelody([]float64{440, 0, 880}, 0.1)
	if len(melody) != 3*4800*4 {
		t.Errorf("melody length = %d bytes, want %d", len(melody), 3*4800*4)
	}

	// 休止符段全部为 0
	rest := melody[4800*4 : 2*4800*4]
	for i, b := range rest {
		if b != 0 {
			t.Fatalf("rest segment not silent at byte %d", i)
		}
	}

	// 左右声道相同
	for i := 0; i+3 < 400; i += 4 {
		if melody[i] != melody[i+2] || melody[i+1] != melody[i+3] {
			t.Fatalf("channels differ at sample %d", i/4)
		}
	}
}
