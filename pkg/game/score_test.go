package game

import (
	"testing"

	"github.com/decker502/sleighdash/pkg/config"
)

func TestScoreModel(t *testing.T) {
	m := NewScoreModel(config.DefaultTuning().Prize)

	tests := []struct {
		name         string
		distance     float64
		wantScore    int
		wantLetters  int
		wantNextAt   int
		lettersSoFar int
	}{
		{name: "起点", distance: 0, wantScore: 0, wantLetters: 0, wantNextAt: 50, lettersSoFar: 0},
		{name: "不足一分", distance: 99.9, wantScore: 0, wantLetters: 0, wantNextAt: 50, lettersSoFar: 0},
		{name: "第一个字母前", distance: 4999, wantScore: 49, wantLetters: 0, wantNextAt: 50, lettersSoFar: 0},
		{name: "第一个字母", distance: 5000, wantScore: 50, wantLetters: 1, wantNextAt: 100, lettersSoFar: 1},
		{name: "第三个字母", distance: 15050, wantScore: 150, wantLetters: 3, wantNextAt: 200, lettersSoFar: 3},
		{name: "超过单词长度", distance: 100000, wantScore: 1000, wantLetters: 7, wantNextAt: -1, lettersSoFar: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := m.ScoreForDistance(tt.distance)
			if score != tt.wantScore {
				t.Errorf("ScoreForDistance(%v) = %d, want %d", tt.distance, score, tt.wantScore)
			}
			if got := m.LettersDue(score); got != tt.wantLetters {
				t.Errorf("LettersDue(%d) = %d, want %d", score, got, tt.wantLetters)
			}
			if got := m.NextLetterAt(tt.lettersSoFar); got != tt.wantNextAt {
				t.Errorf("NextLetterAt(%d) = %d, want %d", tt.lettersSoFar, got, tt.wantNextAt)
			}
		})
	}

	if m.Word() != "RUDOLPH" || m.WordLength() != 7 || m.Letter(6) != 'H' {
		t.Errorf("target word accessors wrong: %q len=%d", m.Word(), m.WordLength())
	}
}

func TestStateTransitionsHelpers(t *testing.T) {
	tests := []struct {
		state    State
		name     string
		idle     bool
		canStart bool
	}{
		{StateStart, "START", true, true},
		{StatePlaying, "PLAYING", false, false},
		{StateGameOver, "GAMEOVER", true, true},
		{StateWin, "WIN", true, true},
		{StatePaused, "PAUSED", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.state.String() != tt.name {
				t.Errorf("String() = %s, want %s", tt.state.String(), tt.name)
			}
			if tt.state.Idle() != tt.idle {
				t.Errorf("Idle() = %v, want %v", tt.state.Idle(), tt.idle)
			}
			if tt.state.CanStart() != tt.canStart {
				t.Errorf("CanStart() = %v, want %v", tt.state.CanStart(), tt.canStart)
			}
		})
	}
}
