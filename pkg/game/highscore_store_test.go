package game

import (
	"testing"
)

func TestHighScoreStore_LoadSave(t *testing.T) {
	manager := createTestGdataManager(t, "highscore")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	store := NewHighScoreStore(manager)
	if got := store.Load(); got != 0 {
		t.Errorf("fresh store should load 0, got %d", got)
	}

	if err := store.Save(137); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例从磁盘读取
	reopened := NewHighScoreStore(manager)
	if got := reopened.Load(); got != 137 {
		t.Errorf("reloaded high score = %d, want 137", got)
	}
}

func TestHighScoreStore_CorruptedRecord(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if err := manager.SaveObjectProp(scoresObject, scoresBestKey, []byte("best: [oops")); err != nil {
		t.Fatalf("failed to write corrupted record: %v", err)
	}

	store := NewHighScoreStore(manager)
	if got := store.Load(); got != 0 {
		t.Errorf("corrupted record should fall back to 0, got %d", got)
	}
}

func TestHighScoreStore_NilManager(t *testing.T) {
	store := NewHighScoreStore(nil)

	if got := store.Load(); got != 0 {
		t.Errorf("degraded store should start at 0, got %d", got)
	}
	if err := store.Save(42); err != nil {
		t.Errorf("degraded Save() should not fail, got %v", err)
	}
	if got := store.Load(); got != 42 {
		t.Errorf("degraded store should keep the score in memory, got %d", got)
	}
}
