package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	scoresObject  = "scores"
	scoresBestKey = "best"
)

// highScoreRecord 持久化格式
type highScoreRecord struct {
	Best int `yaml:"best"`
}

// HighScoreStore 最高分存储
//
// 使用 gdata 跨平台存储；gdataManager 为 nil 时进入降级模式，
// 只在内存中保留最高分，游戏照常进行。
type HighScoreStore struct {
	gdataManager *gdata.Manager
	best         int
}

// NewHighScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewHighScoreStore(gdataManager *gdata.Manager) *HighScoreStore {
	return &HighScoreStore{gdataManager: gdataManager}
}

// Load 读取已保存的最高分
// 没有记录或读取失败时返回内存中的值（初始为 0），失败只记录警告
func (s *HighScoreStore) Load() int {
	if s.gdataManager == nil {
		return s.best
	}

	if !s.gdataManager.ObjectPropExists(scoresObject, scoresBestKey) {
		return s.best
	}

	data, err := s.gdataManager.LoadObjectProp(scoresObject, scoresBestKey)
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Failed to load high score: %v", err)
		return s.best
	}

	var record highScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		log.Printf("[HighScoreStore] Warning: Corrupted high score record: %v", err)
		return s.best
	}

	if record.Best < 0 {
		log.Printf("[HighScoreStore] Warning: Ignoring negative high score %d", record.Best)
		return s.best
	}

	s.best = record.Best
	log.Printf("[HighScoreStore] Loaded high score: %d", s.best)
	return s.best
}

// Save 保存最高分
//
// 返回：
//   - error: 序列化或写入失败时返回错误；降级模式下只更新内存，返回 nil
func (s *HighScoreStore) Save(score int) error {
	s.best = score

	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(highScoreRecord{Best: score})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(scoresObject, scoresBestKey, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreStore] Saved high score: %d", score)
	return nil
}
