package game

import (
	"math"

	"github.com/decker502/sleighdash/pkg/config"
)

// ScoreModel 根据奖励规则计算分数和字母进度
type ScoreModel struct {
	prize config.PrizeConfig
	word  []rune
}

// NewScoreModel 创建计分模型
func NewScoreModel(prize config.PrizeConfig) ScoreModel {
	return ScoreModel{
		prize: prize,
		word:  []rune(prize.TargetWord),
	}
}

// ScoreForDistance 返回滚动距离对应的整数分数
func (m ScoreModel) ScoreForDistance(distance float64) int {
	return int(math.Floor(distance / m.prize.DistancePerPoint))
}

// LettersDue 返回在给定分数下应当已收集的字母数量
// 结果为 min(score/interval, 单词长度)
func (m ScoreModel) LettersDue(score int) int {
	due := score / m.prize.Interval
	if due > len(m.word) {
		return len(m.word)
	}
	return due
}

// NextLetterAt 返回收集下一个字母所需的分数
// 单词已集齐时返回 -1
func (m ScoreModel) NextLetterAt(collected int) int {
	if collected >= len(m.word) {
		return -1
	}
	return (collected + 1) * m.prize.Interval
}

// Letter 返回目标单词的第 i 个字母
func (m ScoreModel) Letter(i int) rune {
	return m.word[i]
}

// WordLength 返回目标单词长度
func (m ScoreModel) WordLength() int {
	return len(m.word)
}

// Word 返回目标单词
func (m ScoreModel) Word() string {
	return m.prize.TargetWord
}
