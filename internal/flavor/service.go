// Package flavor 提供开局欢迎语和撞车吐槽文案
//
// 文案由外部生成服务（Gemini）提供，任何失败都回退到固定文字，
// 调用方永远拿到一个可展示的字符串。
package flavor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/sleighdash/pkg/config"
)

// 兜底文案
const (
	// WelcomeFallback 欢迎语请求失败时使用
	WelcomeFallback = "Ready to Dash?"
	// RoastFallback 吐槽请求失败时使用
	RoastFallback = "Ouch! Right into the snowdrift."
	// WelcomeEmpty 服务返回空文本时使用
	WelcomeEmpty = "Dash through the snow!"
	// RoastEmpty 服务返回空文本时使用
	RoastEmpty = "Maybe next time, Rudolph!"
)

const welcomePrompt = "Generate a punny Christmas-themed welcome message for a game called Sleigh Dash. Max 10 words."

// roastPrompt 根据分数和尝试次数生成吐槽提示词
func roastPrompt(score, attempts int) string {
	return fmt.Sprintf("The player just crashed in a Christmas-themed Geometry Dash game. "+
		"Their score was %d after %d attempts. "+
		"Write a short, funny, Christmas-themed roast or encouragement. Keep it under 15 words. "+
		"Mention something like coal, reindeer, or elves.", score, attempts)
}

// Generator 文本生成后端
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Service 文案服务
// 可并发调用；每次请求都有独立的超时
type Service struct {
	gen Generator
	cfg config.FlavorConfig
}

// NewService 创建文案服务
//
// 参数:
//   - gen: 文本生成后端
//   - cfg: 模型、温度和超时配置
func NewService(gen Generator, cfg config.FlavorConfig) *Service {
	return &Service{gen: gen, cfg: cfg}
}

// WelcomeMessage 获取开局欢迎语
func (s *Service) WelcomeMessage(ctx context.Context) string {
	return s.ask(ctx, welcomePrompt, s.cfg.WelcomeTemperature, WelcomeFallback, WelcomeEmpty)
}

// Roast 根据本局分数和尝试次数获取吐槽/鼓励文案
func (s *Service) Roast(ctx context.Context, score, attempts int) string {
	return s.ask(ctx, roastPrompt(score, attempts), s.cfg.RoastTemperature, RoastFallback, RoastEmpty)
}

func (s *Service) ask(ctx context.Context, prompt string, temperature float32, fallback, empty string) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	text, err := s.gen.Generate(ctx, prompt, temperature)
	if err != nil {
		log.Printf("[Flavor] Generation failed, using fallback: %v", err)
		return fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return empty
	}
	return text
}
