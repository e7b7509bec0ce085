package flavor

import (
	"context"
	"errors"
	"log"

	"github.com/decker502/sleighdash/pkg/config"
)

// ErrOffline 没有配置 API 密钥时所有生成请求返回该错误
var ErrOffline = errors.New("flavor text service offline")

// OfflineGenerator 始终失败的生成后端，让服务直接使用兜底文案
type OfflineGenerator struct{}

// Generate 返回 ErrOffline
func (OfflineGenerator) Generate(context.Context, string, float32) (string, error) {
	return "", ErrOffline
}

// New 根据 API 密钥选择后端并创建文案服务
// 没有密钥或客户端创建失败时使用离线后端
func New(ctx context.Context, apiKey string, cfg config.FlavorConfig) *Service {
	if apiKey == "" {
		log.Printf("[Flavor] No API key configured, using offline fallbacks")
		return NewService(OfflineGenerator{}, cfg)
	}

	gen, err := NewGeminiGenerator(ctx, apiKey, cfg.Model)
	if err != nil {
		log.Printf("[Flavor] Warning: %v (using offline fallbacks)", err)
		return NewService(OfflineGenerator{}, cfg)
	}

	log.Printf("[Flavor] Using Gemini model %s", cfg.Model)
	return NewService(gen, cfg)
}
