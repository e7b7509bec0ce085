package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏手感调参配置
//
// 包含物理、滚动速度、障碍物生成、粒子、字母奖励以及祝福语服务的全部可调参数。
// 默认值内嵌于 data/tuning.yaml，用户可以提供一个只包含部分字段的覆盖文件，
// 未出现的字段保持默认值。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedConfig    `yaml:"speed"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Particles ParticleConfig `yaml:"particles"`
	Prize     PrizeConfig    `yaml:"prize"`
	Flavor    FlavorConfig   `yaml:"flavor"`
}

// PhysicsConfig 玩家物理参数（单位：像素/帧）
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`            // 每帧重力加速度
	JumpForce          float64 `yaml:"jumpForce"`          // 一段跳初速度（负值向上）
	DoubleJumpForce    float64 `yaml:"doubleJumpForce"`    // 二段跳初速度（负值向上，弱于一段跳）
	SpinRate           float64 `yaml:"spinRate"`           // 空中每帧旋转角度
	DoubleJumpSpinRate float64 `yaml:"doubleJumpSpinRate"` // 二段跳后每帧旋转角度
	HitboxMargin       float64 `yaml:"hitboxMargin"`       // 碰撞盒向内收缩量
}

// SpeedConfig 滚动速度曲线
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Max       float64 `yaml:"max"`
	Increment float64 `yaml:"increment"` // 每帧增量
}

// SpawnConfig 障碍物生成参数
type SpawnConfig struct {
	InitialX      float64           `yaml:"initialX"`      // 新一局第一个障碍物的 X 坐标
	GapBase       float64           `yaml:"gapBase"`       // 与最右障碍物的基础间距
	GapJitter     float64           `yaml:"gapJitter"`     // 随机附加间距范围 [0, GapJitter)
	MinActive     int               `yaml:"minActive"`     // 活跃障碍物数量下限（低于则补充）
	InitialGroups int               `yaml:"initialGroups"` // 开局预生成的障碍物组数
	PruneMargin   float64           `yaml:"pruneMargin"`   // 右边缘越过可见区左侧多少像素后移除
	Patterns      []ObstaclePattern `yaml:"patterns"`      // 按累计阈值排列的图案表
}

// ObstaclePattern 障碍物图案
//
// Threshold 是累计概率上界：随机值 r 落在 [上一个阈值, Threshold) 时选中该图案。
// 最后一个图案的 Threshold 必须为 1。
type ObstaclePattern struct {
	Name      string          `yaml:"name"`
	Threshold float64         `yaml:"threshold"`
	Pieces    []ObstaclePiece `yaml:"pieces"`
}

// ObstaclePiece 图案中的单个障碍物
type ObstaclePiece struct {
	Kind    string  `yaml:"kind"`    // "spike" 或 "block"
	OffsetX float64 `yaml:"offsetX"` // 相对生成 X 的偏移
	Top     float64 `yaml:"top"`     // 顶边距地面的高度（Y = GroundY - Top）
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// ParticleConfig 粒子参数
type ParticleConfig struct {
	Decay        float64 `yaml:"decay"`        // 每帧生命衰减
	BoundsMargin float64 `yaml:"boundsMargin"` // 可见区域外的容差
	MaxParticles int     `yaml:"maxParticles"` // 安全上限，超出后丢弃新粒子

	ExplosionSpeed     float64 `yaml:"explosionSpeed"` // 速度分量范围 [-v, v)
	ExplosionMinSize   float64 `yaml:"explosionMinSize"`
	ExplosionSizeRange float64 `yaml:"explosionSizeRange"`

	SnowChance    float64 `yaml:"snowChance"` // 每帧生成一片雪花的概率
	SnowDrift     float64 `yaml:"snowDrift"`  // 横向漂移范围 [-d, d)
	SnowMinFall   float64 `yaml:"snowMinFall"`
	SnowFallRange float64 `yaml:"snowFallRange"`
	SnowMinSize   float64 `yaml:"snowMinSize"`
	SnowSizeRange float64 `yaml:"snowSizeRange"`

	DoubleJumpBurst int     `yaml:"doubleJumpBurst"`
	CrashBurst      int     `yaml:"crashBurst"`
	LetterBurst     int     `yaml:"letterBurst"`
	WinBurst        int     `yaml:"winBurst"`
	WinBurstChance  float64 `yaml:"winBurstChance"`
}

// PrizeConfig 字母奖励规则
type PrizeConfig struct {
	DistancePerPoint float64 `yaml:"distancePerPoint"` // 每得 1 分需要的滚动距离
	Interval         int     `yaml:"interval"`         // 每隔多少分收集一个字母
	TargetWord       string  `yaml:"targetWord"`
}

// FlavorConfig 祝福语（AI 文案）服务配置
type FlavorConfig struct {
	Model              string  `yaml:"model"`
	WelcomeTemperature float32 `yaml:"welcomeTemperature"`
	RoastTemperature   float32 `yaml:"roastTemperature"`
	TimeoutSeconds     int     `yaml:"timeoutSeconds"`
}

// 障碍物类型字符串
const (
	PieceKindSpike = "spike"
	PieceKindBlock = "block"
)

// DefaultTuning 返回内置默认调参
// 与 data/tuning.yaml 保持一致，供测试和无文件场景使用
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Physics: PhysicsConfig{
			Gravity:            0.8,
			JumpForce:          -15,
			DoubleJumpForce:    -12,
			SpinRate:           6,
			DoubleJumpSpinRate: 8,
			HitboxMargin:       8,
		},
		Speed: SpeedConfig{
			Initial:   8.0,
			Max:       22,
			Increment: 0.0015,
		},
		Spawn: SpawnConfig{
			InitialX:      1000,
			GapBase:       450,
			GapJitter:     400,
			MinActive:     6,
			InitialGroups: 3,
			PruneMargin:   200,
			Patterns:      DefaultObstaclePatterns(),
		},
		Particles: ParticleConfig{
			Decay:              0.02,
			BoundsMargin:       10,
			MaxParticles:       2000,
			ExplosionSpeed:     5,
			ExplosionMinSize:   2,
			ExplosionSizeRange: 5,
			SnowChance:         0.2,
			SnowDrift:          1,
			SnowMinFall:        1,
			SnowFallRange:      2,
			SnowMinSize:        1,
			SnowSizeRange:      3,
			DoubleJumpBurst:    12,
			CrashBurst:         30,
			LetterBurst:        40,
			WinBurst:           10,
			WinBurstChance:     0.1,
		},
		Prize: PrizeConfig{
			DistancePerPoint: 100,
			Interval:         50,
			TargetWord:       "RUDOLPH",
		},
		Flavor: FlavorConfig{
			Model:              "gemini-3-flash-preview",
			WelcomeTemperature: 0.7,
			RoastTemperature:   0.9,
			TimeoutSeconds:     8,
		},
	}
}

// DefaultObstaclePatterns 返回默认图案表
// 累计阈值 0.35 / 0.65 / 0.85 / 1.0
func DefaultObstaclePatterns() []ObstaclePattern {
	return []ObstaclePattern{
		{
			Name:      "spike",
			Threshold: 0.35,
			Pieces:    []ObstaclePiece{{Kind: PieceKindSpike, Top: 45, Width: 40, Height: 45}},
		},
		{
			Name:      "block",
			Threshold: 0.65,
			Pieces:    []ObstaclePiece{{Kind: PieceKindBlock, Top: 65, Width: 50, Height: 65}},
		},
		{
			Name:      "tall_block",
			Threshold: 0.85,
			Pieces:    []ObstaclePiece{{Kind: PieceKindBlock, Top: 110, Width: 60, Height: 110}},
		},
		{
			// 悬空方块 + 地面尖刺，需要精确的二段跳时机
			Name:      "combo",
			Threshold: 1.0,
			Pieces: []ObstaclePiece{
				{Kind: PieceKindBlock, Top: 180, Width: 80, Height: 40},
				{Kind: PieceKindSpike, OffsetX: 20, Top: 45, Width: 40, Height: 45},
			},
		},
	}
}

// ParseTuning 在默认值之上解析 YAML 调参数据
//
// 参数:
//   - data: YAML 内容（可以只包含部分字段）
//
// 返回:
//   - *TuningConfig: 合并并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseTuning(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// LoadTuning 从文件加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadTuning(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuning(data)
}

// Validate 验证配置有效性
func (c *TuningConfig) Validate() error {
	p := c.Physics
	if p.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be > 0, got %.3f", p.Gravity)
	}
	if p.JumpForce >= 0 || p.DoubleJumpForce >= 0 {
		return fmt.Errorf("jump forces must be negative (upwards), got %.1f / %.1f",
			p.JumpForce, p.DoubleJumpForce)
	}
	if p.HitboxMargin < 0 {
		return fmt.Errorf("physics.hitboxMargin must be >= 0, got %.1f", p.HitboxMargin)
	}

	s := c.Speed
	if s.Initial <= 0 || s.Max < s.Initial {
		return fmt.Errorf("speed range invalid: initial(%.3f) max(%.3f)", s.Initial, s.Max)
	}
	if s.Increment < 0 {
		return fmt.Errorf("speed.increment must be >= 0, got %.4f", s.Increment)
	}

	if err := c.Spawn.validate(); err != nil {
		return err
	}

	pc := c.Particles
	if pc.Decay <= 0 {
		return fmt.Errorf("particles.decay must be > 0, got %.3f", pc.Decay)
	}
	if pc.MaxParticles <= 0 {
		return fmt.Errorf("particles.maxParticles must be > 0, got %d", pc.MaxParticles)
	}
	if !isChance(pc.SnowChance) || !isChance(pc.WinBurstChance) {
		return fmt.Errorf("particle chances must be within [0, 1]: snow=%.2f win=%.2f",
			pc.SnowChance, pc.WinBurstChance)
	}

	if c.Prize.DistancePerPoint <= 0 {
		return fmt.Errorf("prize.distancePerPoint must be > 0, got %.1f", c.Prize.DistancePerPoint)
	}
	if c.Prize.Interval <= 0 {
		return fmt.Errorf("prize.interval must be > 0, got %d", c.Prize.Interval)
	}
	if strings.TrimSpace(c.Prize.TargetWord) == "" {
		return fmt.Errorf("prize.targetWord must not be empty")
	}

	if c.Flavor.TimeoutSeconds <= 0 {
		return fmt.Errorf("flavor.timeoutSeconds must be > 0, got %d", c.Flavor.TimeoutSeconds)
	}

	return nil
}

func (s *SpawnConfig) validate() error {
	if s.GapBase < 0 || s.GapJitter < 0 {
		return fmt.Errorf("spawn gap invalid: base(%.1f) jitter(%.1f)", s.GapBase, s.GapJitter)
	}
	if s.MinActive < 1 {
		return fmt.Errorf("spawn.minActive must be >= 1, got %d", s.MinActive)
	}
	if s.InitialGroups < 0 {
		return fmt.Errorf("spawn.initialGroups must be >= 0, got %d", s.InitialGroups)
	}
	if len(s.Patterns) == 0 {
		return fmt.Errorf("spawn.patterns must not be empty")
	}

	prev := 0.0
	for i, pattern := range s.Patterns {
		if pattern.Threshold <= prev {
			return fmt.Errorf("pattern %d (%s): threshold %.3f must be greater than %.3f",
				i, pattern.Name, pattern.Threshold, prev)
		}
		if len(pattern.Pieces) == 0 {
			return fmt.Errorf("pattern %d (%s) has no pieces", i, pattern.Name)
		}
		for j, piece := range pattern.Pieces {
			if piece.Kind != PieceKindSpike && piece.Kind != PieceKindBlock {
				return fmt.Errorf("pattern %s piece %d: unknown kind '%s'", pattern.Name, j, piece.Kind)
			}
			if piece.Width <= 0 || piece.Height <= 0 {
				return fmt.Errorf("pattern %s piece %d: size must be positive, got %.1fx%.1f",
					pattern.Name, j, piece.Width, piece.Height)
			}
		}
		prev = pattern.Threshold
	}
	if prev != 1.0 {
		return fmt.Errorf("last pattern threshold must be 1.0, got %.3f", prev)
	}

	return nil
}

// Timeout 返回单次祝福语请求的超时时间
func (c FlavorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func isChance(v float64) bool {
	return v >= 0 && v <= 1
}
