package systems

import (
	"image/color"
	"log"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
)

// ParticleSystem 管理爆散粒子和飘雪
//
// 粒子只用于装饰，不参与碰撞。每帧按速度移动、寿命衰减，
// 寿命耗尽或离开画布（含容差）的粒子被移除。
// 活跃粒子数超过 MaxParticles 时新粒子直接丢弃。
type ParticleSystem struct {
	cfg       config.ParticleConfig
	rng       RandSource
	particles []components.ParticleComponent

	// 是否已经记录过一次上限告警，避免刷屏
	capWarned bool
}

// NewParticleSystem 创建粒子系统
//
// 参数:
//   - cfg: 粒子参数（衰减、速度、尺寸、飘雪概率、上限）
//   - rng: 随机数来源
//
// 返回:
//   - *ParticleSystem: 粒子系统实例
func NewParticleSystem(cfg config.ParticleConfig, rng RandSource) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]components.ParticleComponent, 0, 256),
	}
}

// Explode 在 (x, y) 生成 count 个同色粒子
//
// 每个粒子的速度分量在 [-ExplosionSpeed, ExplosionSpeed) 内均匀分布，
// 尺寸在 [ExplosionMinSize, ExplosionMinSize+ExplosionSizeRange) 内，寿命为 1。
// 随机数消耗顺序：vx, vy, size。
func (s *ParticleSystem) Explode(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		vx := (s.rng.Float64() - 0.5) * 2 * s.cfg.ExplosionSpeed
		vy := (s.rng.Float64() - 0.5) * 2 * s.cfg.ExplosionSpeed
		size := s.rng.Float64()*s.cfg.ExplosionSizeRange + s.cfg.ExplosionMinSize

		s.add(components.ParticleComponent{
			Position: components.Vector2D{X: x, Y: y},
			Velocity: components.Vector2D{X: vx, Y: vy},
			Life:     1,
			Color:    c,
			Size:     size,
		})
	}
}

// MaybeSnow 以 SnowChance 的概率在画布顶部生成一片雪花
// 返回是否生成了雪花
func (s *ParticleSystem) MaybeSnow(width float64) bool {
	if s.rng.Float64() >= s.cfg.SnowChance {
		return false
	}

	x := s.rng.Float64() * width
	vx := (s.rng.Float64() - 0.5) * 2 * s.cfg.SnowDrift
	vy := s.rng.Float64()*s.cfg.SnowFallRange + s.cfg.SnowMinFall
	size := s.rng.Float64()*s.cfg.SnowSizeRange + s.cfg.SnowMinSize

	s.add(components.ParticleComponent{
		Position: components.Vector2D{X: x, Y: -s.cfg.BoundsMargin},
		Velocity: components.Vector2D{X: vx, Y: vy},
		Life:     1,
		Color:    config.ColorSnow,
		Size:     size,
	})
	return true
}

// Update 推进所有粒子一帧并移除失效粒子
//
// 参数:
//   - width, height: 画布尺寸，越出 [-margin, size+margin] 的粒子被移除
func (s *ParticleSystem) Update(width, height float64) {
	margin := s.cfg.BoundsMargin
	alive := s.particles[:0]

	for _, p := range s.particles {
		p.Position = p.Position.Add(p.Velocity)
		p.Life -= s.cfg.Decay

		if p.Life <= 0 {
			continue
		}
		if p.Position.X <= -margin || p.Position.X >= width+margin {
			continue
		}
		if p.Position.Y < -margin || p.Position.Y >= height+margin {
			continue
		}
		alive = append(alive, p)
	}

	// 清理尾部引用，避免旧数据残留
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = components.ParticleComponent{}
	}
	s.particles = alive
}

// Particles 返回活跃粒子的只读视图
// 返回的切片在下一次 Update/Explode 前有效，需要长期持有时请复制
func (s *ParticleSystem) Particles() []components.ParticleComponent {
	return s.particles
}

// Count 返回活跃粒子数量
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Reset 清空所有粒子
func (s *ParticleSystem) Reset() {
	s.particles = s.particles[:0]
	s.capWarned = false
}

func (s *ParticleSystem) add(p components.ParticleComponent) {
	if s.cfg.MaxParticles > 0 && len(s.particles) >= s.cfg.MaxParticles {
		if !s.capWarned {
			log.Printf("[ParticleSystem] Particle cap reached (%d), dropping new particles", s.cfg.MaxParticles)
			s.capWarned = true
		}
		return
	}
	s.particles = append(s.particles, p)
}
