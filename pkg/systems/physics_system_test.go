package systems

import (
	"math"
	"testing"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
)

func newTestPhysics() *PhysicsSystem {
	cfg := config.DefaultTuning()
	return NewPhysicsSystem(cfg.Physics, cfg.Speed)
}

// TestJump_GroundThenDoubleThenIgnored 测试跳跃次数限制
func TestJump_GroundThenDoubleThenIgnored(t *testing.T) {
	ps := newTestPhysics()
	p := components.NewPlayerComponent(config.PlayerGroundY())

	if got := ps.Jump(&p); got != JumpSingle {
		t.Fatalf("第一次跳跃应为 JumpSingle, got %v", got)
	}
	if p.VelocityY != -15 || p.OnGround || p.JumpsUsed != 1 {
		t.Errorf("一段跳后状态错误: %+v", p)
	}

	ps.Integrate(&p)

	if got := ps.Jump(&p); got != JumpDouble {
		t.Fatalf("空中第二次跳跃应为 JumpDouble, got %v", got)
	}
	if p.VelocityY != -12 || p.JumpsUsed != 2 {
		t.Errorf("二段跳后状态错误: %+v", p)
	}

	before := p
	if got := ps.Jump(&p); got != JumpIgnored {
		t.Fatalf("第三次跳跃应被忽略, got %v", got)
	}
	if p != before {
		t.Errorf("被忽略的跳跃不应修改玩家状态: before %+v, after %+v", before, p)
	}
}

// TestIntegrate_GroundedPlayerStaysPut 测试地面上的玩家保持静止
func TestIntegrate_GroundedPlayerStaysPut(t *testing.T) {
	ps := newTestPhysics()
	p := components.NewPlayerComponent(config.PlayerGroundY())

	for i := 0; i < 100; i++ {
		ps.Integrate(&p)
	}

	if p.Y != 456 || p.VelocityY != 0 || !p.OnGround || p.JumpsUsed != 0 {
		t.Errorf("地面玩家状态应保持不变, got %+v", p)
	}
}

// TestIntegrate_SingleJumpArc 测试一段跳的完整弧线
func TestIntegrate_SingleJumpArc(t *testing.T) {
	ps := newTestPhysics()
	p := components.NewPlayerComponent(config.PlayerGroundY())
	ps.Jump(&p)

	ps.Integrate(&p)
	if math.Abs(p.VelocityY-(-14.2)) > 1e-9 {
		t.Errorf("第一帧速度应为 -14.2, got %v", p.VelocityY)
	}
	if math.Abs(p.Y-441.8) > 1e-9 {
		t.Errorf("第一帧位置应为 441.8, got %v", p.Y)
	}

	minY := p.Y
	ticks := 1
	for !p.OnGround && ticks < 200 {
		ps.Integrate(&p)
		minY = math.Min(minY, p.Y)
		ticks++
	}

	if !p.OnGround {
		t.Fatal("玩家应在 200 帧内落地")
	}
	if ticks < 36 || ticks > 40 {
		t.Errorf("空中帧数应约为 38, got %d", ticks)
	}
	// 离散积分下最高点约为 322.8（第 18 帧）
	if minY < 320 || minY > 325 {
		t.Errorf("最高点应约为 322.8, got %v", minY)
	}
	if p.Y != 456 || p.VelocityY != 0 || p.JumpsUsed != 0 {
		t.Errorf("落地后状态错误: %+v", p)
	}
}

// TestIntegrate_RotationSnapsOnLanding 测试落地时旋转角对齐到 90° 整数倍
func TestIntegrate_RotationSnapsOnLanding(t *testing.T) {
	tests := []struct {
		name       string
		doubleJump bool
	}{
		{name: "一段跳", doubleJump: false},
		{name: "二段跳", doubleJump: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestPhysics()
			p := components.NewPlayerComponent(config.PlayerGroundY())
			ps.Jump(&p)
			ps.Integrate(&p)
			if p.Rotation != 6 {
				t.Errorf("空中第一帧旋转应为 6, got %v", p.Rotation)
			}
			if tt.doubleJump {
				ps.Jump(&p)
				before := p.Rotation
				ps.Integrate(&p)
				if p.Rotation-before != 8 {
					t.Errorf("二段跳后每帧旋转应为 8, got %v", p.Rotation-before)
				}
			}

			for !p.OnGround {
				ps.Integrate(&p)
			}

			if math.Mod(p.Rotation, 90) != 0 {
				t.Errorf("落地旋转角应为 90 的整数倍, got %v", p.Rotation)
			}
			if p.Rotation < 0 || p.Rotation >= 360 {
				t.Errorf("落地旋转角应规范到 [0, 360), got %v", p.Rotation)
			}
		})
	}
}

// TestAdvanceSpeed 测试速度曲线
func TestAdvanceSpeed(t *testing.T) {
	ps := newTestPhysics()

	speed := ps.InitialSpeed()
	if speed != 8 {
		t.Fatalf("初始速度应为 8, got %v", speed)
	}

	speed = ps.AdvanceSpeed(speed)
	if math.Abs(speed-8.0015) > 1e-12 {
		t.Errorf("一帧后速度应为 8.0015, got %v", speed)
	}

	for i := 0; i < 20000; i++ {
		speed = ps.AdvanceSpeed(speed)
	}
	if speed != 22 {
		t.Errorf("速度应封顶于 22, got %v", speed)
	}
}

// TestFirstCollision 测试带收缩边距的碰撞检测
func TestFirstCollision(t *testing.T) {
	ps := newTestPhysics()
	grounded := components.NewPlayerComponent(config.PlayerGroundY())

	spike := func(x float64) components.ObstacleComponent {
		return components.ObstacleComponent{
			Position: components.Vector2D{X: x, Y: config.GroundY - 45},
			Size:     components.Vector2D{X: 40, Y: 45},
			Kind:     components.ObstacleSpike,
		}
	}

	tests := []struct {
		name      string
		player    components.PlayerComponent
		obstacles []components.ObstacleComponent
		want      int
	}{
		{
			name:      "没有障碍物",
			player:    grounded,
			obstacles: nil,
			want:      -1,
		},
		{
			name:      "正面重叠",
			player:    grounded,
			obstacles: []components.ObstacleComponent{spike(110)},
			want:      0,
		},
		{
			// 玩家右缘 144，尖刺左缘 138：原始矩形重叠 6px，收缩后 136 < 146，不算碰撞
			name:      "擦边被宽容",
			player:    grounded,
			obstacles: []components.ObstacleComponent{spike(138)},
			want:      -1,
		},
		{
			name:      "返回第一个命中的下标",
			player:    grounded,
			obstacles: []components.ObstacleComponent{spike(600), spike(100), spike(105)},
			want:      1,
		},
		{
			name: "空中越过",
			player: components.PlayerComponent{
				Y: 300,
			},
			obstacles: []components.ObstacleComponent{spike(100)},
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ps.FirstCollision(tt.player, tt.obstacles); got != tt.want {
				t.Errorf("FirstCollision() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScrollObstacles 测试障碍物按速度左移
func TestScrollObstacles(t *testing.T) {
	ps := newTestPhysics()
	obstacles := []components.ObstacleComponent{
		{Position: components.Vector2D{X: 1000, Y: 455}},
		{Position: components.Vector2D{X: 1020, Y: 280}},
	}

	ps.ScrollObstacles(obstacles, 8)

	if obstacles[0].Position.X != 992 || obstacles[1].Position.X != 1012 {
		t.Errorf("滚动后 X 错误: %v, %v", obstacles[0].Position.X, obstacles[1].Position.X)
	}
	if obstacles[1].Position.Y != 280 {
		t.Errorf("滚动不应改变 Y, got %v", obstacles[1].Position.Y)
	}
}
