package components

import "testing"

// TestRectOverlaps 测试矩形重叠判定（严格不等式）
func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"完全重叠", Rect{X: 100, Y: 100, W: 50, H: 50}, true},
		{"部分重叠 - 右边", Rect{X: 120, Y: 100, W: 50, H: 50}, true},
		{"部分重叠 - 上边", Rect{X: 100, Y: 80, W: 50, H: 50}, true},
		{"包含", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"右边缘刚好接触", Rect{X: 150, Y: 100, W: 50, H: 50}, false},
		{"下边缘刚好接触", Rect{X: 100, Y: 150, W: 50, H: 50}, false},
		{"仅 X 轴重叠", Rect{X: 110, Y: 300, W: 50, H: 50}, false},
		{"仅 Y 轴重叠", Rect{X: 300, Y: 110, W: 50, H: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// 重叠判定必须对称
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("symmetric Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRectShrink 测试矩形收缩
func TestRectShrink(t *testing.T) {
	r := Rect{X: 100, Y: 456, W: 44, H: 44}.Shrink(8)
	want := Rect{X: 108, Y: 464, W: 28, H: 28}
	if r != want {
		t.Errorf("Shrink(8) = %+v, want %+v", r, want)
	}
}

// TestShrunkGrazeIsForgiven 边缘接触的矩形收缩后不再重叠
func TestShrunkGrazeIsForgiven(t *testing.T) {
	player := Rect{X: 100, Y: 456, W: 44, H: 44}
	// 障碍物与玩家重叠 10 像素，但每边收缩 8 后不再重叠（10 < 16）
	obstacle := Rect{X: 134, Y: 455, W: 40, H: 45}

	if !player.Overlaps(obstacle) {
		t.Fatal("raw rectangles should overlap")
	}
	if player.Shrink(8).Overlaps(obstacle.Shrink(8)) {
		t.Error("shrunk rectangles should not overlap")
	}
}

func TestObstacleBoundsAndString(t *testing.T) {
	o := ObstacleComponent{
		Position: Vector2D{X: 1000, Y: 455},
		Size:     Vector2D{X: 40, Y: 45},
		Kind:     ObstacleSpike,
	}
	if o.Right() != 1040 {
		t.Errorf("Right() = %v, want 1040", o.Right())
	}
	if b := o.Bounds(); b != (Rect{X: 1000, Y: 455, W: 40, H: 45}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if o.Kind.String() != "SPIKE" || ObstacleBlock.String() != "BLOCK" {
		t.Errorf("unexpected kind names: %s %s", o.Kind, ObstacleBlock)
	}
}
