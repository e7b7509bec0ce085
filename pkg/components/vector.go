package components

// Vector2D 二维向量（像素），用于位置、尺寸和速度
type Vector2D struct {
	X float64
	Y float64
}

// Add 返回两个向量之和
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}
