package components

// Rect 轴对齐矩形（左上角 + 宽高），用于碰撞检测
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Shrink 返回四边各向内收缩 margin 后的矩形
// 用于宽容擦边：两个矩形边缘接触但收缩后不重叠时不算碰撞
func (r Rect) Shrink(margin float64) Rect {
	return Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
}

// Overlaps 检查两个矩形在两个轴上是否都严格重叠
// 边缘刚好接触不算重叠
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}
