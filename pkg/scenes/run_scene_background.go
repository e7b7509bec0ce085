package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/sleighdash/pkg/components"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 远景参数（逻辑像素）
const (
	skyBands = 24 // 天空渐变的色带数

	auroraBands  = 3
	auroraSpan   = 400.0
	auroraPeriod = 1600.0

	mountainCount  = 3
	mountainSpan   = 600.0
	mountainPeriod = 1800.0
	mountainPeakY  = 150.0

	forestCount  = 10
	forestSpan   = 200.0
	forestPeriod = 2000.0
	forestPeakY  = 300.0

	groundEdgeHeight = 6.0

	santaCanvas = 72.0 // 玩家精灵画布边长，四周留出帽子和雪橇的位置
	santaInset  = (santaCanvas - config.PlayerSize) / 2
)

// wrap 把滚动偏移折算到 [0, period) 区间
// 偏移量只增不减，直接取模在负数时会把图形整体移出屏幕
func wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}

// lerpColor 在两个颜色之间线性插值
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// fade 按透明度缩放颜色（color.RGBA 为预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// fillPath 用纯色填充路径
//
// 参数:
//   - dst: 目标图像
//   - path: 已闭合的路径
//   - c: 填充颜色（预乘 alpha）
func (s *RunScene) fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	if s.white == nil {
		s.white = ebiten.NewImage(1, 1)
		s.white.Fill(color.White)
	}

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, s.white, op)
}

// fillTriangle 填充三角形
func (s *RunScene) fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, c color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()
	s.fillPath(dst, &path, c)
}

// drawSky 绘制天空渐变、极光、远山和森林
func (s *RunScene) drawSky(screen *ebiten.Image, p game.Parallax) {
	bandH := config.PlayfieldHeight / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerpColor(config.ColorBackground, config.ColorSkyBottom, float64(i)/(skyBands-1))
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bandH), config.GameWindowWidth, float32(bandH+1), c, false)
	}

	// 极光：三条缓慢漂移的波带
	for i := 0; i < auroraBands; i++ {
		x := wrap(p.Aurora+float64(i)*auroraSpan, auroraPeriod) - auroraSpan
		top := 60.0 + float64(i)*35

		var path vector.Path
		path.MoveTo(float32(x), float32(top+40))
		path.CubicTo(float32(x+auroraSpan*0.3), float32(top-30),
			float32(x+auroraSpan*0.7), float32(top+70),
			float32(x+auroraSpan*1.6), float32(top))
		path.LineTo(float32(x+auroraSpan*1.6), float32(top+45))
		path.CubicTo(float32(x+auroraSpan*0.7), float32(top+110),
			float32(x+auroraSpan*0.3), float32(top+10),
			float32(x), float32(top+80))
		path.Close()
		s.fillPath(screen, &path, config.ColorAurora)
	}

	for i := 0; i < mountainCount; i++ {
		x := wrap(p.Mountains+float64(i)*mountainSpan, mountainPeriod)
		s.fillTriangle(screen, x-mountainSpan, config.GroundY, x-mountainSpan/2, mountainPeakY, x, config.GroundY, config.ColorMountain)
	}

	for i := 0; i < forestCount; i++ {
		x := wrap(p.Forest+float64(i)*forestSpan, forestPeriod)
		s.fillTriangle(screen, x-forestSpan, config.GroundY, x-forestSpan/2, forestPeakY, x, config.GroundY, config.ColorForest)
	}
}

// drawGround 绘制雪地和边缘
func (s *RunScene) drawGround(screen *ebiten.Image) {
	h := float32(config.PlayfieldHeight - config.GroundY)
	vector.DrawFilledRect(screen, 0, config.GroundY, config.GameWindowWidth, h, config.ColorGround, false)
	vector.DrawFilledRect(screen, 0, config.GroundY, config.GameWindowWidth, groundEdgeHeight, config.ColorGroundEdge, false)
}

// drawObstacle 绘制单个障碍物
// 方块画成圣诞树，尖刺画成冰锥
func (s *RunScene) drawObstacle(screen *ebiten.Image, o components.ObstacleComponent) {
	x, y, w, h := o.Position.X, o.Position.Y, o.Size.X, o.Size.Y

	if o.Kind == components.ObstacleSpike {
		s.fillTriangle(screen, x, y+h, x+w/2, y, x+w, y+h, config.ColorSpike)
		s.fillTriangle(screen, x+w*0.35, y+h*0.3, x+w/2, y, x+w*0.65, y+h*0.3, config.ColorSnow)
		return
	}

	// 树干
	trunkW, trunkH := w*0.2, h*0.15
	vector.DrawFilledRect(screen, float32(x+w/2-trunkW/2), float32(y+h-trunkH), float32(trunkW), float32(trunkH), config.ColorTrunk, false)

	// 三层树冠，从下往上逐层收窄
	crownH := h - trunkH
	tierH := crownH / 2
	for tier := 0; tier < 3; tier++ {
		base := y + crownH - float64(tier)*crownH/4
		half := w / 2 * (1 - float64(tier)*0.2)
		s.fillTriangle(screen, x+w/2-half, base, x+w/2, base-tierH, x+w/2+half, base, config.ColorBlock)
		vector.DrawFilledCircle(screen, float32(x+w/2-half*0.5), float32(base-tierH*0.2), 2.5, config.ColorGold, true)
		vector.DrawFilledCircle(screen, float32(x+w/2+half*0.4), float32(base-tierH*0.35), 2.5, config.ColorPlayer, true)
	}

	// 树顶的星
	vector.DrawFilledCircle(screen, float32(x+w/2), float32(y), 5, config.ColorGold, true)
}

// drawParticles 绘制粒子，透明度等于剩余生命
func drawParticles(screen *ebiten.Image, particles []components.ParticleComponent) {
	for _, p := range particles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Size), fade(p.Color, p.Life), true)
	}
}

// santaSprite 返回玩家精灵，首次调用时绘制
func (s *RunScene) santaSprite() *ebiten.Image {
	if s.santa != nil {
		return s.santa
	}

	img := ebiten.NewImage(santaCanvas, santaCanvas)
	body := float32(config.PlayerSize)
	x, y := float32(santaInset), float32(santaInset)

	vector.DrawFilledRect(img, x, y, body, body, config.ColorPlayer, false)
	// 脸和胡子
	vector.DrawFilledRect(img, x+body*0.45, y+body*0.2, body*0.5, body*0.3, config.ColorFace, false)
	vector.DrawFilledRect(img, x+body*0.4, y+body*0.5, body*0.6, body*0.3, config.ColorBeard, false)
	vector.DrawFilledCircle(img, x+body*0.8, y+body*0.3, 2, color.Black, true)
	// 帽子
	s.fillTriangle(img, float64(x), float64(y), float64(x+body*0.7), float64(y), float64(x+body*0.15), float64(y-santaInset+4), config.ColorPlayer)
	vector.DrawFilledRect(img, x, y-2, body*0.75, 5, config.ColorBeard, false)
	vector.DrawFilledCircle(img, x+body*0.15, float32(4), 4, config.ColorBeard, true)
	// 雪橇
	vector.DrawFilledRect(img, x-6, y+body+4, body+12, 4, config.ColorGold, false)

	s.santa = img
	return img
}

// drawPlayer 绕中心旋转绘制玩家
func (s *RunScene) drawPlayer(screen *ebiten.Image, p components.PlayerComponent) {
	cx, cy := config.PlayerCenter(p.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-santaCanvas/2, -santaCanvas/2)
	op.GeoM.Rotate(p.Rotation * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(s.santaSprite(), op)
}
