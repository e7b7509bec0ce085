package config

import "image/color"

// 调色板
// 粒子颜色属于模拟数据（快照中会带出），因此与布局常量放在一起。
var (
	ColorBackground = color.RGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff}
	ColorSkyBottom  = color.RGBA{R: 0x1e, G: 0x1b, B: 0x4b, A: 0xff}
	ColorGround     = color.RGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xff}
	ColorGroundEdge = color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}
	ColorPlayer     = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	ColorBeard      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorFace       = color.RGBA{R: 0xfe, G: 0xca, B: 0xca, A: 0xff}
	ColorSpike      = color.RGBA{R: 0x7d, G: 0xd3, B: 0xfc, A: 0xff}
	ColorBlock      = color.RGBA{R: 0x16, G: 0x65, B: 0x34, A: 0xff}
	ColorTrunk      = color.RGBA{R: 0x78, G: 0x35, B: 0x0f, A: 0xff}
	ColorSnow       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorAurora     = color.RGBA{R: 34, G: 197, B: 94, A: 38}
	ColorMountain   = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	ColorForest     = color.RGBA{R: 0x06, G: 0x4e, B: 0x3b, A: 0xff}
	ColorGold       = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}

	// ColorDoubleJump 二段跳时的雪花爆散颜色
	ColorDoubleJump = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
