package scenes

import (
	"image/color"

	"github.com/gonewx/horde/pkg/types"
)

var (
	backgroundColor = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	arenaEdgeColor  = color.RGBA{R: 60, G: 64, B: 84, A: 255}
	playerColor     = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	shieldColor     = color.RGBA{R: 80, G: 140, B: 255, A: 180}
	bulletColor     = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	overlayColor    = color.RGBA{A: 170}
	barBackColor    = color.RGBA{R: 40, G: 40, B: 40, A: 220}
)

// namedColors 模拟内核使用的颜色标签
var namedColors = map[string]color.RGBA{
	"red":     {R: 230, G: 70, B: 70, A: 255},
	"yellow":  {R: 250, G: 220, B: 80, A: 255},
	"green":   {R: 90, G: 200, B: 110, A: 255},
	"purple":  {R: 170, G: 100, B: 230, A: 255},
	"orange":  {R: 255, G: 150, B: 50, A: 255},
	"crimson": {R: 200, G: 20, B: 60, A: 255},
	"magenta": {R: 240, G: 80, B: 220, A: 255},
	"cyan":    {R: 80, G: 230, B: 230, A: 255},
	"white":   {R: 245, G: 245, B: 245, A: 255},
	"gold":    {R: 255, G: 200, B: 40, A: 255},
	"blue":    {R: 80, G: 140, B: 255, A: 255},
}

var powerUpColors = map[types.PowerUpType]color.RGBA{
	types.PowerUpHealth:    {R: 90, G: 220, B: 110, A: 255},
	types.PowerUpShield:    {R: 80, G: 140, B: 255, A: 255},
	types.PowerUpSpeed:     {R: 250, G: 220, B: 80, A: 255},
	types.PowerUpPierce:    {R: 200, G: 120, B: 255, A: 255},
	types.PowerUpExplosive: {R: 255, G: 130, B: 40, A: 255},
	types.PowerUpWeapon:    {R: 245, G: 245, B: 245, A: 255},
}

// paletteColor 把颜色标签转换为 RGBA，未知标签为白色
func paletteColor(name string) color.RGBA {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return namedColors["white"]
}

// fade 按 alpha 缩放颜色（预乘）
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
