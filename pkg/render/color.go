// pkg/render/color.go
package render

import (
	"image/color"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
)

// Palette — все цвета, нужные для отрисовки арены.
type Palette struct {
	Background     color.RGBA
	Star           color.RGBA
	Text           color.RGBA
	Entities       map[component.Category]color.RGBA
	Explosion      color.RGBA
	PausedOverlay  color.RGBA
	StoppedOverlay color.RGBA
}

// NewPalette собирает палитру из цветов конфигурации.
func NewPalette() *Palette {
	return &Palette{
		Background: config.BackgroundColor,
		Star:       config.StarColor,
		Text:       config.TextLightColor,
		Entities: map[component.Category]color.RGBA{
			component.CategoryPlayer:            config.PlayerColor,
			component.CategoryHostileBasic:      config.BasicHostileColor,
			component.CategoryHostileFast:       config.FastHostileColor,
			component.CategoryProjectilePlayer:  config.PlayerProjectileColor,
			component.CategoryProjectileHostile: config.HostileProjectileColor,
		},
		Explosion:      color.RGBA{255, 200, 80, 255},
		PausedOverlay:  color.RGBA{0, 0, 0, 128},
		StoppedOverlay: color.RGBA{40, 0, 0, 160},
	}
}

// Color возвращает цвет категории или белый, если он не задан.
func (p *Palette) Color(kind component.Category) color.RGBA {
	if c, ok := p.Entities[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// DarkenColor уменьшает яркость цвета.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает яркость на k в [0, 1], альфа не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
