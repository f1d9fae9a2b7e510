// internal/ui/hud.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD отображает перезарядку оружия игрока и заполненность лимита врагов.
type HUD struct {
	X, Y float32
}

const (
	cooldownBarWidth  = 118
	cooldownBarHeight = 12
	slotWidth         = 16
	slotHeight        = 12
	slotGap           = 9
	borderWidth       = 1
)

var (
	barColorFill  = color.RGBA{80, 200, 255, 220}
	slotColorFill = color.RGBA{220, 60, 60, 220}
	borderColor   = color.White
)

func NewHUD(x, y float32) *HUD {
	return &HUD{X: x, Y: y}
}

// ReadyRatio — доля готовности оружия: 1 — можно стрелять.
func ReadyRatio(cooldown, cooldownMax int) float64 {
	if cooldownMax <= 0 || cooldown <= 0 {
		return 1
	}
	ratio := 1 - float64(cooldown)/float64(cooldownMax)
	if ratio < 0 {
		return 0
	}
	return ratio
}

// Draw отрисовывает индикатор.
func (h *HUD) Draw(screen *ebiten.Image, cooldown, cooldownMax, hostiles, hostileCap int) {
	// 1. Полоса перезарядки
	vector.StrokeRect(screen, h.X, h.Y, cooldownBarWidth, cooldownBarHeight, borderWidth, borderColor, true)
	fillWidth := float32(float64(cooldownBarWidth-borderWidth*2) * ReadyRatio(cooldown, cooldownMax))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, h.X+borderWidth, h.Y+borderWidth, fillWidth, cooldownBarHeight-borderWidth*2, barColorFill, true)
	}

	// 2. Ячейки лимита врагов
	slotY := h.Y + cooldownBarHeight + 10 // 10 пикселей отступ вниз
	for j := 0; j < hostileCap; j++ {
		slotX := h.X + float32(j)*(slotWidth+slotGap)
		vector.StrokeRect(screen, slotX, slotY, slotWidth, slotHeight, borderWidth, borderColor, true)
		if j < hostiles {
			vector.DrawFilledRect(screen, slotX+borderWidth, slotY+borderWidth, slotWidth-borderWidth*2, slotHeight-borderWidth*2, slotColorFill, true)
		}
	}
}
