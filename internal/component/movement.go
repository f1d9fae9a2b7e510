// internal/component/movement.go
package component

import (
	"fmt"

	"go-sky-shooter/internal/utils"
)

// Position — компонент позиции (левый верхний угол)
type Position struct {
	X, Y float64
}

// Size — габариты прямоугольника сущности. Обе стороны строго положительные.
type Size struct {
	W, H float64
}

// NewSize создаёт габариты. Неположительная сторона — ошибка вызывающего кода, поэтому паника.
func NewSize(w, h float64) Size {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("component: invalid extent %vx%v", w, h))
	}
	return Size{W: w, H: h}
}

// Rect собирает прямоугольник из позиции и габаритов.
func (s Size) Rect(pos Position) utils.Rect {
	return utils.Rect{X: pos.X, Y: pos.Y, W: s.W, H: s.H}
}

// Motion — скорость (единиц за кадр) и направление движения.
// У врагов DX ∈ {-1, 0, 1}, DY = 1. У снарядов DX = 0, а DY задаётся категорией при создании.
type Motion struct {
	Speed  float64
	DX, DY float64
}
