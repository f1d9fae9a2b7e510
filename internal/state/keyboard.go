// internal/state/keyboard.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-shooter/internal/input"
)

// Keyboard — источник намерений из клавиатуры ebiten. Движение и огонь
// действуют, пока клавиша зажата.
type Keyboard struct{}

func (Keyboard) Poll() (input.Intent, error) {
	return input.Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Terminate: ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ),
	}, nil
}
