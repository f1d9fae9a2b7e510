// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итоговый счёт. Enter, Esc или Q закрывают окно.
type GameOverState struct {
	last *GameState
}

func NewGameOverState(last *GameState) *GameOverState {
	return &GameOverState{last: last}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyQ} {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw: рендерер сам рисует экран окончания по статусу Stopped.
func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
}

func (s *GameOverState) Exit() {}
