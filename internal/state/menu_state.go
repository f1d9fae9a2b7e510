// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка до начала игры.
type MenuState struct {
	sm       *StateMachine
	next     func() State
	renderer *ArenaRenderer
}

// NewMenuState: next создаёт игровое состояние по нажатию пробела.
func NewMenuState(sm *StateMachine, renderer *ArenaRenderer, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next, renderer: renderer}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next())
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	palette := m.renderer.Palette()
	screen.Fill(palette.Background)
	m.renderer.Overlay(screen, palette.PausedOverlay, "SKY SHOOTER", "arrows / A D to move, SPACE to fire", "P pause, ESC quit", "press SPACE to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
