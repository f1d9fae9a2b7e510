// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-sky-shooter/internal/app"
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/input"
)

// GameState — идёт игра. Каждый тик ebiten — один кадр симуляции.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	input    input.Source
	renderer *ArenaRenderer
}

func NewGameState(sm *StateMachine, g *game.Game, src input.Source, renderer *ArenaRenderer) *GameState {
	return &GameState{sm: sm, game: g, input: src, renderer: renderer}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	if g.game.Status() == component.Stopped {
		g.sm.SetState(NewGameOverState(g))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	in, err := g.input.Poll()
	if err != nil {
		g.game.Stop(game.ReasonInput)
		return nil
	}
	return g.game.Step(in)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Snapshot())
}

func (g *GameState) Exit() {}

func (g *GameState) Game() *game.Game {
	return g.game
}
