// internal/app/runner.go
package app

import (
	"context"
	"fmt"
	"time"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/input"
)

// Renderer получает снимок после каждого кадра.
type Renderer interface {
	Render(s Snapshot) error
}

// Runner крутит игру без окна: опрашивает ввод, делает шаг, отдаёт снимок.
// Используется в headless режиме и в терминальном фронтенде.
type Runner struct {
	Game      *Game
	Input     input.Source
	Output    Renderer // nil — без отрисовки
	TPS       int      // 0 — без паузы между кадрами
	MaxFrames uint64   // 0 — без ограничения
}

// Run работает, пока игра не остановится, и возвращает итоговый счёт.
// Отмена ctx и ошибка источника ввода останавливают игру штатно на границе кадра.
// Ошибка возвращается только если отрисовщик отказал.
func (r *Runner) Run(ctx context.Context) (int, error) {
	src := r.Input
	if src == nil {
		src = input.Idle{}
	}

	var tick <-chan time.Time
	if r.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	for r.Game.Status() == component.Running {
		if r.MaxFrames > 0 && r.Game.Frame() >= r.MaxFrames {
			r.Game.Stop(ReasonFrameLimit)
			break
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				r.Game.Stop(ReasonCanceled)
				continue
			case <-tick:
			}
		} else if ctx.Err() != nil {
			r.Game.Stop(ReasonCanceled)
			break
		}

		in, err := src.Poll()
		if err != nil {
			r.Game.Stop(ReasonInput)
			break
		}
		if err := r.Game.Step(in); err != nil {
			return r.Game.Score(), fmt.Errorf("step frame %d: %w", r.Game.Frame(), err)
		}

		if r.Output != nil {
			if err := r.Output.Render(r.Game.Snapshot()); err != nil {
				r.Game.Stop(ReasonRender)
				return r.Game.Score(), fmt.Errorf("render frame %d: %w", r.Game.Frame(), err)
			}
		}
	}
	return r.Game.Score(), nil
}
