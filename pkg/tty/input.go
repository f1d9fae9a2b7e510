package tty

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"go-sky-shooter/internal/input"
)

// Input собирает нажатия между кадрами. Терминал не сообщает об отпускании клавиш,
// поэтому каждое нажатие действует ровно один кадр; автоповтор даёт непрерывное движение.
type Input struct {
	mu      sync.Mutex
	pending input.Intent
	closed  bool
}

func NewInput() *Input {
	return &Input{}
}

// HandleEvent принимает событие терминала. Возвращает false после запроса выхода.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return in.HandleKey(key.Key(), key.Rune())
}

func (in *Input) HandleKey(key tcell.Key, ch rune) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch key {
	case tcell.KeyLeft:
		in.pending.MoveLeft = true
	case tcell.KeyRight:
		in.pending.MoveRight = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.pending.Terminate = true
	case tcell.KeyRune:
		switch ch {
		case 'a', 'A', 'h':
			in.pending.MoveLeft = true
		case 'd', 'D', 'l':
			in.pending.MoveRight = true
		case ' ':
			in.pending.Fire = true
		case 'q', 'Q':
			in.pending.Terminate = true
		}
	}
	return !in.pending.Terminate
}

// Close сообщает, что терминал закрыт: следующий Poll вернёт ошибку.
func (in *Input) Close() {
	in.mu.Lock()
	in.closed = true
	in.mu.Unlock()
}

// Poll отдаёт накопленные намерения и сбрасывает их.
func (in *Input) Poll() (input.Intent, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed && !in.pending.Terminate {
		return input.Intent{}, input.ErrExhausted
	}
	out := in.pending
	in.pending = input.Intent{}
	return out, nil
}

// Listen читает события экрана, пока тот не будет закрыт (PollEvent вернёт nil)
// или не придёт запрос выхода.
func (in *Input) Listen(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			in.Close()
			return
		}
		if !in.HandleEvent(ev) {
			return
		}
	}
}
