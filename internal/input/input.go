// internal/input/input.go
package input

import "errors"

// Intent — намерения игрока на один кадр.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Terminate bool
}

// Source выдаёт намерения раз в кадр. Ошибка означает, что источник больше недоступен,
// и игра должна остановиться на границе кадра.
type Source interface {
	Poll() (Intent, error)
}

// ErrExhausted — у сценария закончились кадры.
var ErrExhausted = errors.New("input: script exhausted")

// Idle — источник без ввода.
type Idle struct{}

func (Idle) Poll() (Intent, error) {
	return Intent{}, nil
}

// Script проигрывает заранее записанные намерения по одному на кадр.
type Script struct {
	frames []Intent
	next   int
}

func NewScript(frames ...Intent) *Script {
	return &Script{frames: frames}
}

// Repeat возвращает n копий намерения, удобно для сборки сценариев.
func Repeat(in Intent, n int) []Intent {
	out := make([]Intent, n)
	for i := range out {
		out[i] = in
	}
	return out
}

func (s *Script) Poll() (Intent, error) {
	if s.next >= len(s.frames) {
		return Intent{}, ErrExhausted
	}
	in := s.frames[s.next]
	s.next++
	return in, nil
}

// Remaining — сколько кадров осталось в сценарии.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}
