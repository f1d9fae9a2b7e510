// Package tty рисует арену в терминале и читает оттуда клавиши.
package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/component"
)

// Glyphs по категориям.
var glyphs = map[component.Category]rune{
	component.CategoryPlayer:            'A',
	component.CategoryHostileBasic:      'V',
	component.CategoryHostileFast:       'W',
	component.CategoryProjectilePlayer:  '|',
	component.CategoryProjectileHostile: '!',
}

var styles = map[component.Category]tcell.Style{
	component.CategoryPlayer:            tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	component.CategoryHostileBasic:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	component.CategoryHostileFast:       tcell.StyleDefault.Foreground(tcell.ColorOrange),
	component.CategoryProjectilePlayer:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	component.CategoryProjectileHostile: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	effectStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer рисует снимок арены, масштабируя её под размер терминала.
// Первая строка отведена под счёт.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Render(s app.Snapshot) error {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows < 2 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	r.screen.Clear()

	r.drawText(0, 0, fmt.Sprintf(" score: %d  frame: %d  %s ", s.Score, s.Frame, s.Status))
	for _, v := range s.Hostiles {
		r.drawEntity(s, v, cols, rows)
	}
	for _, v := range s.Projectiles {
		r.drawEntity(s, v, cols, rows)
	}
	for _, fx := range s.Effects {
		if cx, cy, ok := Cell(s, fx.X, fx.Y, cols, rows); ok {
			r.screen.SetContent(cx, cy, '*', nil, effectStyle)
		}
	}
	r.drawEntity(s, s.Player, cols, rows)

	r.screen.Show()
	return nil
}

// Cell переводит точку арены в клетку терминала. ok == false, если точка вне арены.
func Cell(s app.Snapshot, x, y float64, cols, rows int) (cx, cy int, ok bool) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0, 0, false
	}
	cx = int(x / s.Width * float64(cols))
	cy = 1 + int(y/s.Height*float64(rows-1))
	return cx, cy, true
}

func (r *Renderer) drawEntity(s app.Snapshot, v app.EntityView, cols, rows int) {
	cx, cy, ok := Cell(s, v.X+v.W/2, v.Y+v.H/2, cols, rows)
	if !ok {
		return
	}
	r.screen.SetContent(cx, cy, glyphs[v.Category], nil, styles[v.Category])
}

func (r *Renderer) drawText(x, y int, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, hudStyle)
	}
}
