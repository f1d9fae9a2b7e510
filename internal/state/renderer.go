// internal/state/renderer.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/ui"
	"go-sky-shooter/pkg/render"
	"go-sky-shooter/pkg/starfield"
)

const hudMargin = 10

// ArenaRenderer рисует снимок арены средствами ebiten.
type ArenaRenderer struct {
	palette  *render.Palette
	stars    *starfield.Field
	hud      *ui.HUD
	fontFace font.Face
}

// NewArenaRenderer: stars может быть nil — тогда фон без звёзд.
func NewArenaRenderer(palette *render.Palette, stars *starfield.Field) *ArenaRenderer {
	return &ArenaRenderer{palette: palette, stars: stars, fontFace: basicfont.Face7x13}
}

func (r *ArenaRenderer) Palette() *render.Palette {
	return r.palette
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.Fill(r.palette.Background)

	if r.stars != nil {
		for _, st := range r.stars.At(s.Frame) {
			clr := render.ScaleColor(r.palette.Star, 0.3+0.7*st.Brightness)
			vector.DrawFilledRect(screen, float32(st.X), float32(st.Y), 2, 2, clr, false)
		}
	}

	for _, v := range s.Hostiles {
		r.drawEntity(screen, v)
	}
	for _, v := range s.Projectiles {
		r.drawEntity(screen, v)
	}
	for _, fx := range s.Effects {
		clr := render.ScaleColor(r.palette.Explosion, 1-fx.Progress)
		vector.StrokeCircle(screen, float32(fx.X), float32(fx.Y), float32(fx.Radius), 2, clr, true)
	}

	player := s.Player
	if s.PlayerHit && s.Frame%2 == 0 {
		player.Color = r.palette.Text
	}
	r.drawEntity(screen, player)

	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score), r.fontFace, hudMargin, hudMargin+13, r.palette.Text)
	if r.hud == nil {
		r.hud = ui.NewHUD(float32(s.Width)-140, hudMargin)
	}
	r.hud.Draw(screen, s.Cooldown, s.CooldownMax, len(s.Hostiles), s.HostileCap)
	if s.Status == component.Stopped {
		r.Overlay(screen, r.palette.StoppedOverlay, "GAME OVER", fmt.Sprintf("final score: %d", s.Score))
	}
}

// Overlay затемняет экран и выводит строки по центру.
func (r *ArenaRenderer) Overlay(screen *ebiten.Image, shade color.RGBA, lines ...string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)

	const lineHeight = 20
	y := h/2 - len(lines)*lineHeight/2
	for _, line := range lines {
		width := font.MeasureString(r.fontFace, line).Ceil()
		text.Draw(screen, line, r.fontFace, (w-width)/2, y, r.palette.Text)
		y += lineHeight
	}
}

func (r *ArenaRenderer) drawEntity(screen *ebiten.Image, v app.EntityView) {
	clr := v.Color
	if clr.A == 0 {
		clr = r.palette.Color(v.Category)
	}
	vector.DrawFilledRect(screen, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), clr, false)
	if v.Category.IsHostile() || v.Category == component.CategoryPlayer {
		vector.StrokeRect(screen, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), 2, render.DarkenColor(clr), false)
	}
}
