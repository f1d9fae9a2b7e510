// cmd/arena_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $SKY_CONFIG)")
	flag.Parse()

	log := logging.NewFromEnv()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logging.NewGameLog(log))
	g := app.NewGame(cfg, utils.NewPRNGService(cfg.Seed), dispatcher)
	palette := render.NewPalette()

	rl.InitWindow(int32(cfg.Arena.Width), int32(cfg.Arena.Height), "Sky Shooter | raylib")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc обрабатываем сами
	tps := cfg.Arena.TPS
	if tps == 0 {
		tps = config.TPS
	}
	rl.SetTargetFPS(int32(tps))

	paused := false
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if g.Status() == component.Running && !paused {
			if err := g.Step(pollKeys()); err != nil {
				log.Error("step", "error", err)
			}
		} else if g.Status() == component.Stopped && rl.IsKeyPressed(rl.KeyEnter) {
			break
		}

		rl.BeginDrawing()
		draw(g.Snapshot(), palette, paused)
		rl.EndDrawing()
	}
	g.Stop("window closed")

	fmt.Printf("final score: %d\n", g.Score())
}

func pollKeys() input.Intent {
	return input.Intent{
		MoveLeft:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		MoveRight: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Fire:      rl.IsKeyDown(rl.KeySpace),
		Terminate: rl.IsKeyDown(rl.KeyEscape) || rl.IsKeyDown(rl.KeyQ),
	}
}

func draw(s app.Snapshot, palette *render.Palette, paused bool) {
	rl.ClearBackground(colorToRL(palette.Background))

	drawEntity := func(v app.EntityView) {
		clr := v.Color
		if clr.A == 0 {
			clr = palette.Color(v.Category)
		}
		rl.DrawRectangle(int32(v.X), int32(v.Y), int32(v.W), int32(v.H), colorToRL(clr))
	}
	for _, v := range s.Hostiles {
		drawEntity(v)
	}
	for _, v := range s.Projectiles {
		drawEntity(v)
	}
	drawEntity(s.Player)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), 10, 10, 20, colorToRL(palette.Text))

	switch {
	case s.Status == component.Stopped:
		overlay(s, palette.StoppedOverlay, palette.Text, "GAME OVER - press Enter")
	case paused:
		overlay(s, palette.PausedOverlay, palette.Text, "PAUSED")
	}
}

func overlay(s app.Snapshot, shade, fg color.RGBA, msg string) {
	rl.DrawRectangle(0, 0, int32(s.Width), int32(s.Height), colorToRL(shade))
	const fontSize = 40
	width := rl.MeasureText(msg, fontSize)
	rl.DrawText(msg, (int32(s.Width)-width)/2, int32(s.Height)/2-fontSize/2, fontSize, colorToRL(fg))
}

// colorToRL переводит color.RGBA в rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
