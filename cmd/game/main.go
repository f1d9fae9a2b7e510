// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/metrics"
	"go-sky-shooter/internal/sound"
	"go-sky-shooter/internal/sound/device"
	"go-sky-shooter/internal/state"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/render"
	"go-sky-shooter/pkg/starfield"
)

const starCount = 80

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	log := logging.NewFromEnv()
	if err := run(log); err != nil {
		log.Error("game failed", "error", err)
		os.Exit(1)
	}
}

func run(log *logging.Logger) error {
	configPath := flag.String("config", "", "path to YAML config (default: $SKY_CONFIG)")
	seed := flag.Int64("seed", 0, "random seed, 0 keeps the config value")
	headless := flag.Bool("headless", false, "run without a window and print the final score")
	frames := flag.Uint64("frames", 3600, "frame limit in headless mode, 0 for no limit")
	startFromGame := flag.Bool("skip-menu", false, "start the game without the title screen")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return logging.WrapError(err, "load config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	rng := utils.NewPRNGService(cfg.Seed)
	log.Info("starting", "seed", rng.Seed(), "headless", *headless, "arena", fmt.Sprintf("%.0fx%.0f", cfg.Arena.Width, cfg.Arena.Height))

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logging.NewGameLog(log))
	collector := metrics.NewCollector()
	dispatcher.SubscribeAll(collector)
	startDebugServer(cfg.Debug, collector, log)

	if cfg.Audio.Enabled && !*headless {
		spk, err := device.Open(sound.SampleRate)
		if err != nil {
			log.Warn("audio disabled", "error", err)
		} else {
			fx := sound.NewEffects(spk, sound.SampleRate, log)
			dispatcher.SubscribeAll(fx)
			defer func() {
				dispatcher.UnsubscribeAll(fx)
				spk.Close()
			}()
		}
	}

	g := app.NewGame(cfg, rng, dispatcher)

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		runner := &app.Runner{Game: g, Input: input.Idle{}, MaxFrames: *frames}
		score, err := runner.Run(ctx)
		fmt.Printf("final score: %d\n", score)
		return err
	}

	renderer := state.NewArenaRenderer(render.NewPalette(), starfield.New(rng.Seed(), cfg.Arena.Width, cfg.Arena.Height, starCount))
	sm := state.NewStateMachine() // Создаём машину состояний
	newGame := func() state.State {
		return state.NewGameState(sm, g, state.Keyboard{}, renderer)
	}
	if *startFromGame {
		sm.SetState(newGame())
	} else {
		sm.SetState(state.NewMenuState(sm, renderer, newGame))
	}

	tps := cfg.Arena.TPS
	if tps == 0 {
		tps = config.TPS
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle("Sky Shooter")
	appGame := &AppGame{stateMachine: sm, width: int(cfg.Arena.Width), height: int(cfg.Arena.Height)}
	if err := ebiten.RunGame(appGame); err != nil {
		return logging.WrapError(err, "run game")
	}
	g.Stop("window closed")

	fmt.Printf("final score: %d\n", g.Score())
	return nil
}

// startDebugServer поднимает pprof и, если включено, /metrics на одном адресе.
func startDebugServer(cfg config.DebugConfig, collector *metrics.Collector, log *logging.Logger) {
	if cfg.Addr == "" {
		return
	}
	if cfg.Metrics {
		http.Handle("/metrics", collector.Handler())
	}
	go func() {
		log.Info("debug listener", "addr", cfg.Addr)
		if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
			log.Warn("debug listener stopped", "error", err)
		}
	}()
}
