// cmd/tty/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/tty"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $SKY_CONFIG)")
	seed := flag.Int64("seed", 0, "random seed, 0 keeps the config value")
	flag.Parse()

	score, err := run(*configPath, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("final score: %d\n", score)
}

func run(configPath string, seed int64) (int, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return 0, logging.WrapError(err, "load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, logging.WrapError(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return 0, logging.WrapError(err, "init terminal")
	}
	defer screen.Fini()

	// Лог в stderr испортит экран, поэтому пишем только итог через GameStopped.
	log := logging.Discard()
	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logging.NewGameLog(log))

	keys := tty.NewInput()
	go keys.Listen(screen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := app.NewGame(cfg, utils.NewPRNGService(cfg.Seed), dispatcher)
	runner := &app.Runner{
		Game:   g,
		Input:  keys,
		Output: tty.NewRenderer(screen),
		TPS:    cfg.Arena.TPS,
	}
	return runner.Run(ctx)
}
