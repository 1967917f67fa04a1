// cmd/game_tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"ringtime/internal/app"
	"ringtime/internal/audio"
	"ringtime/internal/config"
	"ringtime/internal/event"
	"ringtime/internal/interfaces"
	"ringtime/internal/loop"
	"ringtime/internal/storage"
	"ringtime/internal/utils"
	"ringtime/pkg/render/terminal"
)

func main() {
	settings := config.LoadSettings()
	flag.StringVar(&settings.SavePath, "save", settings.SavePath, "high score file")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "speed table seed, 0 for time based")
	mute := flag.Bool("mute", !settings.AudioEnabled, "disable sound")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ringtime: stdout is not a terminal")
		os.Exit(1)
	}

	// лог копится, пока экран занят tcell
	logs := terminal.HoldLogs(os.Stderr)
	err := run(settings, *mute)
	logs.Release()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	store := storage.NewHighScoreStore(settings.SavePath)
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Speed seed %d, saving to %s", rng.Seed(), store.Path())

	game := app.NewGame(store, rng, event.NewDispatcher())
	lp := loop.New(game, newAudio(mute, settings.Volume))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fe := terminal.NewFrontend(screen)
	defer fe.Close()

	runErr := lp.Run(ctx, fe)
	if err := lp.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}

func newAudio(mute bool, volume float64) interfaces.Audio {
	if mute {
		return audio.Nop{}
	}
	player, err := audio.NewBeepPlayer(volume)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return audio.Nop{}
	}
	return player
}
