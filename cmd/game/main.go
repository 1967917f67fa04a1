// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ringtime/internal/app"
	"ringtime/internal/audio"
	"ringtime/internal/config"
	"ringtime/internal/event"
	"ringtime/internal/interfaces"
	"ringtime/internal/loop"
	"ringtime/internal/state"
	"ringtime/internal/storage"
	"ringtime/internal/utils"
	"ringtime/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	// окно закрывается только после сохранения, см. main
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings()
	flag.StringVar(&settings.SavePath, "save", settings.SavePath, "high score file")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "speed table seed, 0 for time based")
	mute := flag.Bool("mute", !settings.AudioEnabled, "disable sound")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	store := storage.NewHighScoreStore(settings.SavePath)
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Speed seed %d, saving to %s", rng.Seed(), store.Path())

	game := app.NewGame(store, rng, event.NewDispatcher())
	lp := loop.New(game, newAudio(*mute, settings.Volume))

	face, err := render.LoadFace(config.FontSize)
	if err != nil {
		log.Fatal(err)
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, lp, render.NewRingRenderer(face, render.DefaultPalette())))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)
	runErr := ebiten.RunGame(appGame)

	if err := lp.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func newAudio(mute bool, volume float64) interfaces.Audio {
	if mute {
		return audio.Nop{}
	}
	player, err := audio.NewEbitenPlayer(volume)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return audio.Nop{}
	}
	return player
}
