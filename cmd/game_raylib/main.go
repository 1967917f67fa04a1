// cmd/game_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ringtime/internal/app"
	"ringtime/internal/audio"
	"ringtime/internal/component"
	"ringtime/internal/config"
	"ringtime/internal/event"
	"ringtime/internal/interfaces"
	"ringtime/internal/loop"
	"ringtime/internal/storage"
	"ringtime/internal/utils"
)

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawCircle рисует диск или кольцо внутрь от Radius.
func drawCircle(c component.Circle) {
	if c.Radius <= 0 {
		return
	}
	center := rl.NewVector2(float32(c.CenterX), float32(c.CenterY))
	if c.StrokeWidth <= 0 {
		rl.DrawCircleV(center, float32(c.Radius), toRL(c.Color))
		return
	}
	rl.DrawRing(center, float32(c.InnerRadius()), float32(c.Radius), 0, 360, 64, toRL(c.Color))
}

func drawCentered(msg string, cx, cy int, size int32, clr rl.Color) {
	w := rl.MeasureText(msg, size)
	rl.DrawText(msg, int32(cx)-w/2, int32(cy)-size/2, size, clr)
}

func drawFrame(snap component.Snapshot, button *pauseButton) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(toRL(config.BackgroundColor))
	drawCircle(snap.Enemy)
	drawCircle(snap.Player)

	cx, cy := int(snap.Center.X), int(snap.Center.Y)
	text := toRL(config.TextColor)
	drawCentered(fmt.Sprintf("Score: %d", snap.Score), cx, cy-config.ScoreTextOffsetY, config.FontSize, text)
	drawCentered(fmt.Sprintf("High Score: %d", snap.HighScore), cx, cy-config.HighTextOffsetY, config.FontSize, text)

	if button.paused {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 140))
		drawCentered("PAUSED", cx, cy, config.FontSize, toRL(config.PauseTextColor))
	}
	button.draw()
}

func main() {
	settings := config.LoadSettings()
	flag.StringVar(&settings.SavePath, "save", settings.SavePath, "high score file")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "speed table seed, 0 for time based")
	mute := flag.Bool("mute", !settings.AudioEnabled, "disable sound")
	flag.Parse()

	store := storage.NewHighScoreStore(settings.SavePath)
	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Speed seed %d, saving to %s", rng.Seed(), store.Path())

	game := app.NewGame(store, rng, event.NewDispatcher())
	lp := loop.New(game, newAudio(*mute, settings.Volume))

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	rl.SetTargetFPS(config.TPS)

	// --- Главный цикл ---
	button := newPauseButton(config.ScreenWidth-30, 30, 10, config.PauseTextColor)
	for !rl.WindowShouldClose() {
		// клик по кнопке паузы не считается нажатием в игре
		clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
		onButton := clicked && button.contains(rl.GetMousePosition())
		if onButton || rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
			button.toggle()
		}
		button.update(float64(rl.GetFrameTime()))

		if !button.paused {
			actions := 0
			if rl.IsKeyPressed(rl.KeySpace) {
				actions++
			}
			if clicked && !onButton {
				actions++
			}
			lp.Step(actions)
		}
		drawFrame(lp.Snapshot(), button)
	}
	rl.CloseWindow()

	if err := lp.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
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
