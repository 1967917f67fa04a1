// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"ringtime/internal/component"
	"ringtime/internal/config"
	"ringtime/internal/defs"
	"ringtime/internal/event"
	"ringtime/internal/interfaces"
)

// Game holds the session state: the shrinking ring, the player disc, score
// and best score. It is driven from a single goroutine.
type Game struct {
	PlayerRadius       float64
	EnemyRadiusDefault float64
	EnemyWidth         float64
	SpeedIncrement     float64
	Center             component.Point

	CurrentEnemyRadius float64
	EnemySpeed         float64
	Score              int
	HighScore          int

	Scheduler       *SpeedScheduler
	EventDispatcher *event.Dispatcher

	store     interfaces.ScoreStore
	round     int
	lastReset component.ResetKind
}

// NewGame initializes a new game instance. The best score is read from store
// once, here.
func NewGame(store interfaces.ScoreStore, rng interfaces.RangeSource, dispatcher *event.Dispatcher) *Game {
	if store == nil {
		panic("store cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	g := &Game{
		PlayerRadius:       config.PlayerRadius,
		EnemyRadiusDefault: config.EnemyRadiusDefault,
		EnemyWidth:         config.EnemyWidth,
		SpeedIncrement:     config.SpeedIncrement,
		Center:             component.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		Scheduler:          NewSpeedScheduler(defs.SpeedTiers, rng),
		EventDispatcher:    dispatcher,
		store:              store,
	}
	g.CurrentEnemyRadius = g.EnemyRadiusDefault
	g.EnemySpeed = g.Scheduler.AdvanceAndDraw()
	g.HighScore = store.Load()
	log.Printf("Loaded high score %d", g.HighScore)
	return g
}

// Tick advances the ring by one frame.
func (g *Game) Tick() {
	// скорость растёт внутри жизни независимо от таблицы
	g.EnemySpeed += g.SpeedIncrement
	g.CurrentEnemyRadius -= g.EnemySpeed

	if g.Score > g.HighScore {
		previous := g.HighScore
		g.HighScore = g.Score
		g.persist()
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.HighScoreBeaten,
			Data: event.HighScoreData{Previous: previous, Current: g.HighScore},
		})
	}

	if g.Missed() {
		g.resetAfterLoss()
	}
}

// OnAction handles one trigger. It counts only while the ring is still
// outside the disc and reports whether it did.
func (g *Game) OnAction() bool {
	if !g.InHitWindow() {
		return false
	}

	distance := g.CurrentEnemyRadius - g.PlayerRadius
	points := ComputeScore(distance)
	g.Score += points
	g.resetAfterHit()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ActionAccepted,
		Data: event.HitData{Distance: distance, Points: points, Score: g.Score},
	})
	return true
}

// InHitWindow reports whether an action would count right now.
func (g *Game) InHitWindow() bool {
	return g.CurrentEnemyRadius > g.PlayerRadius
}

// Missed reports whether the ring has passed fully through the disc.
func (g *Game) Missed() bool {
	return g.CurrentEnemyRadius+g.EnemyWidth < g.PlayerRadius
}

// DifficultyIndex is the current level in the progression table.
func (g *Game) DifficultyIndex() int {
	return g.Scheduler.Index()
}

// LastReset reports which transition reset the ring most recently.
func (g *Game) LastReset() component.ResetKind {
	return g.lastReset
}

// Shutdown writes the best score one last time.
func (g *Game) Shutdown() error {
	if err := g.store.Save(g.HighScore); err != nil {
		return fmt.Errorf("failed to save high score on shutdown: %w", err)
	}
	return nil
}

// Snapshot copies the state a renderer needs.
func (g *Game) Snapshot() component.Snapshot {
	return component.Snapshot{
		Center: g.Center,
		Player: component.Circle{
			CenterX: g.Center.X,
			CenterY: g.Center.Y,
			Radius:  g.PlayerRadius,
			Color:   config.PlayerColor,
		},
		Enemy: component.Circle{
			CenterX:     g.Center.X,
			CenterY:     g.Center.Y,
			Radius:      g.CurrentEnemyRadius,
			Color:       config.EnemyColor,
			StrokeWidth: g.EnemyWidth,
		},
		Score:           g.Score,
		HighScore:       g.HighScore,
		DifficultyIndex: g.DifficultyIndex(),
		EnemySpeed:      g.EnemySpeed,
		Round:           g.round,
		LastReset:       g.lastReset,
	}
}

// resetAfterLoss clears the score and restarts difficulty from the bottom.
func (g *Game) resetAfterLoss() {
	finalScore := g.Score
	g.Score = 0
	g.Scheduler.Reset()
	g.respawnRing()
	g.lastReset = component.ResetLoss

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.RoundLost,
		Data: event.LossData{FinalScore: finalScore, Round: g.round},
	})
}

// resetAfterHit keeps the score and moves difficulty one level up.
func (g *Game) resetAfterHit() {
	g.respawnRing()
	g.lastReset = component.ResetHit
}

func (g *Game) respawnRing() {
	g.EnemySpeed = g.Scheduler.AdvanceAndDraw()
	g.CurrentEnemyRadius = g.EnemyRadiusDefault
	g.round++
}

// persist is write-through and best-effort: a failed write is logged and
// play continues with the in-memory value.
func (g *Game) persist() {
	if err := g.store.Save(g.HighScore); err != nil {
		log.Printf("Failed to save high score %d: %v", g.HighScore, err)
	}
}
