// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 600
	ScreenHeight = 600
	TPS          = 60
	WindowTitle  = "ringtime"
	MaxDeltaTime = 0.06

	PlayerRadius       = 20.0
	EnemyRadiusDefault = 500.0
	EnemyWidth         = 30.0
	SpeedIncrement     = 0.1 // добавляется к скорости кольца каждый тик

	ScoreScale      = 10.0 // чем больше, тем мягче кривая
	ScoreMultiplier = 1000.0
	MaxHitScore     = math.MaxInt32

	FontSize          = 32
	ScoreTextOffsetY  = 200
	HighTextOffsetY   = 250
	PulseStrength     = 0.3
	PulseDecay        = 8.0
	TerminalCellRatio = 2.0 // ячейка терминала примерно вдвое выше своей ширины

	SaveDirName  = "ringtime"
	SaveFileName = "cache.json"

	AudioSampleRate  = 48000
	ClickFrequency   = 1320.0
	ClickDuration    = 0.06
	MusicLoopSeconds = 4.0
	DefaultVolume    = 0.5
)

var (
	BackgroundColor = color.RGBA{74, 16, 42, 255}
	PlayerColor     = color.RGBA{252, 242, 89, 255}
	EnemyColor      = color.RGBA{197, 23, 46, 255}
	TextColor       = color.RGBA{133, 25, 60, 255}
	PauseTextColor  = color.RGBA{240, 240, 240, 255}
)
