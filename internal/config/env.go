package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Settings holds the runtime knobs a host may change. Gameplay numbers are
// constants and never come from here.
type Settings struct {
	SavePath     string
	Seed         int64
	AudioEnabled bool
	Volume       float64
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// DefaultSavePath resolves the per-user location of the high score file.
// Falls back to the working directory when no config dir is available.
func DefaultSavePath() string {
	root, err := os.UserConfigDir()
	if err != nil || root == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return SaveFileName
		}
		root = filepath.Join(home, ".config")
	}
	return filepath.Join(root, SaveDirName, SaveFileName)
}

// LoadSettings reads settings from the environment.
func LoadSettings() Settings {
	s := Settings{
		SavePath:     GetEnv("RINGTIME_SAVE_PATH", ""),
		AudioEnabled: true,
		Volume:       DefaultVolume,
	}
	if s.SavePath == "" {
		s.SavePath = DefaultSavePath()
	}

	if seed := os.Getenv("RINGTIME_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			s.Seed = val
		}
	}

	if enabled := os.Getenv("RINGTIME_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			s.AudioEnabled = val
		}
	}

	// 0-100 -> 0.0-1.0
	if volume := os.Getenv("RINGTIME_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			s.Volume = float64(val) / 100.0
			if s.Volume < 0 {
				s.Volume = 0
			}
			if s.Volume > 1 {
				s.Volume = 1
			}
		}
	}

	return s
}
