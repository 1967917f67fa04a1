// Package storage keeps the best score between runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// record is the on-disk shape. Unknown fields are ignored on read.
type record struct {
	HighScore *int `json:"high_score"`
}

// HighScoreStore reads and writes a single integer at a fixed path.
type HighScoreStore struct {
	path string
}

// NewHighScoreStore creates a store backed by the file at path.
func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Path returns the backing file location.
func (s *HighScoreStore) Path() string {
	return s.path
}

// Load returns the stored high score. A missing file, unreadable content,
// a non-integer or a negative value all yield 0.
func (s *HighScoreStore) Load() int {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	if err != nil {
		log.Printf("high score: read %s: %v", s.path, err)
		return 0
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("high score: ignoring malformed %s: %v", s.path, err)
		return 0
	}
	if rec.HighScore == nil || *rec.HighScore < 0 {
		return 0
	}
	return *rec.HighScore
}

// Save overwrites the record with value. The file is replaced atomically so
// a crash mid-write leaves the previous score intact.
func (s *HighScoreStore) Save(value int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	data, err := json.Marshal(record{HighScore: &value})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp save file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}
