package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewHighScoreStore(filepath.Join(t.TempDir(), "cache.json"))

	if err := store.Save(42); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := store.Load(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	if err := store.Save(7); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if got := store.Load(); got != 7 {
		t.Errorf("expected overwrite to 7, got %d", got)
	}
}

func TestSaveWritesHighScoreField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := NewHighScoreStore(path).Save(1000); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != `{"high_score":1000}` {
		t.Errorf("unexpected file content %s", data)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.json")
	store := NewHighScoreStore(path)
	if err := store.Save(3); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := store.Load(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewHighScoreStore(filepath.Join(t.TempDir(), "absent.json"))
	if got := store.Load(); got != 0 {
		t.Errorf("expected 0 for missing file, got %d", got)
	}
}

func TestLoadDegradesToZero(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 0},
		{"not json", "high score: 12", 0},
		{"array", "[1, 2, 3]", 0},
		{"string value", `{"high_score": "99"}`, 0},
		{"float value", `{"high_score": 12.5}`, 0},
		{"negative value", `{"high_score": -4}`, 0},
		{"null value", `{"high_score": null}`, 0},
		{"missing field", `{"best": 10}`, 0},
		{"unknown fields ignored", `{"high_score": 55, "volume": 3}`, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := NewHighScoreStore(path).Load(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSaveFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewHighScoreStore(filepath.Join(blocker, "cache.json"))
	if err := store.Save(1); err == nil {
		t.Error("expected an error when the parent path is a regular file")
	}
}
