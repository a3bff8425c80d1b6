package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/desetka/internal/games/desetka"
	"github.com/vovakirdan/desetka/internal/storage"
)

func TestListScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	for i := range 15 {
		store.SaveScore(desetka.GameID, (i+1)*10, "")
	}

	tests := []struct {
		name  string
		all   bool
		limit int
		want  int
	}{
		{"limited", false, 5, 5},
		{"all ignores limit", true, 5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldAll, oldLimit := flagAll, flagLimit
			t.Cleanup(func() { flagAll, flagLimit = oldAll, oldLimit })
			flagAll, flagLimit = tt.all, tt.limit

			scores, err := listScores(store)
			if err != nil {
				t.Fatalf("listScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("len = %d, want %d", len(scores), tt.want)
			}
			if len(scores) > 0 && scores[0].Score != 150 {
				t.Errorf("first score = %d, want 150", scores[0].Score)
			}
		})
	}
}
