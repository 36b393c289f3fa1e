package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("hexfall", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Other games do not leak into hexfall's board
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("hexfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("hexfall", (i+1)*100)
	}

	scores, err := store.TopScores("hexfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("hexfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("hexfall", 750)
	store.SaveScore("hexfall", 1500)
	store.SaveScore("hexfall", 600)

	high, err = store.HighScore("hexfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1500 {
		t.Errorf("Expected high score 1500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexfall", 100)
	store.SaveScore("keep", 200)

	if err := store.ClearScores("hexfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.AllScores("hexfall")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	kept, err := store.AllScores("keep")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("Clear should not touch other games, got %d entries", len(kept))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexfall", 600)
	store.SaveScore("hexfall", 1500)

	stats, err := store.GetGameStats("hexfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 1500 {
		t.Errorf("Expected high score 1500, got %d", stats.HighScore)
	}
	if stats.TotalScore != 2100 {
		t.Errorf("Expected total 2100, got %d", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["hexfall"]; !ok {
		t.Error("All-games stats should include hexfall")
	}
}
