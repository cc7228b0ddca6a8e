package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("serpent", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("serpent_duel", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("serpent", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	duelScores, err := store.TopScores("serpent_duel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(duelScores) != 1 {
		t.Errorf("Expected 1 duel score, got %d", len(duelScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("serpent", (i+1)*100)
	}

	scores, err := store.TopScores("serpent", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("serpent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("serpent", 100)
	store.SaveScore("serpent", 300)
	store.SaveScore("serpent", 200)

	high, err = store.HighScore("serpent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("serpent", 100)
	store.SaveScore("serpent", 200)
	store.SaveScore("serpent_duel", 300)

	if err := store.ClearScores("serpent"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	soloScores, _ := store.TopScores("serpent", 10)
	if len(soloScores) != 0 {
		t.Errorf("Expected 0 solo scores after clear, got %d", len(soloScores))
	}

	// The other game's scores must survive
	duelScores, _ := store.TopScores("serpent_duel", 10)
	if len(duelScores) != 1 {
		t.Errorf("Duel scores should not be affected by clearing solo scores")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("serpent", i*10)
	}

	scores, err := store.AllScores("serpent")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("serpent", 100)
	store.SaveScore("serpent", 200)
	store.SaveScore("serpent", 300)

	stats, err := store.GetGameStats("serpent")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("serpent", 100)
	store.SaveScore("serpent_duel", 50)
	store.SaveScore("serpent_duel", 70)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["serpent"].GamesCount != 1 {
		t.Errorf("serpent GamesCount = %d, expected 1", stats["serpent"].GamesCount)
	}
	if stats["serpent_duel"].HighScore != 70 {
		t.Errorf("serpent_duel HighScore = %d, expected 70", stats["serpent_duel"].HighScore)
	}
}

func TestStoreNestedDirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
