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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".t2048", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveResult(Result{BoardSize: 4, Score: score, MaxTile: 64, Moves: 30}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Different board size
	if _, err := store.SaveResult(Result{BoardSize: 3, Score: 500}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores(4, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	for _, s := range scores {
		if s.GameUUID == "" {
			t.Error("Expected a generated game UUID")
		}
		if s.BoardSize != 4 || s.MaxTile != 64 || s.Moves != 30 {
			t.Errorf("Unexpected result fields: %+v", s)
		}
		if s.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}
	}

	small, err := store.TopScores(3, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 score for 3x3, got %d", len(small))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{BoardSize: 4, Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(4, 3)
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

func TestStoreDuplicateUUID(t *testing.T) {
	store := openTestStore(t)

	r := Result{GameUUID: "same-game", BoardSize: 4, Score: 10}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("Saving the same game twice should fail")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveResult(Result{BoardSize: 4, Score: 300})
	store.SaveResult(Result{BoardSize: 4, Score: 1200})
	store.SaveResult(Result{BoardSize: 5, Score: 9000})

	high, err = store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("Expected high score 1200, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{BoardSize: 4, Score: 100})
	store.SaveResult(Result{BoardSize: 6, Score: 100})

	if err := store.ClearScores(4); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(4, 10)
	if len(scores) != 0 {
		t.Errorf("Expected no 4x4 scores after clear, got %d", len(scores))
	}

	scores, _ = store.TopScores(6, 10)
	if len(scores) != 1 {
		t.Errorf("Clearing 4x4 should keep 6x6 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", empty)
	}

	store.SaveResult(Result{BoardSize: 4, Score: 100, MaxTile: 128})
	store.SaveResult(Result{BoardSize: 4, Score: 300, MaxTile: 2048, Won: true})

	stats, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}
