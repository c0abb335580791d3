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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{4, 10, 7} {
		if _, err := store.SaveScore("keys", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("rooms", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("keys", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 10 || scores[1].Score != 7 || scores[2].Score != 4 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	high, err := store.HighScore("keys")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 10 {
		t.Errorf("HighScore = %d, expected 10", high)
	}

	if high, _ := store.HighScore("unknown"); high != 0 {
		t.Errorf("HighScore for unknown game = %d, expected 0", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("cube", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("cube", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cube", 5)
	store.SaveScore("keys", 8)

	if err := store.ClearScores("cube"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("cube", 10)
	if len(scores) != 0 {
		t.Errorf("Expected cube scores cleared, got %d", len(scores))
	}
	kept, _ := store.TopScores("keys", 10)
	if len(kept) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d", len(kept))
	}
}

func TestStoreRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "rooms", Score: 10, Outcome: OutcomeWon, TimeLeft: 12.5, Duration: 48},
		{GameID: "rooms", Score: 6, Outcome: OutcomeLost, TimeLeft: 0, Duration: 60},
		{GameID: "rooms", Score: 10, Outcome: OutcomeWon, TimeLeft: 4.0, Duration: 56},
		{GameID: "cube", Score: 2, Outcome: OutcomeQuit, TimeLeft: 30, Duration: 30},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("rooms", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].TimeLeft != 4.0 {
		t.Errorf("Runs should be newest first, got %+v", recent[0])
	}

	stats, err := store.GameStats("rooms")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 2 {
		t.Errorf("Stats = %+v, expected 3 runs / 2 wins", stats)
	}
	if stats.BestTime != 12.5 {
		t.Errorf("BestTime = %f, expected 12.5", stats.BestTime)
	}

	empty, err := store.GameStats("nothing")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Wins != 0 || empty.BestTime != 0 {
		t.Errorf("Empty stats = %+v", empty)
	}
}
