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

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Empty store reads as 0.
	if got := store.LoadBest(); got != 0 {
		t.Errorf("LoadBest() on empty store = %d, want 0", got)
	}

	if !store.SaveBest(1234) {
		t.Fatal("SaveBest(1234) reported failure")
	}
	if got := store.LoadBest(); got != 1234 {
		t.Errorf("LoadBest() = %d, want 1234", got)
	}

	// Upsert overwrites the single row.
	if !store.SaveBest(5000) {
		t.Fatal("SaveBest(5000) reported failure")
	}
	if got := store.LoadBest(); got != 5000 {
		t.Errorf("LoadBest() after upsert = %d, want 5000", got)
	}

	// Reset to zero persists too.
	if !store.SaveBest(0) {
		t.Fatal("SaveBest(0) reported failure")
	}
	if got := store.LoadBest(); got != 0 {
		t.Errorf("LoadBest() after reset = %d, want 0", got)
	}
}

func TestSaveAndQueryGames(t *testing.T) {
	store := openTestStore(t)

	games := []GameRecord{
		{Score: 100, Moves: 30, MaxTile: 64, Target: 2048, Outcome: "quit"},
		{Score: 300, Moves: 80, MaxTile: 256, Target: 2048, Outcome: "lost"},
		{Score: 200, Moves: 50, MaxTile: 128, Target: 4096, Outcome: "lost"},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopGames() returned %d records, want 3", len(top))
	}
	if top[0].Score != 300 || top[1].Score != 200 || top[2].Score != 100 {
		t.Errorf("TopGames() not sorted by score: %v %v %v", top[0].Score, top[1].Score, top[2].Score)
	}

	recent, err := store.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("RecentGames(2) returned %d records, want 2", len(recent))
	}
	// Newest insert first.
	if recent[0].Target != 4096 {
		t.Errorf("RecentGames() first record target = %d, want 4096", recent[0].Target)
	}
}

func TestTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveGame(GameRecord{
			Score: (i + 1) * 100, Moves: 10, MaxTile: 32, Target: 2048, Outcome: "lost",
		}); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("TopGames(3) returned %d records, want 3", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("TopGames(3) = %d,%d,%d, want 500,400,300", top[0].Score, top[1].Score, top[2].Score)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store yields zero stats, not an error.
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	store.SaveGame(GameRecord{Score: 100, Moves: 30, MaxTile: 64, Target: 2048, Outcome: "lost"})
	store.SaveGame(GameRecord{Score: 300, Moves: 90, MaxTile: 2048, Target: 2048, Outcome: "won"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", stats.GamesPlayed)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, want 300", stats.BestScore)
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
}

func TestClearGamesKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest(900)
	store.SaveGame(GameRecord{Score: 900, Moves: 200, MaxTile: 1024, Target: 2048, Outcome: "lost"})

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	top, _ := store.TopGames(10)
	if len(top) != 0 {
		t.Errorf("games after clear = %d, want 0", len(top))
	}
	if got := store.LoadBest(); got != 900 {
		t.Errorf("best after clear = %d, want 900", got)
	}
}
