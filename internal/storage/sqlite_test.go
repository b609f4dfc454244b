package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, game string, score int) {
	t.Helper()
	if _, err := store.SaveScore(Record{GameID: game, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(Record{GameID: "snake", Score: 70}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected 70 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "tetris", 100)
	mustSave(t, store, "tetris", 50)
	mustSave(t, store, "tetris", 200)
	mustSave(t, store, "snake", 500)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "tetris" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	snakeScores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(snakeScores) != 1 {
		t.Errorf("Expected 1 snake score, got %d", len(snakeScores))
	}
}

func TestStoreDetailsAndDuration(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(Record{
		GameID:   "tetris",
		Score:    1200,
		Details:  map[string]int{"level": 3, "lines": 24},
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	mustSave(t, store, "tetris", 10)

	scores, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Details["level"] != 3 || top.Details["lines"] != 24 {
		t.Errorf("Unexpected details: %v", top.Details)
	}
	if top.Duration != 95*time.Second {
		t.Errorf("Duration = %v, want 1m35s", top.Duration)
	}
	if got := top.DetailString(); got != "level=3 lines=24" {
		t.Errorf("DetailString() = %q", got)
	}
	if scores[1].Details != nil {
		t.Errorf("Expected no details for a bare record, got %v", scores[1].Details)
	}
}

func TestStoreRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(Record{Score: 10}); err == nil {
		t.Error("Expected an error for a record without game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore(Record{GameID: "t2048", Score: 300})
	second, _ := store.SaveScore(Record{GameID: "t2048", Score: 300})

	scores, err := store.TopScores("t2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Expected earlier score first on ties, got ids %d, %d", scores[0].ID, scores[1].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "tetris", 100)
	mustSave(t, store, "tetris", 300)
	mustSave(t, store, "tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreIsHighScore(t *testing.T) {
	store := openTestStore(t)

	ok, err := store.IsHighScore("snake", 10)
	if err != nil {
		t.Fatalf("IsHighScore() failed: %v", err)
	}
	if !ok {
		t.Error("Any positive score enters an empty table")
	}

	ok, _ = store.IsHighScore("snake", 0)
	if ok {
		t.Error("A zero score is never a high score")
	}

	for i := 1; i <= DefaultLimit; i++ {
		mustSave(t, store, "snake", i*10)
	}

	if ok, _ := store.IsHighScore("snake", 10); ok {
		t.Error("Tying the lowest entry of a full table is not enough")
	}
	if ok, _ := store.IsHighScore("snake", 15); !ok {
		t.Error("Beating the lowest entry should qualify")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "tetris", 100)
	store.SaveScore(Record{GameID: "tetris", Score: 200, Details: map[string]int{"lines": 4}})
	mustSave(t, store, "snake", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	tetrisScores, _ := store.TopScores("tetris", 10)
	if len(tetrisScores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(tetrisScores))
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 1 {
		t.Errorf("Snake scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(Record{GameID: "pong", Score: 5, Duration: time.Minute})
	store.SaveScore(Record{GameID: "pong", Score: 3, Duration: 30 * time.Second})
	mustSave(t, store, "life", 12)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}

	pong := stats["pong"]
	if pong.GamesCount != 2 || pong.HighScore != 5 || pong.TotalScore != 8 {
		t.Errorf("Unexpected pong stats: %+v", pong)
	}
	if pong.AvgScore != 4 {
		t.Errorf("AvgScore = %v, want 4", pong.AvgScore)
	}
	if pong.TotalTime != 90*time.Second {
		t.Errorf("TotalTime = %v, want 1m30s", pong.TotalTime)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
