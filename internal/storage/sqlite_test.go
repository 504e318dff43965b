package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("colorrush", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("colorrush", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("colorrush", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("colorrush_timed", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for campaign mode
	scores, err := store.TopScores("colorrush", 10)
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

	// Retrieve top scores for timed mode
	timedScores, err := store.TopScores("colorrush_timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(timedScores) != 1 {
		t.Errorf("Expected 1 timed score, got %d", len(timedScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("colorrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("colorrush", 100)
	store.SaveScore("colorrush", 300)
	store.SaveScore("colorrush", 200)

	high, err = store.HighScore("colorrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("colorrush", 100)
	store.SaveScore("colorrush", 200)
	store.SaveScore("colorrush_timed", 300)

	// Clear only campaign scores
	err = store.ClearScores("colorrush")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("colorrush", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Timed scores should remain
	timedScores, _ := store.TopScores("colorrush_timed", 10)
	if len(timedScores) != 1 {
		t.Errorf("Timed scores should not be affected by clearing campaign scores")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreLevelResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Two attempts on level 1, one on level 3
	if _, err := store.SaveLevelResult(LevelResult{LevelID: 1, Score: 600, MovesUsed: 18, Cleared: true}); err != nil {
		t.Fatalf("SaveLevelResult() failed: %v", err)
	}
	if _, err := store.SaveLevelResult(LevelResult{LevelID: 1, Score: 450, MovesUsed: 20, Cleared: false}); err != nil {
		t.Fatalf("SaveLevelResult() failed: %v", err)
	}
	if _, err := store.SaveLevelResult(LevelResult{LevelID: 3, Score: 1700, MovesUsed: 21, Cleared: true}); err != nil {
		t.Fatalf("SaveLevelResult() failed: %v", err)
	}

	results, err := store.LevelResults(1, 10)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 attempts for level 1, got %d", len(results))
	}
	if results[0].Score != 600 || !results[0].Cleared {
		t.Errorf("Best attempt should come first: %+v", results[0])
	}

	best, err := store.BestLevelResults()
	if err != nil {
		t.Fatalf("BestLevelResults() failed: %v", err)
	}
	if len(best) != 2 {
		t.Errorf("Expected best results for 2 levels, got %d", len(best))
	}
	if best[1].Score != 600 {
		t.Errorf("Best level 1 score = %d, want 600", best[1].Score)
	}
}

func TestStoreHighestClearedLevel(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No attempts yet
	level, err := store.HighestClearedLevel()
	if err != nil {
		t.Fatalf("HighestClearedLevel() failed: %v", err)
	}
	if level != 0 {
		t.Errorf("Expected 0 with no attempts, got %d", level)
	}

	store.SaveLevelResult(LevelResult{LevelID: 1, Score: 600, Cleared: true})
	store.SaveLevelResult(LevelResult{LevelID: 2, Score: 1100, Cleared: true})
	store.SaveLevelResult(LevelResult{LevelID: 3, Score: 900, Cleared: false})

	level, err = store.HighestClearedLevel()
	if err != nil {
		t.Fatalf("HighestClearedLevel() failed: %v", err)
	}
	if level != 2 {
		t.Errorf("Expected highest cleared level 2, got %d", level)
	}
}
