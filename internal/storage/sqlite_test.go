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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 12, 7} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Score != 7 {
		t.Errorf("Expected most recent run first (7), got %d", recent[0].Score)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Score != 12 || top[1].Score != 7 || top[2].Score != 3 {
		t.Errorf("TopRuns not in descending order: %v", top)
	}
}

func TestStoreRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun((i + 1) * 10)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(10)
	store.SaveRun(30)
	store.SaveRun(20)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(10)
	store.SaveRun(20)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreBestScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 on fresh store, got %d", best)
	}

	if err := store.SetBestScore(15); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	// A lower value must not overwrite
	if err := store.SetBestScore(4); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	best, _ = store.BestScore()
	if best != 15 {
		t.Errorf("Expected best of 15, got %d", best)
	}

	store.SetBestScore(40)
	best, _ = store.BestScore()
	if best != 40 {
		t.Errorf("Expected best of 40, got %d", best)
	}
}

func TestStoreBestScoreMalformed(t *testing.T) {
	store := openTestStore(t)

	// Corrupt the stored value directly; reads must fall back to 0.
	if err := store.putSetting(keyBestScore, "not-a-number"); err != nil {
		t.Fatalf("putSetting() failed: %v", err)
	}
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Malformed best should read as 0, got %d", best)
	}

	store.putSetting(keyBestScore, "-5")
	best, _ = store.BestScore()
	if best != 0 {
		t.Errorf("Negative best should read as 0, got %d", best)
	}
}

func TestStoreSkinSetting(t *testing.T) {
	store := openTestStore(t)

	skin, err := store.Skin()
	if err != nil {
		t.Fatalf("Skin() failed: %v", err)
	}
	if skin != "" {
		t.Errorf("Expected empty skin on fresh store, got %q", skin)
	}

	if err := store.SetSkin("mystery"); err != nil {
		t.Fatalf("SetSkin() failed: %v", err)
	}
	skin, _ = store.Skin()
	if skin != "mystery" {
		t.Errorf("Expected skin %q, got %q", "mystery", skin)
	}

	// Overwrite works
	store.SetSkin("gold")
	skin, _ = store.Skin()
	if skin != "gold" {
		t.Errorf("Expected skin %q, got %q", "gold", skin)
	}
}

func TestStoreMutedSetting(t *testing.T) {
	store := openTestStore(t)

	muted, err := store.Muted()
	if err != nil {
		t.Fatalf("Muted() failed: %v", err)
	}
	if muted {
		t.Error("Fresh store should read unmuted")
	}

	store.SetMuted(true)
	if muted, _ = store.Muted(); !muted {
		t.Error("Expected muted after SetMuted(true)")
	}

	store.SetMuted(false)
	if muted, _ = store.Muted(); muted {
		t.Error("Expected unmuted after SetMuted(false)")
	}

	// Garbage values read as unmuted
	store.putSetting(keyMuted, "banana")
	if muted, _ = store.Muted(); muted {
		t.Error("Malformed mute flag should read as false")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(9)
	store.SetBestScore(9)
	store.SetSkin("blue")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 9 {
		t.Errorf("High score lost across reopen: %d", high)
	}
	if best, _ := store.BestScore(); best != 9 {
		t.Errorf("Best score lost across reopen: %d", best)
	}
	if skin, _ := store.Skin(); skin != "blue" {
		t.Errorf("Skin lost across reopen: %q", skin)
	}
}
