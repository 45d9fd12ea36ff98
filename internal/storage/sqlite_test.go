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

func TestStoreSeedsDefaults(t *testing.T) {
	store := openTestStore(t)

	if store.Pref(PrefInitialized, "") != "1" {
		t.Error("initialized marker should be seeded")
	}
	if got := store.Pref(PrefUsername, ""); got != "player" {
		t.Errorf("default username = %q, expected %q", got, "player")
	}
	if !store.BoolPref(PrefAdsEnabled, false) {
		t.Error("ads should default to enabled")
	}
	if store.HighScore() != 0 {
		t.Errorf("fresh high score = %d, expected 0", store.HighScore())
	}
}

func TestStoreSaveRunOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun("alex", score, score/100+1); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("runs not sorted descending: %v", runs)
	}
	if runs[0].Level != 3 {
		t.Errorf("level not persisted, got %d", runs[0].Level)
	}
}

func TestStoreLeaderboardCappedAtTen(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveRun("alex", i*10, 1); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != LeaderboardSize {
		t.Fatalf("leaderboard should be capped at %d, got %d", LeaderboardSize, len(runs))
	}

	// The ten highest (60..150) survive, in descending order.
	for i, e := range runs {
		want := 150 - i*10
		if e.Score != want {
			t.Errorf("rank %d score = %d, expected %d", i+1, e.Score, want)
		}
	}
}

func TestStoreTieBreakIsStable(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun("alex", 100, 2)
	second, _ := store.SaveRun("kim", 100, 2)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Error("equal scores should keep insertion order")
	}
}

func TestStoreRenameUser(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alex", 100, 2)
	store.SaveRun("alex", 50, 1)
	store.SaveRun("kim", 80, 1)

	n, err := store.RenameUser("alex", "sasha")
	if err != nil {
		t.Fatalf("RenameUser() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 renamed rows, got %d", n)
	}

	runs, _ := store.TopRuns(10)
	for _, e := range runs {
		if e.Username == "alex" {
			t.Error("old username should be gone")
		}
	}
	if runs[0].Username != "sasha" {
		t.Errorf("top entry username = %q, expected %q", runs[0].Username, "sasha")
	}
	if runs[1].Username != "kim" {
		t.Errorf("unrelated entry renamed: %q", runs[1].Username)
	}
}

func TestStoreHighScoreUpdates(t *testing.T) {
	store := openTestStore(t)

	record, err := store.UpdateHighScore(45)
	if err != nil {
		t.Fatalf("UpdateHighScore() failed: %v", err)
	}
	if !record {
		t.Error("45 over 0 should be a new record")
	}
	if store.HighScore() != 45 {
		t.Errorf("HighScore() = %d, expected 45", store.HighScore())
	}

	record, err = store.UpdateHighScore(30)
	if err != nil {
		t.Fatalf("UpdateHighScore() failed: %v", err)
	}
	if record {
		t.Error("lower score should not replace the record")
	}
	if store.HighScore() != 45 {
		t.Errorf("HighScore() = %d, expected 45", store.HighScore())
	}
}

func TestStorePrefsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetPref(PrefUsername, "kim"); err != nil {
		t.Fatalf("SetPref() failed: %v", err)
	}
	if got := store.Pref(PrefUsername, ""); got != "kim" {
		t.Errorf("Pref() = %q, expected %q", got, "kim")
	}

	if err := store.SetBoolPref(PrefAdsEnabled, false); err != nil {
		t.Fatalf("SetBoolPref() failed: %v", err)
	}
	if store.BoolPref(PrefAdsEnabled, true) {
		t.Error("ads pref should read back false")
	}

	// Unknown keys fall back to the default
	if got := store.Pref("no_such_key", "fallback"); got != "fallback" {
		t.Errorf("missing pref should fall back, got %q", got)
	}
	if got := store.IntPref("no_such_key", 7); got != 7 {
		t.Errorf("missing int pref should fall back, got %d", got)
	}
}

func TestStoreCounters(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		n, err := store.IncrementCounter(PrefGamesPlayed)
		if err != nil {
			t.Fatalf("IncrementCounter() failed: %v", err)
		}
		if n != i {
			t.Errorf("counter = %d, expected %d", n, i)
		}
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alex", 100, 2)
	store.SaveRun("alex", 50, 1)
	store.UpdateHighScore(100)
	store.IncrementCounter(PrefGamesPlayed)
	store.IncrementCounter(PrefGamesPlayed)
	store.IncrementCounter(PrefAdsViewed)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, expected 2", stats.GamesPlayed)
	}
	if stats.HighScore != 100 {
		t.Errorf("HighScore = %d, expected 100", stats.HighScore)
	}
	if stats.AvgScore != 75 {
		t.Errorf("AvgScore = %f, expected 75", stats.AvgScore)
	}
	if stats.AdsViewed != 1 {
		t.Errorf("AdsViewed = %d, expected 1", stats.AdsViewed)
	}
}
