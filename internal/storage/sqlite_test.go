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

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsProfile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.AddCoins(42); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if p.Coins != 42 {
		t.Errorf("Coins = %d after reopen, expected 42", p.Coins)
	}
}

func TestStoreDefaultProfile(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if p.Coins != 0 || p.MaxCompletedLevel != 0 {
		t.Errorf("fresh profile = %+v, expected zero progress", p)
	}
	if p.SkinID != "default" || p.TypeID != 1 || p.BackgroundID != "default" {
		t.Errorf("fresh profile cosmetics = %q/%d/%q", p.SkinID, p.TypeID, p.BackgroundID)
	}
}

func TestStoreSaveProfile(t *testing.T) {
	store := openTestStore(t)

	want := ProfileRecord{
		Coins:             120,
		MaxCompletedLevel: 4,
		LevelsCompleted:   6,
		CoinsCollected:    85,
		PerfectLevels:     2,
		TournamentsPlayed: 1,
		SkinID:            "golden",
		TypeID:            2,
		BackgroundID:      "night",
	}
	if err := store.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	got.UpdatedAt = time.Time{}
	if got != want {
		t.Errorf("LoadProfile() = %+v, expected %+v", got, want)
	}
}

func TestStoreCoins(t *testing.T) {
	store := openTestStore(t)

	balance, err := store.AddCoins(150)
	if err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	if balance != 150 {
		t.Errorf("balance = %d, expected 150", balance)
	}

	ok, err := store.SpendCoins(100)
	if err != nil {
		t.Fatalf("SpendCoins() failed: %v", err)
	}
	if !ok {
		t.Error("SpendCoins(100) refused with 150 coins")
	}

	ok, err = store.SpendCoins(100)
	if err != nil {
		t.Fatalf("SpendCoins() failed: %v", err)
	}
	if ok {
		t.Error("SpendCoins(100) succeeded with 50 coins")
	}

	balance, err = store.AddCoins(-500)
	if err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, expected it to stop at 0", balance)
	}
}

func TestStoreSaveAndRetrieveResults(t *testing.T) {
	store := openTestStore(t)

	results := []ResultRecord{
		{Mode: ModeTournament, Level: 1, Outcome: "tournament", Score: 100, Duration: 30 * time.Second},
		{Mode: ModeTournament, Level: 1, Outcome: "tournament", Score: 50, Duration: 12500 * time.Millisecond},
		{Mode: ModeTournament, Level: 1, Outcome: "tournament", Score: 200, Duration: 30 * time.Second, Perfect: true},
		{Mode: ModeClassic, Level: 3, Outcome: "victory", Score: 500, CoinsCollected: 100, Accelerations: 4},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopScores(ModeTournament, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("scores not sorted descending: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if !top[0].Perfect {
		t.Error("Perfect flag lost")
	}
	if top[2].Duration != 12500*time.Millisecond {
		t.Errorf("Duration = %v, expected 12.5s", top[2].Duration)
	}

	classic, err := store.TopScores(ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Fatalf("Expected 1 classic result, got %d", len(classic))
	}
	c := classic[0]
	if c.Level != 3 || c.Outcome != "victory" || c.CoinsCollected != 100 || c.Accelerations != 4 {
		t.Errorf("classic result = %+v", c)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveResult(ResultRecord{Mode: ModeTournament, Outcome: "tournament", Score: i * 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopScores(ModeTournament, 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 results, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 30, 20} {
		if _, err := store.SaveResult(ResultRecord{Mode: ModeClassic, Outcome: "defeat", Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}
	if recent[0].Score != 20 || recent[1].Score != 30 {
		t.Errorf("recent order = %d, %d, expected newest first", recent[0].Score, recent[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(ModeTournament)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no results, got %d", high)
	}

	for _, score := range []int{100, 500, 250} {
		if _, err := store.SaveResult(ResultRecord{Mode: ModeTournament, Outcome: "tournament", Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	high, err = store.HighScore(ModeTournament)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultRecord{Mode: ModeTournament, Outcome: "tournament", Score: 100})
	store.SaveResult(ResultRecord{Mode: ModeClassic, Outcome: "victory", Score: 100})

	if err := store.ClearResults(ModeTournament); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopScores(ModeTournament, 10)
	if len(top) != 0 {
		t.Errorf("Expected 0 tournament results after clear, got %d", len(top))
	}
	classic, _ := store.TopScores(ModeClassic, 10)
	if len(classic) != 1 {
		t.Errorf("Expected classic results untouched, got %d", len(classic))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ModeStatsFor(ModeClassic)
	if err != nil {
		t.Fatalf("ModeStatsFor() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{10, 20, 30} {
		store.SaveResult(ResultRecord{Mode: ModeClassic, Outcome: "victory", Score: score})
	}

	stats, err := store.ModeStatsFor(ModeClassic)
	if err != nil {
		t.Fatalf("ModeStatsFor() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}

func TestStoreAchievements(t *testing.T) {
	store := openTestStore(t)

	fresh, err := store.UnlockAchievement("first_flight")
	if err != nil {
		t.Fatalf("UnlockAchievement() failed: %v", err)
	}
	if !fresh {
		t.Error("first unlock should be new")
	}

	fresh, err = store.UnlockAchievement("first_flight")
	if err != nil {
		t.Fatalf("UnlockAchievement() failed: %v", err)
	}
	if fresh {
		t.Error("second unlock should not be new")
	}

	store.UnlockAchievement("perfect_flight")

	list, err := store.Achievements()
	if err != nil {
		t.Fatalf("Achievements() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 achievements, got %d", len(list))
	}
	ids := map[string]bool{list[0].ID: true, list[1].ID: true}
	if !ids["first_flight"] || !ids["perfect_flight"] {
		t.Errorf("achievements = %v", list)
	}
}
