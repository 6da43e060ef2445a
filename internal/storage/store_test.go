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

func TestOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestOpenRunsMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("asteroids", 40)
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer reopened.Close()

	version, err := reopened.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schema version = %d, want %d", version, len(migrations))
	}
	if high, _ := reopened.HighScore("asteroids"); high != 40 {
		t.Errorf("score lost across reopen, high = %d", high)
	}
}

func TestFailedMigrationKeepsVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	saved := migrations
	t.Cleanup(func() { migrations = saved })
	migrations = append(append([]string(nil), saved...),
		`CREATE TABLE broken_step (id INTEGER PRIMARY KEY);
		INSERT INTO no_such_table VALUES (1);`)

	if _, err := Open(dbPath); err == nil {
		t.Fatal("Open() succeeded with a failing migration")
	}

	migrations = saved
	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	version, _ := reopened.SchemaVersion()
	if version != len(saved) {
		t.Errorf("schema version = %d, want %d", version, len(saved))
	}
	var n int
	err = reopened.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'broken_step'`).Scan(&n)
	if err != nil {
		t.Fatalf("sqlite_master query failed: %v", err)
	}
	if n != 0 {
		t.Error("failed step left its table behind")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/.asteroids/scores.db", filepath.Join(home, ".asteroids/scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"~other/scores.db", "~other/scores.db"},
		{"relative.db", "relative.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 500, 200, 400} {
		if _, err := store.SaveScore("asteroids", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("asteroids_waves", 900)

	top, err := store.TopScores("asteroids", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{500, 400, 200}
	if len(top) != len(want) {
		t.Fatalf("got %d scores, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("top[%d] = %d, want %d", i, top[i].Score, w)
		}
		if top[i].GameID != "asteroids" {
			t.Errorf("top[%d] leaked game %q", i, top[i].GameID)
		}
	}

	all, err := store.AllScores("asteroids")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d entries, want 5", len(all))
	}

	defaulted, _ := store.TopScores("asteroids", 0)
	if len(defaulted) != 5 {
		t.Errorf("TopScores(0) returned %d entries, want all 5", len(defaulted))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("asteroids"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v", high, err)
	}

	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveScore("asteroids", 200)

	if high, _ := store.HighScore("asteroids"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestClearScoresIsPerMode(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("asteroids", 100)
	store.SaveRound(RoundRecord{GameID: "asteroids", Outcome: OutcomeLost})
	store.SaveScore("asteroids_waves", 300)
	store.SaveRound(RoundRecord{GameID: "asteroids_waves", Outcome: OutcomeWon})

	if err := store.ClearScores("asteroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if s, _ := store.TopScores("asteroids", 10); len(s) != 0 {
		t.Errorf("classic scores survived clear: %v", s)
	}
	if r, _ := store.RecentRounds("asteroids", 10); len(r) != 0 {
		t.Errorf("classic rounds survived clear: %v", r)
	}
	if s, _ := store.TopScores("asteroids_waves", 10); len(s) != 1 {
		t.Error("waves scores were touched by clearing classic")
	}
	if r, _ := store.RecentRounds("asteroids_waves", 10); len(r) != 1 {
		t.Error("waves rounds were touched by clearing classic")
	}
}

func TestSaveRoundDefaults(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundRecord{
		GameID:    "asteroids",
		Asteroids: 30,
		Outcome:   OutcomeWon,
		Score:     1250,
		Wave:      1,
		Frames:    5400,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRound() returned an empty round ID")
	}

	got, err := store.RoundByID(id)
	if err != nil || got == nil {
		t.Fatalf("RoundByID() = %v, %v", got, err)
	}
	if got.SessionID != "local" {
		t.Errorf("session = %q, want local", got.SessionID)
	}
	if got.Outcome != OutcomeWon || got.Score != 1250 || got.Frames != 5400 || got.Asteroids != 30 {
		t.Errorf("round fields not preserved: %+v", got)
	}

	if _, err := store.SaveRound(RoundRecord{RoundID: id, GameID: "asteroids", Outcome: OutcomeLost}); err == nil {
		t.Error("duplicate round ID was accepted")
	}

	missing, err := store.RoundByID("no-such-round")
	if err != nil || missing != nil {
		t.Errorf("RoundByID(unknown) = %+v, %v", missing, err)
	}
}

func TestRecentRoundsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for wave := 1; wave <= 4; wave++ {
		if _, err := store.SaveRound(RoundRecord{
			SessionID: "ssh-1",
			GameID:    "asteroids_waves",
			Outcome:   OutcomeLost,
			Wave:      wave,
		}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	store.SaveRound(RoundRecord{GameID: "asteroids", Outcome: OutcomeQuit})

	rounds, err := store.RecentRounds("asteroids_waves", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, want 3", len(rounds))
	}
	if rounds[0].Wave != 4 || rounds[2].Wave != 2 {
		t.Errorf("rounds not newest first: %+v", rounds)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveRound(RoundRecord{GameID: "asteroids", Outcome: OutcomeWon, Wave: 1})
	store.SaveRound(RoundRecord{GameID: "asteroids", Outcome: OutcomeLost, Wave: 1})

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("average = %v, want 200", stats.AvgScore)
	}
	if stats.Wins != 1 || stats.BestWave != 1 {
		t.Errorf("unexpected round stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("asteroids_waves")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}
