package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestCreateAndLookup(t *testing.T) {
	repo := openTestRepo(t)

	created, err := repo.Create("ripley", "nostromo")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.Username != "ripley" || created.HighScore != 0 || created.LastScore != 0 {
		t.Errorf("Create() returned %+v, expected fresh zero-score profile", created)
	}

	got, err := repo.Lookup("ripley")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if got.Password != "nostromo" {
		t.Errorf("Lookup() password = %q", got.Password)
	}

	if _, err := repo.Lookup("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(unknown) = %v, expected ErrNotFound", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.Create("ripley", "a"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := repo.Create("ripley", "b"); !errors.Is(err, ErrExists) {
		t.Errorf("duplicate Create() = %v, expected ErrExists", err)
	}

	// No mutation on the rejected attempt
	got, err := repo.Authenticate("ripley", "a")
	if err != nil || got == nil {
		t.Errorf("original credentials broken after duplicate attempt: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.Create("dallas", "secret"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if _, err := repo.Authenticate("dallas", "secret"); err != nil {
		t.Errorf("Authenticate() with good password failed: %v", err)
	}
	if _, err := repo.Authenticate("dallas", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() bad password = %v, expected ErrInvalidCredentials", err)
	}
	if _, err := repo.Authenticate("ghost", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Authenticate() unknown user = %v, expected ErrNotFound", err)
	}
}

func TestUpdateScoreMaxMerge(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.Create("kane", "pw"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	steps := []struct {
		score    int
		wantHigh int
		wantLast int
	}{
		{120, 120, 120},
		{80, 120, 80},   // High score never lowered
		{300, 300, 300}, // New best
		{0, 300, 0},     // Zero-score match still recorded as last
	}

	for _, s := range steps {
		if err := repo.UpdateScore("kane", s.score); err != nil {
			t.Fatalf("UpdateScore(%d) failed: %v", s.score, err)
		}
		got, err := repo.Lookup("kane")
		if err != nil {
			t.Fatalf("Lookup() failed: %v", err)
		}
		if got.HighScore != s.wantHigh || got.LastScore != s.wantLast {
			t.Errorf("after UpdateScore(%d): high=%d last=%d, expected high=%d last=%d",
				s.score, got.HighScore, got.LastScore, s.wantHigh, s.wantLast)
		}
	}

	if err := repo.UpdateScore("ghost", 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateScore(unknown) = %v, expected ErrNotFound", err)
	}
}

func TestTopProfilesOrdering(t *testing.T) {
	repo := openTestRepo(t)

	users := map[string]int{"ash": 50, "lambert": 200, "parker": 100}
	for name, score := range users {
		if _, err := repo.Create(name, "pw"); err != nil {
			t.Fatalf("Create(%s) failed: %v", name, err)
		}
		if err := repo.UpdateScore(name, score); err != nil {
			t.Fatalf("UpdateScore(%s) failed: %v", name, err)
		}
	}

	top, err := repo.TopProfiles(10)
	if err != nil {
		t.Fatalf("TopProfiles() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(top))
	}
	if top[0].Username != "lambert" || top[1].Username != "parker" || top[2].Username != "ash" {
		t.Errorf("wrong ordering: %s, %s, %s", top[0].Username, top[1].Username, top[2].Username)
	}

	top, err = repo.TopProfiles(2)
	if err != nil {
		t.Fatalf("TopProfiles(2) failed: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(top))
	}
}

func TestMatchHistory(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.Create("brett", "pw"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	for i, score := range []int{10, 20, 30} {
		tier := "medium"
		if i == 2 {
			tier = "hard"
		}
		if err := repo.SaveMatch("brett", tier, score); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := repo.RecentMatches("brett", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(recent))
	}
	// Newest first
	if recent[0].Score != 30 || recent[0].Tier != "hard" {
		t.Errorf("newest match = %+v, expected score 30 tier hard", recent[0])
	}
	if recent[1].Score != 20 {
		t.Errorf("second match score = %d, expected 20", recent[1].Score)
	}
}
