package game

import (
	"testing"

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/profile"
)

func newTestSession(t *testing.T, username string) (*Session, *profile.MemoryRepository) {
	t.Helper()
	repo := profile.NewMemoryRepository()
	if username != "" {
		if _, err := repo.Create(username, "pw"); err != nil {
			t.Fatal(err)
		}
	}
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	return NewSession(config.Default(), runtime, repo, username), repo
}

func TestStartTransitionSeedsPopulation(t *testing.T) {
	s, _ := newTestSession(t, "")

	if s.State() != StateStart {
		t.Fatalf("initial state = %v, expected start", s.State())
	}

	s.Step(frame(core.ActionSelectMed), 0)
	if s.State() != StatePlaying {
		t.Fatalf("state after selection = %v, expected playing", s.State())
	}

	snap := s.Snapshot()
	want := config.Default().Difficulty.Profile(config.TierMedium).Count
	if len(snap.Adversaries) != want {
		t.Errorf("population = %d, expected %d", len(snap.Adversaries), want)
	}
	if snap.Score != 0 || snap.Lives != 3 {
		t.Errorf("fresh match HUD = score %d lives %d", snap.Score, snap.Lives)
	}
	if snap.Tier != config.TierMedium {
		t.Errorf("tier = %q, expected medium", snap.Tier)
	}
}

func TestInputOutsideStateIsNoOp(t *testing.T) {
	s, _ := newTestSession(t, "")

	// Playing-only input in the start state does nothing
	s.Step(frame(core.ActionFire, core.ActionLeft, core.ActionRestart), 0)
	if s.State() != StateStart {
		t.Fatalf("start state reacted to gameplay input")
	}

	s.Step(frame(core.ActionSelectEasy), 0)
	if s.State() != StatePlaying {
		t.Fatal("selection ignored")
	}

	// Selection input mid-match does not restart or retier the match
	tierBefore := s.Snapshot().Tier
	s.Step(frame(core.ActionSelectHard), tickMS)
	if s.State() != StatePlaying || s.Snapshot().Tier != tierBefore {
		t.Error("difficulty selection accepted mid-match")
	}
}

func TestGameOverPersistsScore(t *testing.T) {
	s, repo := newTestSession(t, "ripley")
	s.Step(frame(core.ActionSelectEasy), 0)

	// Force a decisive state: one life, direct damage, player overlapped
	s.match.cfg.Rules.Damage = config.DamageLives
	s.match.lives = 1
	s.match.score = 777
	s.match.adversaries[0] = Adversary{X: s.match.player.X, Y: s.match.player.Y, VX: 0, W: 60, H: 60}

	s.Step(frame(), 100)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", s.State())
	}
	p, err := repo.Lookup("ripley")
	if err != nil {
		t.Fatal(err)
	}
	if p.HighScore != 777 || p.LastScore != 777 {
		t.Errorf("persisted high=%d last=%d, expected 777/777", p.HighScore, p.LastScore)
	}

	recent, err := repo.RecentMatches("ripley", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Tier != "easy" || recent[0].Score != 777 {
		t.Errorf("match history = %+v", recent)
	}
}

func TestGameOverWriteThroughHappensOnce(t *testing.T) {
	repo := profile.NewMemoryRepository()
	if _, err := repo.Create("kane", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateScore("kane", 500); err != nil {
		t.Fatal(err)
	}

	s2 := NewSession(config.Default(), core.RuntimeConfig{Seed: 1}, repo, "kane")
	if s2.highScore != 500 {
		t.Errorf("session did not load stored high score, got %d", s2.highScore)
	}

	s2.Step(frame(core.ActionSelectEasy), 0)
	s2.match.cfg.Rules.Damage = config.DamageLives
	s2.match.lives = 1
	s2.match.score = 300 // Below the stored best
	s2.match.adversaries[0] = Adversary{X: s2.match.player.X, Y: s2.match.player.Y, VX: 0, W: 60, H: 60}
	s2.Step(frame(), 100)

	p, _ := repo.Lookup("kane")
	if p.HighScore != 500 {
		t.Errorf("high score lowered to %d", p.HighScore)
	}
	if p.LastScore != 300 {
		t.Errorf("last score = %d, expected 300", p.LastScore)
	}

	// Further game-over ticks write nothing more
	for i := 0; i < 5; i++ {
		s2.Step(frame(), 200+int64(i)*tickMS)
	}
	recent, _ := repo.RecentMatches("kane", 10)
	if len(recent) != 1 {
		t.Errorf("write-through repeated: %d history rows", len(recent))
	}
}

func TestGuestSessionSkipsPersistence(t *testing.T) {
	s, repo := newTestSession(t, "")

	s.Step(frame(core.ActionSelectEasy), 0)
	s.match.cfg.Rules.Damage = config.DamageLives
	s.match.lives = 1
	s.match.score = 42
	s.match.adversaries[0] = Adversary{X: s.match.player.X, Y: s.match.player.Y, VX: 0, W: 60, H: 60}
	s.Step(frame(), 100)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v", s.State())
	}
	// The session HUD still tracks the best score locally
	if s.Snapshot().HighScore != 42 {
		t.Errorf("guest HUD high score = %d", s.Snapshot().HighScore)
	}
	top, _ := repo.TopProfiles(10)
	if len(top) != 0 {
		t.Errorf("guest session wrote %d profiles", len(top))
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.Step(frame(core.ActionSelectHard), 0)

	// Play a little, then force game over
	now := int64(0)
	for i := 0; i < 10; i++ {
		now += tickMS
		s.Step(frame(core.ActionFire, core.ActionLeft), now)
	}
	s.match.lives = 0
	s.match.over = true
	s.Step(frame(), now+tickMS)
	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", s.State())
	}

	// Only restart is accepted here
	s.Step(frame(core.ActionFire, core.ActionSelectEasy), now+2*tickMS)
	if s.State() != StateGameOver {
		t.Fatal("gameover state reacted to non-restart input")
	}

	s.Step(frame(core.ActionRestart), now+3*tickMS)
	if s.State() != StateStart {
		t.Fatalf("state after restart = %v, expected start", s.State())
	}

	snap := s.Snapshot()
	if snap.Score != 0 || snap.Lives != 3 {
		t.Errorf("restart HUD = score %d lives %d, expected 0/3", snap.Score, snap.Lives)
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("projectiles survived restart: %d", len(snap.Projectiles))
	}

	// A new match starts at the spawn point
	s.Step(frame(core.ActionSelectEasy), now+4*tickMS)
	cfg := config.Default()
	snap = s.Snapshot()
	wantX := (cfg.Area.Width - cfg.Player.Width) / 2
	wantY := cfg.Area.Height - cfg.Player.SpawnBottom
	if snap.Player.X != wantX || snap.Player.Y != wantY {
		t.Errorf("player spawn = (%g,%g), expected (%g,%g)", snap.Player.X, snap.Player.Y, wantX, wantY)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.Step(frame(core.ActionSelectMed), 0)

	s.Step(frame(core.ActionPause), tickMS)
	before := s.Snapshot()

	for i := int64(2); i < 10; i++ {
		s.Step(frame(core.ActionFire, core.ActionLeft), i*tickMS)
	}
	after := s.Snapshot()

	if !after.Paused {
		t.Fatal("session not paused")
	}
	if after.Player != before.Player || len(after.Projectiles) != 0 {
		t.Error("simulation advanced while paused")
	}

	s.Step(frame(core.ActionPause), 11*tickMS)
	if s.Snapshot().Paused {
		t.Error("pause did not toggle off")
	}
}
