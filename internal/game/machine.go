package game

import (
	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/profile"
)

// State identifies the active phase of a session.
type State int

const (
	// StateStart shows the difficulty menu and accepts only selection input.
	StateStart State = iota
	// StatePlaying runs the full simulation tick.
	StatePlaying
	// StateGameOver shows the terminal message and accepts only restart input.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session is the game state machine. It owns at most one active match,
// dispatches input to the phase that accepts it and performs the single
// persistence write-through when a match ends. Input outside the active
// state's accepted set is a no-op, never an error.
type Session struct {
	cfg     config.MatchConfig
	runtime core.RuntimeConfig
	repo    profile.Repository // nil when running without a store

	state     State
	match     *Match
	tier      config.Tier
	paused    bool
	highScore int
	username  string
	matchSeed int64
}

// NewSession creates a session in the start state. username may be empty for
// a guest session, in which case game-over persistence is skipped. The
// stored high score, if any, is loaded once for the HUD.
func NewSession(cfg config.MatchConfig, runtime core.RuntimeConfig, repo profile.Repository, username string) *Session {
	s := &Session{
		cfg:       cfg,
		runtime:   runtime,
		repo:      repo,
		username:  username,
		state:     StateStart,
		matchSeed: runtime.Seed,
	}

	if repo != nil && username != "" {
		if p, err := repo.Lookup(username); err == nil {
			s.highScore = p.HighScore
		}
	}

	return s
}

// State returns the active phase.
func (s *Session) State() State {
	return s.state
}

// Step advances the session by one tick. now is the monotonic clock in
// milliseconds; the input frame is the snapshot for this tick.
func (s *Session) Step(in core.InputFrame, now int64) {
	switch s.state {
	case StateStart:
		s.stepStart(in, now)
	case StatePlaying:
		s.stepPlaying(in, now)
	case StateGameOver:
		s.stepGameOver(in)
	}
}

// stepStart accepts only a difficulty selection.
func (s *Session) stepStart(in core.InputFrame, now int64) {
	var tier config.Tier
	switch {
	case in.Has(core.ActionSelectEasy):
		tier = config.TierEasy
	case in.Has(core.ActionSelectMed):
		tier = config.TierMedium
	case in.Has(core.ActionSelectHard):
		tier = config.TierHard
	default:
		return
	}
	s.StartMatch(tier, now)
}

// StartMatch transitions Start -> Playing: the tier profile is looked up,
// the adversary population is seeded, and all counters reset.
func (s *Session) StartMatch(tier config.Tier, now int64) {
	if s.state == StatePlaying {
		return
	}
	s.tier = tier
	s.paused = false
	s.match = NewMatch(s.cfg, tier, s.matchSeed, now)
	// Vary the seed between matches while keeping the session reproducible
	s.matchSeed++
	s.state = StatePlaying
}

// stepPlaying runs one simulation tick and handles the terminal transition.
func (s *Session) stepPlaying(in core.InputFrame, now int64) {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.match.Step(in, now)

	if s.match.Over() {
		s.persistResult()
		s.state = StateGameOver
	}
}

// persistResult writes the finished match through to the profile store.
// Called exactly once per match, before the GameOver transition completes.
// Guest sessions and store failures degrade to HUD-only tracking.
func (s *Session) persistResult() {
	score := s.match.Score()
	if score > s.highScore {
		s.highScore = score
	}

	if s.repo == nil || s.username == "" {
		return
	}
	if err := s.repo.UpdateScore(s.username, score); err != nil {
		return
	}
	//nolint:errcheck // History is best-effort; the score row is already durable
	s.repo.SaveMatch(s.username, string(s.tier), score)
}

// stepGameOver accepts only the restart input, which clears the finished
// match and returns to the start menu.
func (s *Session) stepGameOver(in core.InputFrame) {
	if !in.Has(core.ActionRestart) {
		return
	}
	s.match = nil
	s.paused = false
	s.state = StateStart
}
