// Package profile provides persistent user profiles and per-match score
// history for the exodus shooter. The simulation core depends only on the
// Repository interface; SQLite and in-memory implementations are provided.
package profile

import (
	"errors"
	"time"
)

// Sentinel errors returned by Repository implementations.
var (
	// ErrNotFound is returned when no profile exists for a username.
	ErrNotFound = errors.New("profile: not found")
	// ErrExists is returned by Create when the username is already taken.
	ErrExists = errors.New("profile: username already exists")
	// ErrInvalidCredentials is returned by Authenticate on a bad password.
	ErrInvalidCredentials = errors.New("profile: invalid credentials")
)

// Profile is a persistent user record keyed by username.
type Profile struct {
	Username  string
	Password  string // Opaque string, compared by equality
	HighScore int    // Never lowered by an update
	LastScore int    // Most recent match's final score
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchRecord is one finished match in a user's history.
type MatchRecord struct {
	ID        int64
	Username  string
	Tier      string
	Score     int
	CreatedAt time.Time
}

// Repository is the persistence contract consumed by the game core.
// The core calls UpdateScore exactly once per completed match, at the
// transition into game over, never mid-match.
type Repository interface {
	// Lookup returns the profile for a username, or ErrNotFound.
	Lookup(username string) (*Profile, error)

	// Create registers a new profile. Returns ErrExists if the username
	// is taken.
	Create(username, password string) (*Profile, error)

	// Authenticate verifies credentials and returns the profile.
	// Returns ErrNotFound for unknown users and ErrInvalidCredentials for
	// a wrong password.
	Authenticate(username, password string) (*Profile, error)

	// UpdateScore records a finished match: last_score is overwritten,
	// high_score only ever increases. Returns ErrNotFound for unknown users.
	UpdateScore(username string, score int) error

	// TopProfiles returns profiles ordered by high score descending.
	TopProfiles(limit int) ([]Profile, error)

	// SaveMatch appends a match to the user's history.
	SaveMatch(username, tier string, score int) error

	// RecentMatches returns the user's most recent matches, newest first.
	RecentMatches(username string, limit int) ([]MatchRecord, error)

	// Close releases any underlying resources.
	Close() error
}
