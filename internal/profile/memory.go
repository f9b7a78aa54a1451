package profile

import (
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository. It backs tests and the
// degraded mode entered when the SQLite store cannot be opened; data does
// not survive the process.
type MemoryRepository struct {
	mu      sync.Mutex
	users   map[string]*Profile
	matches []MatchRecord
	nextID  int64
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[string]*Profile),
		nextID: 1,
	}
}

// Lookup returns the profile for a username, or ErrNotFound.
func (r *MemoryRepository) Lookup(username string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Create registers a new profile.
func (r *MemoryRepository) Create(username, password string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return nil, ErrExists
	}

	now := time.Now()
	p := &Profile{
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[username] = p

	cp := *p
	return &cp, nil
}

// Authenticate verifies credentials and returns the profile.
func (r *MemoryRepository) Authenticate(username, password string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Password != password {
		return nil, ErrInvalidCredentials
	}
	cp := *p
	return &cp, nil
}

// UpdateScore records a finished match for the user.
func (r *MemoryRepository) UpdateScore(username string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[username]
	if !ok {
		return ErrNotFound
	}

	p.LastScore = score
	if score > p.HighScore {
		p.HighScore = score
	}
	p.UpdatedAt = time.Now()
	return nil
}

// TopProfiles returns profiles ordered by high score descending.
func (r *MemoryRepository) TopProfiles(limit int) ([]Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}

	out := make([]Profile, 0, len(r.users))
	for _, p := range r.users {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HighScore != out[j].HighScore {
			return out[i].HighScore > out[j].HighScore
		}
		return out[i].Username < out[j].Username
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SaveMatch appends a match to the user's history.
func (r *MemoryRepository) SaveMatch(username, tier string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := MatchRecord{
		ID:        r.nextID,
		Username:  username,
		Tier:      tier,
		Score:     score,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.matches = append(r.matches, rec)
	return nil
}

// RecentMatches returns the user's most recent matches, newest first.
func (r *MemoryRepository) RecentMatches(username string, limit int) ([]MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	var out []MatchRecord
	for i := len(r.matches) - 1; i >= 0 && len(out) < limit; i-- {
		if r.matches[i].Username == username {
			out = append(out, r.matches[i])
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory repository.
func (r *MemoryRepository) Close() error {
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
