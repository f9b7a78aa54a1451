package profile

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteRepository is the durable Repository backed by a SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*SQLiteRepository, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("profile: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: cannot connect to database: %w", err)
	}

	repo := &SQLiteRepository{db: db}

	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: migration failed: %w", err)
	}

	return repo, nil
}

// migrate creates the database schema if it doesn't exist.
func (r *SQLiteRepository) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			last_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_high_score ON users(high_score DESC);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			tier TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (username) REFERENCES users(username)
		);
		CREATE INDEX IF NOT EXISTS idx_matches_username ON matches(username, created_at DESC);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Lookup returns the profile for a username, or ErrNotFound.
func (r *SQLiteRepository) Lookup(username string) (*Profile, error) {
	var p Profile
	var createdAt, updatedAt any

	err := r.db.QueryRow(
		`SELECT username, password, high_score, last_score, created_at, updated_at
		 FROM users WHERE username = ?`,
		username,
	).Scan(&p.Username, &p.Password, &p.HighScore, &p.LastScore, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("profile: cannot query user: %w", err)
	}

	p.CreatedAt = parseDBTime(createdAt)
	p.UpdatedAt = parseDBTime(updatedAt)
	return &p, nil
}

// Create registers a new profile. Returns ErrExists if the username is taken.
func (r *SQLiteRepository) Create(username, password string) (*Profile, error) {
	if _, err := r.Lookup(username); err == nil {
		return nil, ErrExists
	} else if err != ErrNotFound {
		return nil, err
	}

	_, err := r.db.Exec(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, password,
	)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot create user: %w", err)
	}

	return r.Lookup(username)
}

// Authenticate verifies credentials and returns the profile.
func (r *SQLiteRepository) Authenticate(username, password string) (*Profile, error) {
	p, err := r.Lookup(username)
	if err != nil {
		return nil, err
	}
	if p.Password != password {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

// UpdateScore records a finished match: last_score is overwritten and
// high_score is max-merged, so it is never lowered.
func (r *SQLiteRepository) UpdateScore(username string, score int) error {
	res, err := r.db.Exec(
		`UPDATE users
		 SET last_score = ?,
		     high_score = MAX(high_score, ?),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE username = ?`,
		score, score, username,
	)
	if err != nil {
		return fmt.Errorf("profile: cannot update score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile: cannot check update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// TopProfiles returns profiles ordered by high score descending.
func (r *SQLiteRepository) TopProfiles(limit int) ([]Profile, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(
		`SELECT username, password, high_score, last_score, created_at, updated_at
		 FROM users
		 ORDER BY high_score DESC, username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot query top profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var createdAt, updatedAt any
		if err := rows.Scan(&p.Username, &p.Password, &p.HighScore, &p.LastScore, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("profile: cannot scan row: %w", err)
		}
		p.CreatedAt = parseDBTime(createdAt)
		p.UpdatedAt = parseDBTime(updatedAt)
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile: row iteration error: %w", err)
	}
	return out, nil
}

// SaveMatch appends a match to the user's history.
func (r *SQLiteRepository) SaveMatch(username, tier string, score int) error {
	_, err := r.db.Exec(
		"INSERT INTO matches (username, tier, score) VALUES (?, ?, ?)",
		username, tier, score,
	)
	if err != nil {
		return fmt.Errorf("profile: cannot save match: %w", err)
	}
	return nil
}

// RecentMatches returns the user's most recent matches, newest first.
func (r *SQLiteRepository) RecentMatches(username string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(
		`SELECT id, username, tier, score, created_at
		 FROM matches
		 WHERE username = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Username, &m.Tier, &m.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("profile: cannot scan row: %w", err)
		}
		m.CreatedAt = parseDBTime(createdAt)
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile: row iteration error: %w", err)
	}
	return out, nil
}

// parseDBTime handles the driver returning either time.Time or a string.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ Repository = (*SQLiteRepository)(nil)
