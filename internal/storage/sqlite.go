package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"braintrainer/internal/badges"
	"braintrainer/internal/game"
	"braintrainer/internal/unlocks"
)

// SQLiteRepository is the local single-user store: a brain-training profile
// lives on one device, so a file database is the default.
type SQLiteRepository struct {
	conn *sql.DB
}

func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	repo := &SQLiteRepository{conn: conn}
	if err := repo.createTables(); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("opened sqlite database", "path", path)
	return repo, nil
}

func (r *SQLiteRepository) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		avatar_emoji TEXT NOT NULL DEFAULT '🧠',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		game_type TEXT NOT NULL,
		score INTEGER NOT NULL,
		max_score INTEGER NOT NULL,
		level INTEGER NOT NULL,
		completed_at DATETIME NOT NULL,
		duration_seconds INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_profile ON sessions(profile_id);

	CREATE TABLE IF NOT EXISTS badges (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		badge_type TEXT NOT NULL,
		unlocked_at DATETIME NOT NULL,
		UNIQUE (profile_id, badge_type)
	);

	CREATE TABLE IF NOT EXISTS difficulty_unlocks (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		game_type TEXT NOT NULL,
		level INTEGER NOT NULL,
		unlocked_at DATETIME NOT NULL,
		UNIQUE (profile_id, game_type, level)
	);
	`
	if _, err := r.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CreateProfile(p Profile) error {
	_, err := r.conn.Exec(`
		INSERT INTO profiles (id, name, avatar_emoji, created_at)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Name, p.AvatarEmoji, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Profile(id string) (*Profile, error) {
	var p Profile
	err := r.conn.QueryRow(`
		SELECT id, name, avatar_emoji, created_at FROM profiles WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.AvatarEmoji, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Profiles() ([]Profile, error) {
	rows, err := r.conn.Query(`
		SELECT id, name, avatar_emoji, created_at FROM profiles ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarEmoji, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteProfile(id string) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting delete: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM sessions WHERE profile_id = ?`,
		`DELETE FROM badges WHERE profile_id = ?`,
		`DELETE FROM difficulty_unlocks WHERE profile_id = ?`,
		`DELETE FROM profiles WHERE id = ?`,
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("deleting profile: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) SaveSession(profileID string, s game.Session) error {
	_, err := r.conn.Exec(`
		INSERT INTO sessions (id, profile_id, game_type, score, max_score, level, completed_at, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, profileID, string(s.GameType), s.Score, s.MaxScore, s.Level, s.CompletedAt, s.DurationSeconds)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Sessions(profileID string) ([]game.Session, error) {
	rows, err := r.conn.Query(`
		SELECT id, game_type, score, max_score, level, completed_at, duration_seconds
		FROM sessions
		WHERE profile_id = ?
		ORDER BY completed_at
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("getting sessions: %w", err)
	}
	defer rows.Close()

	var out []game.Session
	for rows.Next() {
		var s game.Session
		var gt string
		if err := rows.Scan(&s.ID, &gt, &s.Score, &s.MaxScore, &s.Level, &s.CompletedAt, &s.DurationSeconds); err != nil {
			return nil, err
		}
		s.GameType = game.Type(gt)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Badges(profileID string) ([]badges.Badge, error) {
	rows, err := r.conn.Query(`
		SELECT id, badge_type, unlocked_at FROM badges
		WHERE profile_id = ?
		ORDER BY unlocked_at
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("getting badges: %w", err)
	}
	defer rows.Close()

	var out []badges.Badge
	for rows.Next() {
		var b badges.Badge
		var bt string
		if err := rows.Scan(&b.ID, &bt, &b.UnlockedAt); err != nil {
			return nil, err
		}
		b.Type = badges.Type(bt)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AddBadge(profileID string, b badges.Badge) error {
	_, err := r.conn.Exec(`
		INSERT OR IGNORE INTO badges (id, profile_id, badge_type, unlocked_at)
		VALUES (?, ?, ?, ?)
	`, b.ID, profileID, string(b.Type), b.UnlockedAt)
	if err != nil {
		return fmt.Errorf("adding badge: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Unlocks(profileID string) ([]unlocks.Unlock, error) {
	rows, err := r.conn.Query(`
		SELECT id, game_type, level, unlocked_at FROM difficulty_unlocks
		WHERE profile_id = ?
		ORDER BY unlocked_at
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("getting unlocks: %w", err)
	}
	defer rows.Close()

	var out []unlocks.Unlock
	for rows.Next() {
		var u unlocks.Unlock
		var gt string
		if err := rows.Scan(&u.ID, &gt, &u.Level, &u.UnlockedAt); err != nil {
			return nil, err
		}
		u.GameType = game.Type(gt)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AddUnlock(profileID string, u unlocks.Unlock) error {
	_, err := r.conn.Exec(`
		INSERT OR IGNORE INTO difficulty_unlocks (id, profile_id, game_type, level, unlocked_at)
		VALUES (?, ?, ?, ?, ?)
	`, u.ID, profileID, string(u.GameType), u.Level, u.UnlockedAt)
	if err != nil {
		return fmt.Errorf("adding unlock: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ResetProgress(profileID string) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM difficulty_unlocks WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("deleting unlocks: %w", err)
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Close() error {
	return r.conn.Close()
}
