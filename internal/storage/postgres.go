package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"braintrainer/internal/badges"
	"braintrainer/internal/game"
	"braintrainer/internal/unlocks"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type PostgresRepository struct {
	conn *sql.DB
}

func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	repo := &PostgresRepository{conn: conn}
	if err := repo.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("connected to postgres")
	return repo, nil
}

func (r *PostgresRepository) migrate() error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}
	for _, entry := range entries {
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := r.conn.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", entry.Name(), err)
		}
		slog.Info("applied migration", "file", entry.Name())
	}
	return nil
}

func (r *PostgresRepository) CreateProfile(p Profile) error {
	_, err := r.conn.Exec(`
		INSERT INTO profiles (id, name, avatar_emoji, created_at)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Name, p.AvatarEmoji, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Profile(id string) (*Profile, error) {
	var p Profile
	err := r.conn.QueryRow(`
		SELECT id, name, avatar_emoji, created_at FROM profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.AvatarEmoji, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Profiles() ([]Profile, error) {
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

func (r *PostgresRepository) DeleteProfile(id string) error {
	_, err := r.conn.Exec(`DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SaveSession(profileID string, s game.Session) error {
	_, err := r.conn.Exec(`
		INSERT INTO sessions (id, profile_id, game_type, score, max_score, level, completed_at, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ID, profileID, string(s.GameType), s.Score, s.MaxScore, s.Level, s.CompletedAt, s.DurationSeconds)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Sessions(profileID string) ([]game.Session, error) {
	rows, err := r.conn.Query(`
		SELECT id, game_type, score, max_score, level, completed_at, duration_seconds
		FROM sessions
		WHERE profile_id = $1
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

func (r *PostgresRepository) Badges(profileID string) ([]badges.Badge, error) {
	rows, err := r.conn.Query(`
		SELECT id, badge_type, unlocked_at FROM badges
		WHERE profile_id = $1
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

func (r *PostgresRepository) AddBadge(profileID string, b badges.Badge) error {
	_, err := r.conn.Exec(`
		INSERT INTO badges (id, profile_id, badge_type, unlocked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, badge_type) DO NOTHING
	`, b.ID, profileID, string(b.Type), b.UnlockedAt)
	if err != nil {
		return fmt.Errorf("adding badge: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Unlocks(profileID string) ([]unlocks.Unlock, error) {
	rows, err := r.conn.Query(`
		SELECT id, game_type, level, unlocked_at FROM difficulty_unlocks
		WHERE profile_id = $1
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

func (r *PostgresRepository) AddUnlock(profileID string, u unlocks.Unlock) error {
	_, err := r.conn.Exec(`
		INSERT INTO difficulty_unlocks (id, profile_id, game_type, level, unlocked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (profile_id, game_type, level) DO NOTHING
	`, u.ID, profileID, string(u.GameType), u.Level, u.UnlockedAt)
	if err != nil {
		return fmt.Errorf("adding unlock: %w", err)
	}
	return nil
}

// ResetProgress wipes sessions and difficulty unlocks; earned badges stay.
func (r *PostgresRepository) ResetProgress(profileID string) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM difficulty_unlocks WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("deleting unlocks: %w", err)
	}
	return tx.Commit()
}

func (r *PostgresRepository) Close() error {
	return r.conn.Close()
}
