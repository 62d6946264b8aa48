package storage

import (
	"errors"
	"time"

	"braintrainer/internal/badges"
	"braintrainer/internal/game"
	"braintrainer/internal/unlocks"
)

var ErrNotFound = errors.New("not found")

// Profile is one player. The engine only cares about it as the boundary that
// groups sessions, badges and unlocks together.
type Profile struct {
	ID          string
	Name        string
	AvatarEmoji string
	CreatedAt   time.Time
}

// Repository persists progression state. Badge and unlock inserts are
// idempotent: re-adding an owned badge type or an existing (game, level)
// pair is a silent no-op, never an error.
type Repository interface {
	CreateProfile(p Profile) error
	Profile(id string) (*Profile, error)
	Profiles() ([]Profile, error)
	// DeleteProfile removes the profile and everything it owns, badges included.
	DeleteProfile(id string) error

	SaveSession(profileID string, s game.Session) error
	Sessions(profileID string) ([]game.Session, error)

	Badges(profileID string) ([]badges.Badge, error)
	AddBadge(profileID string, b badges.Badge) error

	Unlocks(profileID string) ([]unlocks.Unlock, error)
	AddUnlock(profileID string, u unlocks.Unlock) error

	// ResetProgress deletes the profile's sessions and difficulty unlocks.
	// Badges survive a reset.
	ResetProgress(profileID string) error

	Close() error
}
