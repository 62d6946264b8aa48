// Package unlocks tracks which difficulty levels a profile has opened up.
// Level 1 of every game is always available; levels 2 and 3 are gated behind
// a perfect session at the level below.
package unlocks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"braintrainer/internal/game"
)

const MaxGameLevel = 3

// Unlock is a persisted grant for playing one game at a higher level.
// At most one exists per (profile, gameType, level); never revoked by play.
type Unlock struct {
	ID         string
	GameType   game.Type
	Level      int // 2 or 3
	UnlockedAt time.Time
}

// Store persists unlock records. AddUnlock must ignore a (gameType, level)
// pair the profile already has.
type Store interface {
	Unlocks(profileID string) ([]Unlock, error)
	AddUnlock(profileID string, u Unlock) error
}

type Ledger struct {
	store Store
	now   func() time.Time
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// CheckSession evaluates the unlock rule after a completed session: a 100%
// accuracy run at level L opens level L+1 for that game. Returns the newly
// unlocked level, or 0 if nothing was unlocked (imperfect run, already at
// the top level, or already unlocked — none of these are errors).
func (l *Ledger) CheckSession(profileID string, s game.Session) (int, error) {
	if s.Accuracy() < 100 {
		return 0, nil
	}
	if s.Level >= MaxGameLevel {
		return 0, nil
	}
	nextLevel := s.Level + 1

	existing, err := l.store.Unlocks(profileID)
	if err != nil {
		return 0, fmt.Errorf("loading unlocks: %w", err)
	}
	for _, u := range existing {
		if u.GameType == s.GameType && u.Level == nextLevel {
			return 0, nil
		}
	}

	unlock := Unlock{
		ID:         uuid.New().String(),
		GameType:   s.GameType,
		Level:      nextLevel,
		UnlockedAt: l.now(),
	}
	if err := l.store.AddUnlock(profileID, unlock); err != nil {
		return 0, fmt.Errorf("persisting unlock: %w", err)
	}
	return nextLevel, nil
}

// MaxLevel reports the highest playable level for one game. Never below 1,
// even with no unlock records.
func (l *Ledger) MaxLevel(profileID string, gt game.Type) (int, error) {
	existing, err := l.store.Unlocks(profileID)
	if err != nil {
		return 0, fmt.Errorf("loading unlocks: %w", err)
	}
	max := 1
	for _, u := range existing {
		if u.GameType == gt && u.Level > max {
			max = u.Level
		}
	}
	return max, nil
}

// MaxLevels reports the highest playable level for every game at once.
func (l *Ledger) MaxLevels(profileID string) (map[game.Type]int, error) {
	existing, err := l.store.Unlocks(profileID)
	if err != nil {
		return nil, fmt.Errorf("loading unlocks: %w", err)
	}
	levels := make(map[game.Type]int, len(game.AllTypes))
	for _, gt := range game.AllTypes {
		levels[gt] = 1
	}
	for _, u := range existing {
		if u.Level > levels[u.GameType] {
			levels[u.GameType] = u.Level
		}
	}
	return levels, nil
}
