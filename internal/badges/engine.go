package badges

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"braintrainer/internal/game"
	"braintrainer/internal/stats"
)

// Store is the persistence the engine needs: the current badge set and the
// ability to add one. AddBadge must be a no-op if the profile already owns
// the type, which keeps Sync idempotent even if two evaluations race.
type Store interface {
	Badges(profileID string) ([]Badge, error)
	AddBadge(profileID string, b Badge) error
}

// Engine evaluates badge rules over a profile's session history. It takes
// the history as a parameter rather than querying it itself, so callers (and
// tests) control exactly what is evaluated.
type Engine struct {
	model *stats.Model
	store Store
	now   func() time.Time
}

func NewEngine(model *stats.Model, store Store) *Engine {
	return &Engine{model: model, store: store, now: time.Now}
}

// CheckSession is the incremental post-session check. history must already
// include the session that was just completed. Call once per session.
func (e *Engine) CheckSession(profileID string, history []game.Session) ([]Type, error) {
	return e.award(profileID, history)
}

// Sync is the full resync: re-evaluates every rule over the entire history.
// Idempotent — the exclusion set is re-derived from persisted badges on each
// call, so running it twice on unchanged history earns nothing the second
// time. Safe to run whenever the badge screen is opened.
func (e *Engine) Sync(profileID string, history []game.Session) ([]Type, error) {
	return e.award(profileID, history)
}

// award is the single evaluation core behind both entry points. Keeping one
// implementation means the incremental and resync paths cannot drift.
func (e *Engine) award(profileID string, history []game.Session) ([]Type, error) {
	owned, err := e.store.Badges(profileID)
	if err != nil {
		return nil, fmt.Errorf("loading badges: %w", err)
	}

	exclude := make(map[Type]bool, len(owned))
	for _, b := range owned {
		exclude[b.Type] = true
	}

	now := e.now()
	earned := Evaluate(history, e.model, now, exclude)
	for _, t := range earned {
		badge := Badge{
			ID:         uuid.New().String(),
			Type:       t,
			UnlockedAt: now,
		}
		if err := e.store.AddBadge(profileID, badge); err != nil {
			return nil, fmt.Errorf("persisting badge %s: %w", t, err)
		}
	}
	return earned, nil
}
