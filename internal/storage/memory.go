package storage

import (
	"sync"

	"braintrainer/internal/badges"
	"braintrainer/internal/game"
	"braintrainer/internal/unlocks"
)

// MemoryRepository keeps everything in process memory. Used by tests and as
// the fallback when no database is configured.
type MemoryRepository struct {
	mu       sync.Mutex
	profiles map[string]Profile
	sessions map[string][]game.Session
	badges   map[string][]badges.Badge
	unlocks  map[string][]unlocks.Unlock
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]Profile),
		sessions: make(map[string][]game.Session),
		badges:   make(map[string][]badges.Badge),
		unlocks:  make(map[string][]unlocks.Unlock),
	}
}

func (m *MemoryRepository) CreateProfile(p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p
	return nil
}

func (m *MemoryRepository) Profile(id string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryRepository) Profiles() ([]Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryRepository) DeleteProfile(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, id)
	delete(m.sessions, id)
	delete(m.badges, id)
	delete(m.unlocks, id)
	return nil
}

func (m *MemoryRepository) SaveSession(profileID string, s game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[profileID] = append(m.sessions[profileID], s)
	return nil
}

func (m *MemoryRepository) Sessions(profileID string) ([]game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]game.Session, len(m.sessions[profileID]))
	copy(out, m.sessions[profileID])
	return out, nil
}

func (m *MemoryRepository) Badges(profileID string) ([]badges.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]badges.Badge, len(m.badges[profileID]))
	copy(out, m.badges[profileID])
	return out, nil
}

func (m *MemoryRepository) AddBadge(profileID string, b badges.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, have := range m.badges[profileID] {
		if have.Type == b.Type {
			return nil
		}
	}
	m.badges[profileID] = append(m.badges[profileID], b)
	return nil
}

func (m *MemoryRepository) Unlocks(profileID string) ([]unlocks.Unlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]unlocks.Unlock, len(m.unlocks[profileID]))
	copy(out, m.unlocks[profileID])
	return out, nil
}

func (m *MemoryRepository) AddUnlock(profileID string, u unlocks.Unlock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, have := range m.unlocks[profileID] {
		if have.GameType == u.GameType && have.Level == u.Level {
			return nil
		}
	}
	m.unlocks[profileID] = append(m.unlocks[profileID], u)
	return nil
}

func (m *MemoryRepository) ResetProgress(profileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, profileID)
	delete(m.unlocks, profileID)
	return nil
}

func (m *MemoryRepository) Close() error {
	return nil
}
