package unlocks

import (
	"testing"
	"time"

	"braintrainer/internal/game"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	unlocks map[string][]Unlock
}

func newFakeStore() *fakeStore {
	return &fakeStore{unlocks: make(map[string][]Unlock)}
}

func (f *fakeStore) Unlocks(profileID string) ([]Unlock, error) {
	return f.unlocks[profileID], nil
}

func (f *fakeStore) AddUnlock(profileID string, u Unlock) error {
	for _, have := range f.unlocks[profileID] {
		if have.GameType == u.GameType && have.Level == u.Level {
			return nil
		}
	}
	f.unlocks[profileID] = append(f.unlocks[profileID], u)
	return nil
}

func newTestLedger() (*Ledger, *fakeStore) {
	store := newFakeStore()
	l := NewLedger(store)
	l.now = func() time.Time { return testNow }
	return l, store
}

func perfect(gt game.Type, level int) game.Session {
	return game.Session{
		GameType:    gt,
		Score:       game.MaxScore(gt),
		MaxScore:    game.MaxScore(gt),
		Level:       level,
		CompletedAt: testNow,
	}
}

func TestCheckSession_PerfectLevelOneUnlocksTwo(t *testing.T) {
	l, store := newTestLedger()

	level, err := l.CheckSession("p1", perfect(game.TypeMentalMath, 1))
	if err != nil {
		t.Fatalf("CheckSession: %v", err)
	}
	if level != 2 {
		t.Errorf("unlocked level = %d, want 2", level)
	}

	records, _ := store.Unlocks("p1")
	if len(records) != 1 {
		t.Fatalf("expected 1 unlock record, got %d", len(records))
	}
	if records[0].GameType != game.TypeMentalMath || records[0].Level != 2 {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestCheckSession_AlreadyUnlockedIsNoop(t *testing.T) {
	l, store := newTestLedger()

	if _, err := l.CheckSession("p1", perfect(game.TypeMentalMath, 1)); err != nil {
		t.Fatal(err)
	}
	level, err := l.CheckSession("p1", perfect(game.TypeMentalMath, 1))
	if err != nil {
		t.Fatalf("second CheckSession: %v", err)
	}
	if level != 0 {
		t.Errorf("repeat unlock returned %d, want 0", level)
	}

	records, _ := store.Unlocks("p1")
	if len(records) != 1 {
		t.Errorf("expected 1 unlock record after repeat, got %d", len(records))
	}
}

func TestCheckSession_ImperfectDoesNotUnlock(t *testing.T) {
	l, _ := newTestLedger()

	s := perfect(game.TypeMentalMath, 1)
	s.Score = s.MaxScore - 1
	level, err := l.CheckSession("p1", s)
	if err != nil {
		t.Fatal(err)
	}
	if level != 0 {
		t.Errorf("99%% accuracy unlocked level %d, want 0", level)
	}
}

func TestCheckSession_TopLevelHasNothingAbove(t *testing.T) {
	l, _ := newTestLedger()

	level, err := l.CheckSession("p1", perfect(game.TypeMentalMath, 3))
	if err != nil {
		t.Fatal(err)
	}
	if level != 0 {
		t.Errorf("perfect level-3 session unlocked %d, want 0", level)
	}
}

func TestCheckSession_ProgressionToLevelThree(t *testing.T) {
	l, _ := newTestLedger()

	if _, err := l.CheckSession("p1", perfect(game.TypeLogicGrid, 1)); err != nil {
		t.Fatal(err)
	}
	level, err := l.CheckSession("p1", perfect(game.TypeLogicGrid, 2))
	if err != nil {
		t.Fatal(err)
	}
	if level != 3 {
		t.Errorf("perfect level-2 session unlocked %d, want 3", level)
	}

	max, err := l.MaxLevel("p1", game.TypeLogicGrid)
	if err != nil {
		t.Fatal(err)
	}
	if max != 3 {
		t.Errorf("MaxLevel = %d, want 3", max)
	}
}

func TestMaxLevel_DefaultsToOne(t *testing.T) {
	l, _ := newTestLedger()

	max, err := l.MaxLevel("p1", game.TypeWordScramble)
	if err != nil {
		t.Fatal(err)
	}
	if max != 1 {
		t.Errorf("MaxLevel with no records = %d, want 1", max)
	}
}

func TestMaxLevel_ScopedPerGame(t *testing.T) {
	l, _ := newTestLedger()

	if _, err := l.CheckSession("p1", perfect(game.TypeMentalMath, 1)); err != nil {
		t.Fatal(err)
	}

	max, err := l.MaxLevel("p1", game.TypeWordScramble)
	if err != nil {
		t.Fatal(err)
	}
	if max != 1 {
		t.Errorf("unlock for mentalMath leaked into wordScramble: MaxLevel = %d", max)
	}
}

func TestMaxLevels_CoversEveryGame(t *testing.T) {
	l, _ := newTestLedger()

	if _, err := l.CheckSession("p1", perfect(game.TypeMazeRunner, 1)); err != nil {
		t.Fatal(err)
	}

	levels, err := l.MaxLevels("p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != len(game.AllTypes) {
		t.Fatalf("MaxLevels has %d entries, want %d", len(levels), len(game.AllTypes))
	}
	if levels[game.TypeMazeRunner] != 2 {
		t.Errorf("mazeRunner level = %d, want 2", levels[game.TypeMazeRunner])
	}
	if levels[game.TypeMemoryGrid] != 1 {
		t.Errorf("memoryGrid level = %d, want 1", levels[game.TypeMemoryGrid])
	}
}
