package badges

import (
	"testing"
	"time"

	"braintrainer/internal/game"
	"braintrainer/internal/stats"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func session(gt game.Type, score int, daysAgo int) game.Session {
	return game.Session{
		GameType:    gt,
		Score:       score,
		MaxScore:    game.MaxScore(gt),
		Level:       1,
		CompletedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func evaluate(history []game.Session) []Type {
	return Evaluate(history, stats.NewModel(), testNow, nil)
}

func contains(types []Type, want Type) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func TestEvaluate_FirstSteps(t *testing.T) {
	earned := evaluate([]game.Session{session(game.TypeMentalMath, 40, 0)})
	if !contains(earned, TypeFirstSteps) {
		t.Error("should earn firstSteps after one session")
	}
}

func TestEvaluate_Empty(t *testing.T) {
	if earned := evaluate(nil); len(earned) != 0 {
		t.Errorf("empty history should earn nothing, got %v", earned)
	}
}

func TestEvaluate_GettingStartedAtTen(t *testing.T) {
	var history []game.Session
	for i := 0; i < 9; i++ {
		history = append(history, session(game.TypeMentalMath, 40, 0))
	}
	if earned := evaluate(history); contains(earned, TypeGettingStarted) {
		t.Error("should not earn gettingStarted with 9 sessions")
	}

	history = append(history, session(game.TypeMentalMath, 40, 0))
	if earned := evaluate(history); !contains(earned, TypeGettingStarted) {
		t.Error("should earn gettingStarted with 10 sessions")
	}
}

func TestEvaluate_StreakBadges(t *testing.T) {
	var history []game.Session
	for i := 0; i < 7; i++ {
		history = append(history, session(game.TypeWordRecall, 30, i))
	}
	earned := evaluate(history)
	if !contains(earned, TypeOnTrack) {
		t.Error("7-day streak should earn onTrack")
	}
	if !contains(earned, TypeConsistent) {
		t.Error("7-day streak should earn consistent")
	}
	if contains(earned, TypePersistent) {
		t.Error("7-day streak should not earn persistent")
	}
}

func TestEvaluate_PerfectionistOnceForManyPerfects(t *testing.T) {
	history := []game.Session{
		session(game.TypeMentalMath, 100, 0),
		session(game.TypeMentalMath, 100, 0),
		session(game.TypeMentalMath, 100, 0),
	}
	earned := evaluate(history)
	seen := 0
	for _, e := range earned {
		if e == TypePerfectionist {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("perfectionist emitted %d times, want exactly 1", seen)
	}
}

func TestEvaluate_NoPerfectionistBelow100(t *testing.T) {
	earned := evaluate([]game.Session{session(game.TypeMentalMath, 99, 0)})
	if contains(earned, TypePerfectionist) {
		t.Error("99% accuracy should not earn perfectionist")
	}
}

func TestEvaluate_MasteryRequiresWholeCategory(t *testing.T) {
	// 10 strong memoryGrid sessions, but sequenceMemory and wordRecall untouched
	var history []game.Session
	for i := 0; i < 10; i++ {
		history = append(history, session(game.TypeMemoryGrid, 90, 0))
	}
	if earned := evaluate(history); contains(earned, TypeMemoryMaster) {
		t.Error("memoryMaster requires every memory game, not just one")
	}
}

func TestEvaluate_MasteryAllGamesQualify(t *testing.T) {
	history := []game.Session{
		session(game.TypeMemoryGrid, 85, 0),
		session(game.TypeSequenceMemory, 80, 0),
		session(game.TypeWordRecall, 95, 0),
	}
	if earned := evaluate(history); !contains(earned, TypeMemoryMaster) {
		t.Error("all three memory games at 80%+ should earn memoryMaster")
	}
}

func TestEvaluate_MasteryOneGameBelowThreshold(t *testing.T) {
	history := []game.Session{
		session(game.TypeMemoryGrid, 85, 0),
		session(game.TypeSequenceMemory, 79, 0),
		session(game.TypeWordRecall, 95, 0),
	}
	if earned := evaluate(history); contains(earned, TypeMemoryMaster) {
		t.Error("one game at 79% should block memoryMaster")
	}
}

func TestEvaluate_MasteryUsesBestAccuracy(t *testing.T) {
	// A later weak session doesn't undo an earlier strong one
	history := []game.Session{
		session(game.TypeMemoryGrid, 85, 3),
		session(game.TypeMemoryGrid, 20, 0),
		session(game.TypeSequenceMemory, 80, 0),
		session(game.TypeWordRecall, 95, 0),
	}
	if earned := evaluate(history); !contains(earned, TypeMemoryMaster) {
		t.Error("mastery should use best accuracy per game")
	}
}

func TestEvaluate_PercentileBadgesAllAtOnce(t *testing.T) {
	// memoryGrid at 100 is 4 stdDevs above the mean: 99th percentile
	earned := evaluate([]game.Session{session(game.TypeMemoryGrid, 100, 0)})
	for _, want := range []Type{TypeRisingStar, TypeElite, TypeChampion, TypeGenius} {
		if !contains(earned, want) {
			t.Errorf("99th-percentile session should earn %s", want)
		}
	}
}

func TestEvaluate_PercentileAcrossAllSessions(t *testing.T) {
	// The qualifying session is not the most recent one
	history := []game.Session{
		session(game.TypeMemoryGrid, 100, 5),
		session(game.TypeMemoryGrid, 40, 0),
	}
	if earned := evaluate(history); !contains(earned, TypeGenius) {
		t.Error("percentile badges consider every session, not just the latest")
	}
}

func TestEvaluate_RespectsExclusionSet(t *testing.T) {
	history := []game.Session{session(game.TypeMentalMath, 100, 0)}
	exclude := map[Type]bool{TypeFirstSteps: true, TypePerfectionist: true}
	earned := Evaluate(history, stats.NewModel(), testNow, exclude)
	if contains(earned, TypeFirstSteps) || contains(earned, TypePerfectionist) {
		t.Errorf("excluded types should not be re-emitted, got %v", earned)
	}
}

func TestEvaluate_StableOrder(t *testing.T) {
	// A perfect 30-day run earns badges from every family; order must be
	// milestone, streak, performance, mastery, percentile.
	var history []game.Session
	for i := 0; i < 30; i++ {
		history = append(history, session(game.TypeMemoryGrid, 100, i))
	}
	earned := evaluate(history)

	want := []Type{
		TypeFirstSteps, TypeGettingStarted,
		TypeOnTrack, TypeConsistent, TypePersistent, TypeUnstoppable,
		TypePerfectionist,
		TypeRisingStar, TypeElite, TypeChampion, TypeGenius,
	}
	if len(earned) != len(want) {
		t.Fatalf("earned %v, want %v", earned, want)
	}
	for i := range want {
		if earned[i] != want[i] {
			t.Fatalf("emission order mismatch at %d: earned %v, want %v", i, earned, want)
		}
	}
}
