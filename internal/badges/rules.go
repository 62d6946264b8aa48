package badges

import (
	"time"

	"braintrainer/internal/game"
	"braintrainer/internal/stats"
	"braintrainer/internal/streak"
)

const masteryAccuracy = 80.0

var milestoneThresholds = []struct {
	badge Type
	count int
}{
	{TypeFirstSteps, 1},
	{TypeGettingStarted, 10},
	{TypeDedicated, 50},
	{TypeCommitted, 100},
	{TypeLegend, 500},
}

var streakThresholds = []struct {
	badge Type
	days  int
}{
	{TypeOnTrack, 3},
	{TypeConsistent, 7},
	{TypePersistent, 14},
	{TypeUnstoppable, 30},
}

// All four are evaluated independently; one very high-percentile session can
// unlock every percentile badge at once.
var percentileThresholds = []struct {
	badge      Type
	percentile int
}{
	{TypeRisingStar, 75},
	{TypeElite, 90},
	{TypeChampion, 95},
	{TypeGenius, 99},
}

var masteryByCategory = map[game.Category]Type{
	game.CategoryMemory:         TypeMemoryMaster,
	game.CategoryMentalMath:     TypeMathWhiz,
	game.CategoryProblemSolving: TypeLogicLegend,
	game.CategoryLanguage:       TypeWordWizard,
}

// Evaluate runs every badge rule over the complete session history and
// returns the satisfied types not already in exclude, in catalog order.
// Satisfied types are collected into a set first, so a history with many
// qualifying sessions still emits each badge at most once per call.
func Evaluate(history []game.Session, model *stats.Model, now time.Time, exclude map[Type]bool) []Type {
	satisfied := make(map[Type]bool)

	// Milestone: total session count
	for _, m := range milestoneThresholds {
		if len(history) >= m.count {
			satisfied[m.badge] = true
		}
	}

	// Streak: consecutive play days
	times := make([]time.Time, len(history))
	for i, s := range history {
		times[i] = s.CompletedAt
	}
	days := streak.Current(times, now)
	for _, st := range streakThresholds {
		if days >= st.days {
			satisfied[st.badge] = true
		}
	}

	// Performance: any perfect session
	for _, s := range history {
		if s.Accuracy() >= 100 {
			satisfied[TypePerfectionist] = true
			break
		}
	}

	// Mastery: every game in the category played, each at 80%+ best accuracy
	best := bestAccuracyByGame(history)
	for category, badge := range masteryByCategory {
		if categoryMastered(category, best) {
			satisfied[badge] = true
		}
	}

	// Percentile: best rank across all sessions
	bestPercentile := 0
	for _, s := range history {
		if p := model.Percentile(s.GameType, s.Score); p > bestPercentile {
			bestPercentile = p
		}
	}
	for _, pt := range percentileThresholds {
		if bestPercentile >= pt.percentile {
			satisfied[pt.badge] = true
		}
	}

	var earned []Type
	for _, t := range AllTypes {
		if satisfied[t] && !exclude[t] {
			earned = append(earned, t)
		}
	}
	return earned
}

func bestAccuracyByGame(history []game.Session) map[game.Type]float64 {
	best := make(map[game.Type]float64)
	for _, s := range history {
		acc := s.Accuracy()
		if cur, ok := best[s.GameType]; !ok || acc > cur {
			best[s.GameType] = acc
		}
	}
	return best
}

func categoryMastered(c game.Category, best map[game.Type]float64) bool {
	for _, gt := range game.CategoryGames(c) {
		acc, played := best[gt]
		if !played || acc < masteryAccuracy {
			return false
		}
	}
	return true
}
