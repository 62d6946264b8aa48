package badges

import (
	"time"

	"braintrainer/internal/game"
	"braintrainer/internal/streak"
)

// Progress returns, per badge type, how far along the profile is in [0, 1].
// Owned badges report 1.0. Boolean badges (perfectionist) are 0 or 1;
// threshold badges report current/threshold capped at 1.
func (e *Engine) Progress(history []game.Session, owned []Badge) map[Type]float64 {
	progress := make(map[Type]float64, len(AllTypes))

	count := float64(len(history))
	for _, m := range milestoneThresholds {
		progress[m.badge] = capped(count / float64(m.count))
	}

	times := make([]time.Time, len(history))
	for i, s := range history {
		times[i] = s.CompletedAt
	}
	days := float64(streak.Current(times, e.now()))
	for _, st := range streakThresholds {
		progress[st.badge] = capped(days / float64(st.days))
	}

	progress[TypePerfectionist] = 0
	for _, s := range history {
		if s.Accuracy() >= 100 {
			progress[TypePerfectionist] = 1
			break
		}
	}

	best := bestAccuracyByGame(history)
	for category, badge := range masteryByCategory {
		games := game.CategoryGames(category)
		mastered := 0
		for _, gt := range games {
			if acc, played := best[gt]; played && acc >= masteryAccuracy {
				mastered++
			}
		}
		progress[badge] = float64(mastered) / float64(len(games))
	}

	bestPercentile := 0.0
	for _, s := range history {
		if p := e.model.Percentile(s.GameType, s.Score); float64(p) > bestPercentile {
			bestPercentile = float64(p)
		}
	}
	for _, pt := range percentileThresholds {
		progress[pt.badge] = capped(bestPercentile / float64(pt.percentile))
	}

	// Earned badges are complete regardless of current counters (a streak
	// badge stays at 1.0 after the streak lapses).
	for _, b := range owned {
		progress[b.Type] = 1
	}

	return progress
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
