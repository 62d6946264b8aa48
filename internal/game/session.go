package game

import "time"

// Session is one completed round of a game. Immutable once created; the
// progression engine only ever reads these.
type Session struct {
	ID              string
	GameType        Type
	Score           int
	MaxScore        int
	Level           int // 1-3
	CompletedAt     time.Time
	DurationSeconds int
}

// Accuracy is the score as a percentage of the maximum, in [0, 100].
func (s Session) Accuracy() float64 {
	if s.MaxScore <= 0 {
		return 0
	}
	acc := float64(s.Score) / float64(s.MaxScore) * 100
	if acc > 100 {
		return 100
	}
	return acc
}
