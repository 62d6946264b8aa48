// Package metrics exposes progression counters for the /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "braintrainer_sessions_recorded_total",
		Help: "Completed game sessions recorded, by game type.",
	}, []string{"game_type"})

	BadgesAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "braintrainer_badges_awarded_total",
		Help: "Badges awarded, by badge type.",
	}, []string{"badge_type"})

	LevelsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "braintrainer_levels_unlocked_total",
		Help: "Difficulty levels unlocked, by game type.",
	}, []string{"game_type"})

	ResyncsRun = promauto.NewCounter(prometheus.CounterOpts{
		Name: "braintrainer_badge_resyncs_total",
		Help: "Full badge resyncs executed.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
