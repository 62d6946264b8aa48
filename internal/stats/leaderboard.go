package stats

import (
	"math"
	"sort"

	"braintrainer/internal/game"
)

// Entry is one row of the synthetic leaderboard.
type Entry struct {
	Name       string
	Score      int
	Percentile int
	Rank       int
	IsPlayer   bool
}

// syntheticRivals are display-only: the leaderboard ranks the player against
// the modeled population, never against real users.
var syntheticRivals = []struct {
	name       string
	percentile int
}{
	{"NeuronNinja", 99},
	{"CortexCrusher", 95},
	{"SynapseSam", 90},
	{"BrainyBlake", 75},
	{"MindfulMorgan", 50},
	{"CasualCasey", 25},
}

// ExpectedScore inverts the percentile mapping: the raw score a player at the
// given percentile would be expected to post. Display only; uses a standard
// rational approximation of the probit function.
func (m *Model) ExpectedScore(gt game.Type, percentile int) int {
	d, ok := m.dist[gt]
	if !ok {
		return 0
	}
	if percentile < 1 {
		percentile = 1
	}
	if percentile > 99 {
		percentile = 99
	}

	z := probit(float64(percentile) / 100)
	score := d.Mean + z*d.StdDev
	if score < 0 {
		return 0
	}
	return int(math.Round(score))
}

// Leaderboard builds a synthetic ranking for one game, slotting the player's
// best score among modeled rivals at fixed percentiles.
func (m *Model) Leaderboard(gt game.Type, playerName string, playerScore int) []Entry {
	entries := make([]Entry, 0, len(syntheticRivals)+1)
	for _, r := range syntheticRivals {
		entries = append(entries, Entry{
			Name:       r.name,
			Score:      m.ExpectedScore(gt, r.percentile),
			Percentile: r.percentile,
		})
	}
	entries = append(entries, Entry{
		Name:       playerName,
		Score:      playerScore,
		Percentile: m.Percentile(gt, playerScore),
		IsPlayer:   true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// probit approximates the inverse standard normal CDF (Acklam's algorithm,
// relative error below 1.15e-9 over (0, 1)).
func probit(p float64) float64 {
	const (
		pLow  = 0.02425
		pHigh = 1 - pLow
	)

	a := [6]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := [5]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01}
	c := [6]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	d := [4]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00}

	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > pHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}
