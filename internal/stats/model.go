// Package stats estimates how a score ranks against an assumed population
// distribution for each game. The population is a modeling fiction: the
// per-game mean and standard deviation are hand-tuned constants, not derived
// from real user data.
package stats

import (
	"fmt"
	"math"

	"braintrainer/internal/game"
)

type Distribution struct {
	Mean   float64
	StdDev float64
}

// defaultDistributions holds the assumed population per game type. Tuning
// values only; do not re-derive. Every game type must have an entry.
var defaultDistributions = map[game.Type]Distribution{
	game.TypeMemoryGrid:     {Mean: 88, StdDev: 3},
	game.TypeSequenceMemory: {Mean: 62, StdDev: 14},
	game.TypeWordRecall:     {Mean: 58, StdDev: 15},
	game.TypeMentalMath:     {Mean: 65, StdDev: 12},
	game.TypeMathSprint:     {Mean: 95, StdDev: 20},
	game.TypeNumberSequence: {Mean: 60, StdDev: 13},
	game.TypePatternMatch:   {Mean: 55, StdDev: 16},
	game.TypeLogicGrid:      {Mean: 52, StdDev: 17},
	game.TypeMazeRunner:     {Mean: 48, StdDev: 12},
	game.TypeWordScramble:   {Mean: 63, StdDev: 14},
	game.TypeVocabBuilder:   {Mean: 70, StdDev: 18},
	game.TypeLetterHunt:     {Mean: 57, StdDev: 15},
}

func init() {
	for _, gt := range game.AllTypes {
		d, ok := defaultDistributions[gt]
		if !ok {
			panic(fmt.Sprintf("game type %q missing from distribution table", gt))
		}
		if d.StdDev <= 0 {
			panic(fmt.Sprintf("game type %q has non-positive stdDev", gt))
		}
	}
}

// Model converts raw scores to percentile ranks.
type Model struct {
	dist map[game.Type]Distribution
}

// NewModel returns a model over the default per-game distributions.
func NewModel() *Model {
	return &Model{dist: defaultDistributions}
}

// NewModelWith returns a model over a custom distribution table.
func NewModelWith(dist map[game.Type]Distribution) *Model {
	return &Model{dist: dist}
}

// Percentile estimates the rank of a score within the game's assumed
// population, as an integer in [1, 99]. Unknown game types get the neutral
// 50th percentile; this never fails.
func (m *Model) Percentile(gt game.Type, score int) int {
	d, ok := m.dist[gt]
	if !ok || d.StdDev <= 0 {
		return 50
	}

	z := (float64(score) - d.Mean) / d.StdDev
	p := normalCDF(z) * 100

	percentile := int(p) // truncate, not round
	if percentile < 1 {
		return 1
	}
	if percentile > 99 {
		return 99
	}
	return percentile
}

func normalCDF(x float64) float64 {
	return 0.5 * (1 + erf(x/math.Sqrt2))
}

// erf is the Abramowitz & Stegun 7.1.26 rational approximation,
// max absolute error ~1.5e-7. The exact coefficients matter: downstream
// percentile thresholds were tuned against this approximation.
func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	return sign * y
}
