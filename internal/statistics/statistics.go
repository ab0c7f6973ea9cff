// Package statistics aggregates batch simulation results: how many
// tournaments each bot strategy wins and how long tournaments run.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TournamentResult is the outcome of a single simulated tournament.
type TournamentResult struct {
	Seed              int64  // RNG seed for this tournament (for replay)
	WinnerStrategy    string // strategy of the winning bot, empty on mutual elimination
	WinnerName        string
	Rounds            int
	Replays           int
	Players           int
	MutualElimination bool
}

// Statistics accumulates results across a batch of tournaments.
type Statistics struct {
	Tournaments int
	SumRounds   float64
	SumRounds2  float64   // sum of squares for variance calculation
	Rounds      []float64 // all round counts for median/percentile calculation

	WinsByStrategy     map[string]int
	MutualEliminations int
	TotalReplays       int
}

// New creates an empty statistics accumulator.
func New() *Statistics {
	return &Statistics{WinsByStrategy: make(map[string]int)}
}

// Add incorporates one tournament result.
func (s *Statistics) Add(result TournamentResult) {
	rounds := float64(result.Rounds)
	s.Tournaments++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Rounds = append(s.Rounds, rounds)
	s.TotalReplays += result.Replays

	if result.MutualElimination {
		s.MutualEliminations++
		return
	}
	s.WinsByStrategy[result.WinnerStrategy]++
}

// Mean returns the arithmetic mean of rounds per tournament.
func (s *Statistics) Mean() float64 {
	if s.Tournaments == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Tournaments)
}

// Variance returns the sample variance of rounds per tournament.
func (s *Statistics) Variance() float64 {
	if s.Tournaments < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Tournaments)*mean*mean) / float64(s.Tournaments-1)
}

// StdDev returns the sample standard deviation of rounds per tournament.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Tournaments == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Tournaments))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median rounds per tournament.
func (s *Statistics) Median() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Rounds))
	copy(sorted, s.Rounds)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the rounds value at the given percentile (0.0 to
// 1.0), linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Rounds))
	copy(sorted, s.Rounds)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Strategies returns the strategies that won at least once, sorted by
// wins descending with name as tiebreak.
func (s *Statistics) Strategies() []string {
	names := make([]string, 0, len(s.WinsByStrategy))
	for name := range s.WinsByStrategy {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.WinsByStrategy[names[i]] != s.WinsByStrategy[names[j]] {
			return s.WinsByStrategy[names[i]] > s.WinsByStrategy[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Validate checks the accumulator for internal consistency.
func (s *Statistics) Validate() error {
	if s.Tournaments <= 0 {
		return fmt.Errorf("invalid tournament count: %d", s.Tournaments)
	}
	if len(s.Rounds) != s.Tournaments {
		return fmt.Errorf("rounds array length (%d) does not match tournament count (%d)",
			len(s.Rounds), s.Tournaments)
	}

	wins := 0
	for _, n := range s.WinsByStrategy {
		wins += n
	}
	if wins+s.MutualEliminations != s.Tournaments {
		return fmt.Errorf("wins (%d) plus mutual eliminations (%d) does not match tournament count (%d)",
			wins, s.MutualEliminations, s.Tournaments)
	}
	return nil
}
