package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := New()

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected empty stats to fail validation")
	}
}

func TestStatistics_SingleTournament(t *testing.T) {
	stats := New()
	stats.Add(TournamentResult{
		Seed:           12345,
		WinnerStrategy: "adaptive",
		WinnerName:     "Bot 3",
		Rounds:         4,
		Replays:        1,
		Players:        8,
	})

	if stats.Tournaments != 1 {
		t.Errorf("Expected 1 tournament, got %d", stats.Tournaments)
	}
	if stats.Mean() != 4.0 {
		t.Errorf("Expected mean of 4.0, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 4.0 {
		t.Errorf("Expected median of 4.0, got %f", stats.Median())
	}
	if stats.WinsByStrategy["adaptive"] != 1 {
		t.Errorf("Expected 1 adaptive win, got %d", stats.WinsByStrategy["adaptive"])
	}
	if stats.TotalReplays != 1 {
		t.Errorf("Expected 1 replay, got %d", stats.TotalReplays)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validation failed: %v", err)
	}
}

func TestStatistics_MultipleTournaments(t *testing.T) {
	stats := New()

	results := []TournamentResult{
		{WinnerStrategy: "random", Rounds: 2},
		{WinnerStrategy: "adaptive", Rounds: 5},
		{WinnerStrategy: "adaptive", Rounds: 3},
		{WinnerStrategy: "biased", Rounds: 4, Replays: 2},
		{MutualElimination: true, Rounds: 6},
	}
	for _, r := range results {
		stats.Add(r)
	}

	expectedMean := (2.0 + 5.0 + 3.0 + 4.0 + 6.0) / 5.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}
	// Sorted rounds: 2, 3, 4, 5, 6.
	if stats.Median() != 4.0 {
		t.Errorf("Expected median of 4.0, got %f", stats.Median())
	}
	if stats.WinsByStrategy["adaptive"] != 2 {
		t.Errorf("Expected 2 adaptive wins, got %d", stats.WinsByStrategy["adaptive"])
	}
	if stats.MutualEliminations != 1 {
		t.Errorf("Expected 1 mutual elimination, got %d", stats.MutualEliminations)
	}
	if stats.TotalReplays != 2 {
		t.Errorf("Expected 2 replays, got %d", stats.TotalReplays)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validation failed: %v", err)
	}
}

func TestStatistics_VarianceAndStdError(t *testing.T) {
	stats := New()
	for _, rounds := range []int{2, 4, 6} {
		stats.Add(TournamentResult{WinnerStrategy: "random", Rounds: rounds})
	}

	// Sample variance of {2,4,6} is 4.
	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4.0, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-2.0) > 1e-9 {
		t.Errorf("Expected stddev of 2.0, got %f", stats.StdDev())
	}
	expectedSE := 2.0 / math.Sqrt(3)
	if math.Abs(stats.StdError()-expectedSE) > 1e-9 {
		t.Errorf("Expected stderr of %f, got %f", expectedSE, stats.StdError())
	}

	low, high := stats.ConfidenceInterval95()
	if low >= high {
		t.Errorf("Confidence interval inverted: [%f, %f]", low, high)
	}
	if math.Abs((low+high)/2-stats.Mean()) > 1e-9 {
		t.Error("Confidence interval not centred on the mean")
	}
}

func TestStatistics_Percentile(t *testing.T) {
	stats := New()
	for rounds := 1; rounds <= 5; rounds++ {
		stats.Add(TournamentResult{WinnerStrategy: "random", Rounds: rounds})
	}

	if stats.Percentile(0) != 1.0 {
		t.Errorf("Expected P0 of 1.0, got %f", stats.Percentile(0))
	}
	if stats.Percentile(1) != 5.0 {
		t.Errorf("Expected P100 of 5.0, got %f", stats.Percentile(1))
	}
	if stats.Percentile(0.5) != 3.0 {
		t.Errorf("Expected P50 of 3.0, got %f", stats.Percentile(0.5))
	}
	// P25 interpolates between 1 and 2 at index 1.0.
	if stats.Percentile(0.25) != 2.0 {
		t.Errorf("Expected P25 of 2.0, got %f", stats.Percentile(0.25))
	}
}

func TestStatistics_StrategiesSortedByWins(t *testing.T) {
	stats := New()
	for i := 0; i < 3; i++ {
		stats.Add(TournamentResult{WinnerStrategy: "cyclic", Rounds: 1})
	}
	stats.Add(TournamentResult{WinnerStrategy: "adaptive", Rounds: 1})
	stats.Add(TournamentResult{WinnerStrategy: "biased", Rounds: 1})

	got := stats.Strategies()
	want := []string{"cyclic", "adaptive", "biased"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d strategies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strategy %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := New()
	stats.Add(TournamentResult{WinnerStrategy: "random", Rounds: 3})
	stats.WinsByStrategy["random"] = 5

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to catch win count mismatch")
	}
}
